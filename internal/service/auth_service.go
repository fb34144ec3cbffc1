package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles user auth logic
type AuthService struct {
	users repository.UserRepo
	codec TokenCodec
}

func NewAuthService(users repository.UserRepo, codec TokenCodec) *AuthService {
	return &AuthService{users: users, codec: codec}
}

// SignUp validates the payload, rejects taken usernames/emails and stores
// the user with a bcrypt hash of the password.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" {
		return models.User{}, newError(ErrValidation, "Username and email are required")
	}

	taken, err := s.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, errUsernameTaken
	}
	taken, err = s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, errEmailTaken
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{Username: in.Username, Email: in.Email, PasswordHash: hash}
	id, err := s.users.Create(ctx, u)
	if err != nil {
		// lost a race against a concurrent sign-up with the same name or email
		if errors.Is(err, repository.ErrDuplicate) {
			return models.User{}, newError(ErrConflict, "Error: Username or email is already in use!")
		}
		return models.User{}, err
	}
	u.ID = id
	return u, nil
}

// SignIn checks the credentials and mints a token whose subject is the username.
// Unknown users and wrong passwords fail identically.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (SignInResult, error) {
	// usernames are stored trimmed by SignUp
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return SignInResult{}, err
	}
	if u == nil {
		// keep the timing of unknown users close to that of wrong passwords
		_ = verifyPassword(dummyHash(), password)
		return SignInResult{}, errBadCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return SignInResult{}, errBadCredentials
	}

	token, err := s.codec.Issue(u.Username)
	if err != nil {
		return SignInResult{}, fmt.Errorf("%w: %w", ErrTokenIssue, err)
	}
	return SignInResult{Token: token, UserID: u.ID, Username: u.Username, Email: u.Email}, nil
}

// ResolveIdentity verifies token and loads the user named by its subject.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (*models.User, error) {
	subject, err := s.codec.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	u, err := s.users.GetByUsername(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("load token subject: %w", err)
	}
	if u == nil {
		return nil, ErrUnknownSubject
	}
	return u, nil
}

const maxPasswordBytes = 72

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", newError(ErrValidation, "Password must not be blank")
	}
	// bcrypt's limit is in bytes, not characters
	if len(password) > maxPasswordBytes {
		return "", newError(ErrValidation, "Password must be at most %d bytes", maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", newError(ErrValidation, "Password must be at most %d bytes", maxPasswordBytes)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

var dummyHash = sync.OnceValue(func() string {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return string(h)
})
