package service

import (
	"context"
	"time"

	"expense_tracker/internal/identity"
	"expense_tracker/internal/logger"
	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"

	"github.com/shopspring/decimal"
)

// Authorization covers sign-up, sign-in and bearer token resolution.
type Authorization interface {
	SignUp(ctx context.Context, in SignUpInput) (models.User, error)
	SignIn(ctx context.Context, username, password string) (SignInResult, error)
	ResolveIdentity(ctx context.Context, token string) (*models.User, error)
}

// Categories is the owner-scoped category CRUD. The owner always comes from ctx.
type Categories interface {
	List(ctx context.Context) ([]models.Category, error)
	ListByType(ctx context.Context, typ models.TransactionType) ([]models.Category, error)
	Get(ctx context.Context, id int64) (models.Category, error)
	Create(ctx context.Context, in CategoryInput) (models.Category, error)
	Update(ctx context.Context, id int64, in CategoryInput) (models.Category, error)
	Delete(ctx context.Context, id int64) error
}

// Transactions is the owner-scoped transaction CRUD.
type Transactions interface {
	List(ctx context.Context, f TransactionFilter) ([]models.Transaction, error)
	Get(ctx context.Context, id int64) (models.Transaction, error)
	Create(ctx context.Context, in TransactionInput) (models.Transaction, error)
	Update(ctx context.Context, id int64, in TransactionInput) (models.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

// Summary aggregates the caller's transactions.
type Summary interface {
	TotalByType(ctx context.Context, typ models.TransactionType) (decimal.Decimal, error)
	TotalByTypeAndDateRange(ctx context.Context, typ models.TransactionType, start, end models.Date) (decimal.Decimal, error)
	CategorySummary(ctx context.Context, typ models.TransactionType) (map[string]decimal.Decimal, error)
	Overview(ctx context.Context) (Overview, error)
	MonthlySummary(ctx context.Context) ([]MonthlyTotal, error)
}

// Activity exposes the caller's append-only activity feed.
type Activity interface {
	List(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error)
}

// TokenCodec is the part of auth.TokenCodec the services need.
type TokenCodec interface {
	Issue(subject string) (string, error)
	Verify(token string) (string, error)
}

type Service struct {
	Authorization
	Categories
	Transactions
	Summary
	Activity
}

// NewService wires the repository layer into concrete services. log receives
// activity append failures; nil discards them.
func NewService(repos *repository.Repository, codec TokenCodec, log *logger.Logger) *Service {
	recorder := NewActivityService(repos.Activity).WithLogger(log)
	return &Service{
		Authorization: NewAuthService(repos.Users, codec),
		Categories:    NewCategoryService(repos.Categories, recorder),
		Transactions:  NewTransactionService(repos.Transactions, repos.Categories, recorder),
		Summary:       NewSummaryService(repos.Transactions, time.Now),
		Activity:      recorder,
	}
}

// owner returns the user installed in ctx by the identity middleware.
func owner(ctx context.Context) (models.User, error) {
	u, ok := identity.UserFromContext(ctx)
	if !ok {
		return models.User{}, errNoIdentity
	}
	return u, nil
}
