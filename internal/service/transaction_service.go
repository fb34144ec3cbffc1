package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

type TransactionService struct {
	repo       repository.TransactionRepo
	categories repository.CategoryRepo
	activity   activityRecorder
	now        func() time.Time
}

func NewTransactionService(repo repository.TransactionRepo, categories repository.CategoryRepo, activity activityRecorder) *TransactionService {
	return &TransactionService{repo: repo, categories: categories, activity: activity, now: time.Now}
}

// List returns the caller's transactions narrowed by f, ordered by date.
// Filtering by category first resolves the category, so a foreign category
// id fails with ErrNotFound instead of returning an empty list.
func (s *TransactionService) List(ctx context.Context, f TransactionFilter) ([]models.Transaction, error) {
	u, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if f.Type != "" && !f.Type.Valid() {
		return nil, newError(ErrValidation, "Invalid transaction type: %q", f.Type)
	}
	if !f.Start.IsZero() && !f.End.IsZero() && f.Start.After(f.End) {
		return nil, newError(ErrValidation, "startDate must not be after endDate")
	}
	if f.CategoryID != 0 {
		if _, err := s.category(ctx, u.ID, f.CategoryID); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, u.ID, repository.TransactionQuery{
		Type:       f.Type,
		CategoryID: f.CategoryID,
		From:       f.Start,
		To:         f.End,
	})
}

func (s *TransactionService) Get(ctx context.Context, id int64) (models.Transaction, error) {
	u, err := owner(ctx)
	if err != nil {
		return models.Transaction{}, err
	}
	return s.get(ctx, u.ID, id)
}

func (s *TransactionService) get(ctx context.Context, userID, id int64) (models.Transaction, error) {
	t, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return models.Transaction{}, err
	}
	if t == nil {
		return models.Transaction{}, errTransactionNotFound
	}
	return *t, nil
}

func (s *TransactionService) category(ctx context.Context, userID, id int64) (models.Category, error) {
	c, err := s.categories.Get(ctx, userID, id)
	if err != nil {
		return models.Category{}, err
	}
	if c == nil {
		return models.Category{}, errCategoryNotFound
	}
	return *c, nil
}

// Create stores a transaction for the caller against one of the caller's
// categories. The category is checked before anything is written.
func (s *TransactionService) Create(ctx context.Context, in TransactionInput) (models.Transaction, error) {
	u, err := owner(ctx)
	if err != nil {
		return models.Transaction{}, err
	}
	t, err := s.fromInput(ctx, u.ID, in)
	if err != nil {
		return models.Transaction{}, err
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return models.Transaction{}, err
	}
	t.ID = id

	s.activity.Record(ctx, u.ID, models.ActivityTransactionCreated,
		fmt.Sprintf("created %s transaction of %s", strings.ToLower(string(t.Type)), t.Amount.StringFixed(2)),
		map[string]any{"transactionId": t.ID, "categoryId": t.CategoryID, "amount": t.Amount.String()})
	return t, nil
}

func (s *TransactionService) Update(ctx context.Context, id int64, in TransactionInput) (models.Transaction, error) {
	u, err := owner(ctx)
	if err != nil {
		return models.Transaction{}, err
	}
	existing, err := s.get(ctx, u.ID, id)
	if err != nil {
		return models.Transaction{}, err
	}
	t, err := s.fromInput(ctx, u.ID, in)
	if err != nil {
		return models.Transaction{}, err
	}
	t.ID = existing.ID

	if err := s.repo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Transaction{}, errTransactionNotFound
		}
		return models.Transaction{}, err
	}

	s.activity.Record(ctx, u.ID, models.ActivityTransactionUpdated,
		fmt.Sprintf("updated transaction %d", t.ID),
		map[string]any{"transactionId": t.ID, "categoryId": t.CategoryID, "amount": t.Amount.String()})
	return t, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	u, err := owner(ctx)
	if err != nil {
		return err
	}
	t, err := s.get(ctx, u.ID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, u.ID, t.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errTransactionNotFound
		}
		return err
	}

	s.activity.Record(ctx, u.ID, models.ActivityTransactionDeleted,
		fmt.Sprintf("deleted transaction %d", t.ID), map[string]any{"transactionId": t.ID})
	return nil
}

// fromInput validates in and resolves its category for userID. An empty type
// is taken from the category; an explicit one must match it. A missing date
// means today. The amount is stored as given, sign included.
func (s *TransactionService) fromInput(ctx context.Context, userID int64, in TransactionInput) (models.Transaction, error) {
	if in.CategoryID == 0 {
		return models.Transaction{}, errCategoryRequired
	}

	var typ models.TransactionType
	if in.Type != "" {
		parsed, err := models.ParseTransactionType(string(in.Type))
		if err != nil {
			return models.Transaction{}, newError(ErrValidation, "Transaction type must be INCOME or EXPENSE")
		}
		typ = parsed
	}

	c, err := s.category(ctx, userID, in.CategoryID)
	if err != nil {
		return models.Transaction{}, err
	}
	if typ == "" {
		typ = c.Type
	}
	if typ != c.Type {
		return models.Transaction{}, newError(ErrValidation,
			"Transaction type %s does not match category %q of type %s", typ, c.Name, c.Type)
	}

	date := in.Date
	if date.IsZero() {
		date = models.DateOf(s.now())
	}

	return models.Transaction{
		Description:  strings.TrimSpace(in.Description),
		Amount:       in.Amount,
		Date:         date,
		Type:         typ,
		CategoryID:   c.ID,
		CategoryName: c.Name,
		UserID:       userID,
	}, nil
}
