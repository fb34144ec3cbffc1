package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"expense_tracker/internal/models"
)

var (
	// ErrNotFound is returned by writes that matched no row for the given owner.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a UNIQUE constraint.
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepo interface {
	Create(ctx context.Context, u models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CategoryRepo methods are all scoped by owner: a row of another user behaves
// exactly like a missing row.
type CategoryRepo interface {
	List(ctx context.Context, userID int64, typ models.TransactionType) ([]models.Category, error)
	Get(ctx context.Context, userID, id int64) (*models.Category, error)
	Create(ctx context.Context, c models.Category) (int64, error)
	Update(ctx context.Context, c models.Category) error
	Delete(ctx context.Context, userID, id int64) error
}

// TransactionQuery narrows a transaction listing. Zero fields mean "any".
type TransactionQuery struct {
	Type       models.TransactionType
	CategoryID int64
	From       models.Date // inclusive
	To         models.Date // inclusive
}

type TransactionRepo interface {
	List(ctx context.Context, userID int64, q TransactionQuery) ([]models.Transaction, error)
	Get(ctx context.Context, userID, id int64) (*models.Transaction, error)
	Create(ctx context.Context, t models.Transaction) (int64, error)
	Update(ctx context.Context, t models.Transaction) error
	Delete(ctx context.Context, userID, id int64) error
}

type ActivityRepo interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, userID int64, from, to time.Time, typ string) ([]models.ActivityEvent, error)
}

type Repository struct {
	Users        UserRepo
	Categories   CategoryRepo
	Transactions TransactionRepo
	Activity     ActivityRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:        NewUserRepository(db),
		Categories:   NewCategorySQLite(db),
		Transactions: NewTransactionSQLite(db),
		Activity:     NewActivitySQLite(db),
	}
}

// checkAffected maps "no row changed" to ErrNotFound.
func checkAffected(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %s %d: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}
