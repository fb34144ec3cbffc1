package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"expense_tracker/internal/models"
)

type TransactionSQLite struct {
	db *sql.DB
}

func NewTransactionSQLite(db *sql.DB) *TransactionSQLite { return &TransactionSQLite{db: db} }

var _ TransactionRepo = (*TransactionSQLite)(nil)

const (
	insertTransactionSQL = `
		INSERT INTO transactions (description, amount, date, type, category_id, user_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	selectTransactionColumns = `SELECT t.id, t.description, t.amount, t.date, t.type, t.category_id, c.name, t.user_id FROM transactions t JOIN categories c ON c.id = t.category_id`

	selectTransactionByIDSQL = selectTransactionColumns + ` WHERE t.id = ? AND t.user_id = ?`

	updateTransactionSQL = `
		UPDATE transactions
		SET description = ?, amount = ?, date = ?, type = ?, category_id = ?
		WHERE id = ? AND user_id = ?
	`

	deleteTransactionSQL = `DELETE FROM transactions WHERE id = ? AND user_id = ?`
)

func scanTransaction(s rowScanner) (models.Transaction, error) {
	var (
		t   models.Transaction
		typ string
	)
	if err := s.Scan(&t.ID, &t.Description, &t.Amount, &t.Date, &typ, &t.CategoryID, &t.CategoryName, &t.UserID); err != nil {
		return models.Transaction{}, err
	}
	t.Type = models.TransactionType(typ)
	return t, nil
}

// List returns the owner's transactions matching q, ordered by date then id.
// Date bounds are inclusive on both ends.
func (r *TransactionSQLite) List(ctx context.Context, userID int64, q TransactionQuery) ([]models.Transaction, error) {
	conds := []string{"t.user_id = ?"}
	args := []any{userID}

	if q.Type != "" {
		conds = append(conds, "t.type = ?")
		args = append(args, string(q.Type))
	}
	if q.CategoryID != 0 {
		conds = append(conds, "t.category_id = ?")
		args = append(args, q.CategoryID)
	}
	if !q.From.IsZero() {
		conds = append(conds, "t.date >= ?")
		args = append(args, q.From.String())
	}
	if !q.To.IsZero() {
		conds = append(conds, "t.date <= ?")
		args = append(args, q.To.String())
	}

	query := selectTransactionColumns + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY t.date ASC, t.id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Transaction, 0, 64)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one transaction of the owner. Returns (nil, nil) when the id
// does not exist or belongs to someone else.
func (r *TransactionSQLite) Get(ctx context.Context, userID, id int64) (*models.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRowContext(ctx, selectTransactionByIDSQL, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select transaction %d: %w", id, err)
	}
	return &t, nil
}

// Create inserts t for t.UserID and returns the new id.
func (r *TransactionSQLite) Create(ctx context.Context, t models.Transaction) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertTransactionSQL,
		t.Description,
		t.Amount.String(),
		t.Date.String(),
		string(t.Type),
		t.CategoryID,
		t.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for transaction: %w", err)
	}
	return id, nil
}

// Update overwrites every mutable field of the owner's transaction t.ID.
func (r *TransactionSQLite) Update(ctx context.Context, t models.Transaction) error {
	res, err := r.db.ExecContext(ctx, updateTransactionSQL,
		t.Description,
		t.Amount.String(),
		t.Date.String(),
		string(t.Type),
		t.CategoryID,
		t.ID,
		t.UserID,
	)
	if err != nil {
		return fmt.Errorf("update transaction %d: %w", t.ID, err)
	}
	return checkAffected(res, "transaction", t.ID)
}

func (r *TransactionSQLite) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteTransactionSQL, id, userID)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	return checkAffected(res, "transaction", id)
}
