package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expense_tracker/internal/models"
)

type CategorySQLite struct {
	db *sql.DB
}

func NewCategorySQLite(db *sql.DB) *CategorySQLite { return &CategorySQLite{db: db} }

var _ CategoryRepo = (*CategorySQLite)(nil)

const (
	insertCategorySQL = `INSERT INTO categories (name, description, type, user_id) VALUES (?, ?, ?, ?)`

	selectCategoryColumns = `SELECT id, name, description, type, user_id FROM categories`

	// owner filter is part of the lookup itself
	selectCategoryByIDSQL = selectCategoryColumns + ` WHERE id = ? AND user_id = ?`

	updateCategorySQL = `UPDATE categories SET name = ?, description = ?, type = ? WHERE id = ? AND user_id = ?`
	deleteCategorySQL = `DELETE FROM categories WHERE id = ? AND user_id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(s rowScanner) (models.Category, error) {
	var (
		c    models.Category
		desc sql.NullString
		typ  string
	)
	if err := s.Scan(&c.ID, &c.Name, &desc, &typ, &c.UserID); err != nil {
		return models.Category{}, err
	}
	c.Description = desc.String
	c.Type = models.TransactionType(typ)
	return c, nil
}

// nullIfEmpty keeps optional text columns NULL instead of ''.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// List returns the owner's categories, optionally narrowed to one type, ordered by id.
func (r *CategorySQLite) List(ctx context.Context, userID int64, typ models.TransactionType) ([]models.Category, error) {
	q := selectCategoryColumns + ` WHERE user_id = ?`
	args := []any{userID}
	if typ != "" {
		q += ` AND type = ?`
		args = append(args, string(typ))
	}
	q += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select categories for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Category, 0, 16)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one category of the owner. Returns (nil, nil) when the id does
// not exist or belongs to someone else.
func (r *CategorySQLite) Get(ctx context.Context, userID, id int64) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx, selectCategoryByIDSQL, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select category %d: %w", id, err)
	}
	return &c, nil
}

// Create inserts c for c.UserID and returns the new id.
func (r *CategorySQLite) Create(ctx context.Context, c models.Category) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertCategorySQL,
		c.Name, nullIfEmpty(c.Description), string(c.Type), c.UserID)
	if err != nil {
		return 0, fmt.Errorf("insert category %q: %w", c.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for category %q: %w", c.Name, err)
	}
	return id, nil
}

// Update overwrites name, description and type of the owner's category c.ID.
func (r *CategorySQLite) Update(ctx context.Context, c models.Category) error {
	res, err := r.db.ExecContext(ctx, updateCategorySQL,
		c.Name, nullIfEmpty(c.Description), string(c.Type), c.ID, c.UserID)
	if err != nil {
		return fmt.Errorf("update category %d: %w", c.ID, err)
	}
	return checkAffected(res, "category", c.ID)
}

// Delete removes the owner's category; its transactions go with it (ON DELETE CASCADE).
func (r *CategorySQLite) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteCategorySQL, id, userID)
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return checkAffected(res, "category", id)
}
