package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"expense_tracker/internal/identity"
	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

// memUsers is an in-memory repository.UserRepo.
type memUsers struct {
	mu     sync.Mutex
	byName map[string]models.User
	nextID int64

	createErr error
	getErr    error
}

func newMemUsers() *memUsers { return &memUsers{byName: map[string]models.User{}} }

func (m *memUsers) Create(_ context.Context, u models.User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return 0, m.createErr
	}
	for _, x := range m.byName {
		if x.Username == u.Username || x.Email == u.Email {
			return 0, fmt.Errorf("insert user %q: %w", u.Username, repository.ErrDuplicate)
		}
	}
	m.nextID++
	u.ID = m.nextID
	m.byName[u.Username] = u
	return u.ID, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	u, ok := m.byName[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUsers) ExistsByUsername(_ context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byName[username]
	return ok, nil
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byName {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// memCategories is an in-memory repository.CategoryRepo with owner scoping.
type memCategories struct {
	rows   map[int64]models.Category
	nextID int64
	writes int
}

func newMemCategories() *memCategories { return &memCategories{rows: map[int64]models.Category{}} }

func (m *memCategories) List(_ context.Context, userID int64, typ models.TransactionType) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range m.rows {
		if c.UserID == userID && (typ == "" || c.Type == typ) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCategories) Get(_ context.Context, userID, id int64) (*models.Category, error) {
	c, ok := m.rows[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	return &c, nil
}

func (m *memCategories) Create(_ context.Context, c models.Category) (int64, error) {
	m.writes++
	m.nextID++
	c.ID = m.nextID
	m.rows[c.ID] = c
	return c.ID, nil
}

func (m *memCategories) Update(_ context.Context, c models.Category) error {
	m.writes++
	old, ok := m.rows[c.ID]
	if !ok || old.UserID != c.UserID {
		return repository.ErrNotFound
	}
	m.rows[c.ID] = c
	return nil
}

func (m *memCategories) Delete(_ context.Context, userID, id int64) error {
	m.writes++
	old, ok := m.rows[id]
	if !ok || old.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// memTransactions is an in-memory repository.TransactionRepo with owner scoping.
type memTransactions struct {
	rows    map[int64]models.Transaction
	nextID  int64
	writes  int
	lastQ   repository.TransactionQuery
	listErr error
}

func newMemTransactions() *memTransactions {
	return &memTransactions{rows: map[int64]models.Transaction{}}
}

func (m *memTransactions) add(t models.Transaction) models.Transaction {
	m.nextID++
	t.ID = m.nextID
	m.rows[t.ID] = t
	return t
}

func (m *memTransactions) List(_ context.Context, userID int64, q repository.TransactionQuery) ([]models.Transaction, error) {
	m.lastQ = q
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.Transaction{}
	for _, t := range m.rows {
		if t.UserID != userID {
			continue
		}
		if q.Type != "" && t.Type != q.Type {
			continue
		}
		if q.CategoryID != 0 && t.CategoryID != q.CategoryID {
			continue
		}
		if !q.From.IsZero() && t.Date.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && t.Date.After(q.To) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memTransactions) Get(_ context.Context, userID, id int64) (*models.Transaction, error) {
	t, ok := m.rows[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	return &t, nil
}

func (m *memTransactions) Create(_ context.Context, t models.Transaction) (int64, error) {
	m.writes++
	return m.add(t).ID, nil
}

func (m *memTransactions) Update(_ context.Context, t models.Transaction) error {
	m.writes++
	old, ok := m.rows[t.ID]
	if !ok || old.UserID != t.UserID {
		return repository.ErrNotFound
	}
	m.rows[t.ID] = t
	return nil
}

func (m *memTransactions) Delete(_ context.Context, userID, id int64) error {
	m.writes++
	old, ok := m.rows[id]
	if !ok || old.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// memActivity captures appended events.
type memActivity struct {
	events    []models.ActivityEvent
	appendErr error

	gotUserID int64
	gotFrom   time.Time
	gotTo     time.Time
	gotType   string
	calls     int
}

func (m *memActivity) Append(_ context.Context, e models.ActivityEvent) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.events = append(m.events, e)
	return nil
}

func (m *memActivity) List(_ context.Context, userID int64, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	m.calls++
	m.gotUserID, m.gotFrom, m.gotTo, m.gotType = userID, from, to, typ
	return m.events, nil
}

func (m *memActivity) types() []string {
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Type)
	}
	return out
}

var (
	alice = models.User{ID: 1, Username: "alice", Email: "alice@x.com"}
	bob   = models.User{ID: 2, Username: "bob", Email: "bob@x.com"}
)

func as(u models.User) context.Context {
	return identity.WithUser(context.Background(), u)
}
