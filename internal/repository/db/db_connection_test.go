package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestInitDB_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")

	conn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	for _, table := range []string{"users", "categories", "transactions", "activity_events"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}

	var fk int
	if err := conn.QueryRow(`PRAGMA foreign_keys`).Scan(&fk); err != nil {
		t.Fatalf("read foreign_keys pragma: %v", err)
	}
	if fk != 1 {
		t.Fatalf("foreign_keys = %d; want 1", fk)
	}
}

func TestInitDB_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")

	first, err := InitDB(path)
	if err != nil {
		t.Fatalf("first InitDB: %v", err)
	}
	_ = first.Close()

	second, err := InitDB(path)
	if err != nil {
		t.Fatalf("second InitDB: %v", err)
	}
	_ = second.Close()
}

func TestInitDB_CategoryDeleteCascades(t *testing.T) {
	conn, err := InitDB(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	mustExec := func(q string, args ...any) {
		t.Helper()
		if _, err := conn.Exec(q, args...); err != nil {
			t.Fatalf("exec %q: %v", q, err)
		}
	}
	mustExec(`INSERT INTO users (id, username, email, password_hash) VALUES (1, 'alice', 'a@x.com', 'h')`)
	mustExec(`INSERT INTO categories (id, name, type, user_id) VALUES (10, 'Food', 'EXPENSE', 1)`)
	mustExec(`INSERT INTO transactions (amount, date, type, user_id, category_id) VALUES ('12.50', '2024-01-05', 'EXPENSE', 1, 10)`)
	mustExec(`DELETE FROM categories WHERE id = 10`)

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected cascade delete, %d transactions left", n)
	}
}

func TestInitDB_RejectsUnknownType(t *testing.T) {
	conn, err := InitDB(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(`INSERT INTO users (id, username, email, password_hash) VALUES (1, 'a', 'a@x', 'h')`); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	if _, err := conn.Exec(`INSERT INTO categories (name, type, user_id) VALUES ('x', 'SAVINGS', 1)`); err == nil {
		t.Fatalf("expected CHECK constraint failure")
	}
}

func TestInitDB_PragmasOnEveryConnection(t *testing.T) {
	conn, err := InitDB(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	// let the pool open connections beyond the one InitDB used
	conn.SetMaxOpenConns(3)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		c, err := conn.Conn(ctx)
		if err != nil {
			t.Fatalf("conn %d: %v", i, err)
		}
		defer c.Close()

		var fk, busy int
		if err := c.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk); err != nil {
			t.Fatalf("conn %d foreign_keys: %v", i, err)
		}
		if err := c.QueryRowContext(ctx, `PRAGMA busy_timeout`).Scan(&busy); err != nil {
			t.Fatalf("conn %d busy_timeout: %v", i, err)
		}
		if fk != 1 || busy != 5000 {
			t.Fatalf("conn %d: foreign_keys=%d busy_timeout=%d", i, fk, busy)
		}
	}
}

func TestDSN(t *testing.T) {
	const want = "file:app.db?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if got := dsn("app.db"); got != want {
		t.Fatalf("dsn = %q; want %q", got, want)
	}
	if got := dsn("file:app.db?mode=rwc"); got != "file:app.db?mode=rwc&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)" {
		t.Fatalf("dsn with query = %q", got)
	}
}
