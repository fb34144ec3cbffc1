package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"expense_tracker/internal/models"
)

func mustTimeIn(loc *time.Location, y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, loc)
}

func Test_normalizeToUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want func(time.Time) bool
	}{
		{
			name: "zero time remains zero",
			in:   time.Time{},
			want: func(out time.Time) bool { return out.IsZero() },
		},
		{
			name: "non-UTC converted to UTC preserving instant",
			in:   mustTimeIn(time.FixedZone("UTC+3", 3*3600), 2025, time.August, 1, 12, 34, 56),
			want: func(out time.Time) bool {
				exp := time.Date(2025, time.August, 1, 9, 34, 56, 0, time.UTC)
				return out.Location() == time.UTC && out.Equal(exp)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if out := normalizeToUTC(tt.in); !tt.want(out) {
				t.Fatalf("unexpected result: %v", out)
			}
		})
	}
}

func Test_normalizeAndValidateFilter(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, _, _, err := normalizeAndValidateFilter(ActivityFilter{From: from, To: to}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for inverted range, got %v", err)
	}

	f, tt, typ, err := normalizeAndValidateFilter(ActivityFilter{From: to, To: from, Type: "  transaction_created "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.Equal(to) || !tt.Equal(from) || typ != "TRANSACTION_CREATED" {
		t.Fatalf("unexpected normalized values: %v %v %q", f, tt, typ)
	}
}

func TestActivityService_ListScopedToCaller(t *testing.T) {
	t.Parallel()

	repo := &memActivity{events: []models.ActivityEvent{{EventID: "1", UserID: alice.ID}}}
	svc := NewActivityService(repo)

	got, err := svc.List(as(alice), ActivityFilter{Type: "category_created"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || repo.gotUserID != alice.ID || repo.gotType != "CATEGORY_CREATED" {
		t.Fatalf("unexpected call: user=%d type=%q got=%v", repo.gotUserID, repo.gotType, got)
	}

	if _, err := svc.List(context.Background(), ActivityFilter{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous List = %v; want ErrUnauthorized", err)
	}
	if repo.calls != 1 {
		t.Fatalf("repo called %d times; want 1", repo.calls)
	}
}

func TestActivityService_RecordStampsTime(t *testing.T) {
	t.Parallel()

	repo := &memActivity{}
	svc := NewActivityService(repo)
	at := time.Date(2025, 5, 5, 5, 5, 5, 0, time.FixedZone("X", 3600))
	svc.now = func() time.Time { return at }

	svc.Record(context.Background(), alice.ID, models.ActivityCategoryCreated, "created category Food", nil)

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if !e.OccurredAt.Equal(at) || e.OccurredAt.Location() != time.UTC || e.UserID != alice.ID {
		t.Fatalf("unexpected event: %+v", e)
	}
}
