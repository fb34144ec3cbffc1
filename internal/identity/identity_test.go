package identity

import (
	"context"
	"sync"
	"testing"

	"expense_tracker/internal/models"
)

func TestUserFromContextRoundTrip(t *testing.T) {
	ctx := WithUser(context.Background(), models.User{ID: 42, Username: "alice"})
	got, ok := UserFromContext(ctx)
	if !ok {
		t.Fatalf("expected user in context")
	}
	if got.ID != 42 || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserFromContextEmpty(t *testing.T) {
	if _, ok := UserFromContext(context.Background()); ok {
		t.Fatalf("expected no user in empty context")
	}
}

func TestUserFromContextNil(t *testing.T) {
	if _, ok := UserFromContext(nil); ok {
		t.Fatalf("expected no user for nil context")
	}
}

func TestUserFromContextZeroIDIsAnonymous(t *testing.T) {
	ctx := WithUser(context.Background(), models.User{Username: "ghost"})
	if _, ok := UserFromContext(ctx); ok {
		t.Fatalf("user without id must not count as resolved")
	}
}

func TestWithUserDoesNotShareAcrossContexts(t *testing.T) {
	base := context.Background()

	var wg sync.WaitGroup
	for i := int64(1); i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			ctx := WithUser(base, models.User{ID: id})
			got, ok := UserFromContext(ctx)
			if !ok || got.ID != id {
				t.Errorf("request %d saw user %+v", id, got)
			}
		}(i)
	}
	wg.Wait()

	if _, ok := UserFromContext(base); ok {
		t.Fatalf("parent context must stay anonymous")
	}
}

func TestWithUserCopiesValue(t *testing.T) {
	u := models.User{ID: 7, Username: "bob"}
	ctx := WithUser(context.Background(), u)
	u.Username = "mallory"

	got, _ := UserFromContext(ctx)
	if got.Username != "bob" {
		t.Fatalf("stored user changed after install: %+v", got)
	}
}
