package service

import (
	"context"
	"strings"
	"time"

	"expense_tracker/internal/logger"
	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

// ActivityService records and lists the per-user activity feed.
type ActivityService struct {
	repo repository.ActivityRepo
	log  *logger.Logger
	now  func() time.Time
}

func NewActivityService(repo repository.ActivityRepo) *ActivityService {
	return &ActivityService{repo: repo, log: logger.NewNop(), now: time.Now}
}

// WithLogger sets the logger used to report failed appends.
func (s *ActivityService) WithLogger(l *logger.Logger) *ActivityService {
	if l != nil {
		s.log = l
	}
	return s
}

var errInvalidTimeRange = newError(ErrValidation, "invalid time range: from must be <= to")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f ActivityFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	return from, to, normalizeEventType(f.Type), nil
}

// List returns the caller's events, oldest first.
func (s *ActivityService) List(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error) {
	u, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, u.ID, from, to, typ)
}

// Record appends an event for userID. The mutation it describes has already
// been committed, so a failed append is logged and otherwise ignored.
func (s *ActivityService) Record(ctx context.Context, userID int64, typ, description string, meta any) {
	err := s.repo.Append(ctx, models.ActivityEvent{
		UserID:      userID,
		OccurredAt:  s.now().UTC(),
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
	if err != nil {
		s.log.Warnw("activity_append_failed", "user_id", userID, "type", typ, "error", err)
	}
}
