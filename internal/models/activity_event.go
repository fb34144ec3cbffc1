package models

import "time"

// Activity event types, one per mutation of an owned resource.
const (
	ActivityCategoryCreated    = "CATEGORY_CREATED"
	ActivityCategoryUpdated    = "CATEGORY_UPDATED"
	ActivityCategoryDeleted    = "CATEGORY_DELETED"
	ActivityTransactionCreated = "TRANSACTION_CREATED"
	ActivityTransactionUpdated = "TRANSACTION_UPDATED"
	ActivityTransactionDeleted = "TRANSACTION_DELETED"
)

// ActivityEvent is a single entry of a user's activity feed.
type ActivityEvent struct {
	EventID     string    `json:"eventId"`
	UserID      int64     `json:"-"`
	OccurredAt  time.Time `json:"occurredAt"`
	Type        string    `json:"type"`
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
