package models

// Category groups transactions of one type for a single owner.
type Category struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Type        TransactionType `json:"type"`
	UserID      int64           `json:"-"`
}
