package models

import "github.com/shopspring/decimal"

func init() {
	// amounts travel as JSON numbers, e.g. 12.5 rather than "12.5"
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is a single income or expense record.
type Transaction struct {
	ID           int64           `json:"id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Date         Date            `json:"date"`
	Type         TransactionType `json:"type"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName,omitempty"` // filled by list/get joins
	UserID       int64           `json:"-"`
}
