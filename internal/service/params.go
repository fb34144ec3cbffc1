package service

import (
	"time"

	"expense_tracker/internal/models"

	"github.com/shopspring/decimal"
)

// SignUpInput is the registration payload after binding.
type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// SignInResult is what a successful sign-in hands back to the client.
type SignInResult struct {
	Token    string
	UserID   int64
	Username string
	Email    string
}

type CategoryInput struct {
	Name        string
	Description string
	Type        models.TransactionType
}

type TransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Date        models.Date
	Type        models.TransactionType
	CategoryID  int64
}

// TransactionFilter narrows Transactions.List. Zero fields are ignored;
// Start and End are inclusive.
type TransactionFilter struct {
	Type       models.TransactionType
	CategoryID int64
	Start      models.Date
	End        models.Date
}

// Overview is the all-time income/expense snapshot of one user.
type Overview struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// MonthlyTotal is one month of the monthly breakdown. Month reads like "JANUARY 2024".
type MonthlyTotal struct {
	Month        string
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// ActivityFilter supports feed filtering by time range and type.
type ActivityFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "CATEGORY_CREATED", "TRANSACTION_DELETED", ...
}
