package expense_tracker

import (
	"expense_tracker/internal/models"

	"github.com/shopspring/decimal"
)

// TokenType is the scheme clients put in front of the token in the Authorization header.
const TokenType = "Bearer"

// MessageResponse is the body of sign-up results and of most error responses.
type MessageResponse struct {
	Message string `json:"message" example:"Invalid username or password"`
}

// UnauthorizedResponse is returned when a protected endpoint is reached without a resolved identity.
type UnauthorizedResponse struct {
	Status  int    `json:"status" example:"401"`
	Error   string `json:"error" example:"Unauthorized"`
	Message string `json:"message" example:"You are not authenticated. Please login to access this resource."`
	Path    string `json:"path" example:"/api/categories"`
}

// SignInResponse carries the bearer token and the public user fields.
type SignInResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type" example:"Bearer"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SummaryResponse is the overall income/expense/balance snapshot.
type SummaryResponse struct {
	TotalIncome  decimal.Decimal `json:"totalIncome" swaggertype:"number"`
	TotalExpense decimal.Decimal `json:"totalExpense" swaggertype:"number"`
	Balance      decimal.Decimal `json:"balance" swaggertype:"number"`
}

// MonthlySummaryItem is one month of the monthly breakdown.
type MonthlySummaryItem struct {
	Month        string          `json:"month" example:"JANUARY 2024"`
	TotalIncome  decimal.Decimal `json:"totalIncome" swaggertype:"number"`
	TotalExpense decimal.Decimal `json:"totalExpense" swaggertype:"number"`
}

// ActivityListResponse wraps a filtered slice of activity events.
type ActivityListResponse struct {
	Count  int                    `json:"count"`
	Events []models.ActivityEvent `json:"events"`
}
