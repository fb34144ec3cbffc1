package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"

	"github.com/shopspring/decimal"
)

// monthlyWindow is the number of calendar months, current one included,
// covered by MonthlySummary.
const monthlyWindow = 6

// SummaryService sums the caller's transactions in memory with exact decimals.
type SummaryService struct {
	repo repository.TransactionRepo
	now  func() time.Time
}

func NewSummaryService(repo repository.TransactionRepo, now func() time.Time) *SummaryService {
	if now == nil {
		now = time.Now
	}
	return &SummaryService{repo: repo, now: now}
}

func (s *SummaryService) list(ctx context.Context, q repository.TransactionQuery) ([]models.Transaction, error) {
	u, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, u.ID, q)
}

func validType(typ models.TransactionType) error {
	if !typ.Valid() {
		return newError(ErrValidation, "Invalid transaction type: %q", typ)
	}
	return nil
}

// TotalByType is zero when the caller has no transactions of typ.
func (s *SummaryService) TotalByType(ctx context.Context, typ models.TransactionType) (decimal.Decimal, error) {
	if err := validType(typ); err != nil {
		return decimal.Zero, err
	}
	txs, err := s.list(ctx, repository.TransactionQuery{Type: typ})
	if err != nil {
		return decimal.Zero, err
	}
	return sum(txs), nil
}

// TotalByTypeAndDateRange sums typ over [start, end], both ends included.
func (s *SummaryService) TotalByTypeAndDateRange(ctx context.Context, typ models.TransactionType, start, end models.Date) (decimal.Decimal, error) {
	if err := validType(typ); err != nil {
		return decimal.Zero, err
	}
	if start.IsZero() || end.IsZero() {
		return decimal.Zero, newError(ErrValidation, "startDate and endDate are required")
	}
	if start.After(end) {
		return decimal.Zero, newError(ErrValidation, "startDate must not be after endDate")
	}
	txs, err := s.list(ctx, repository.TransactionQuery{Type: typ, From: start, To: end})
	if err != nil {
		return decimal.Zero, err
	}
	return sum(txs), nil
}

// CategorySummary groups by category name, so two categories sharing a name
// share a bucket.
func (s *SummaryService) CategorySummary(ctx context.Context, typ models.TransactionType) (map[string]decimal.Decimal, error) {
	if err := validType(typ); err != nil {
		return nil, err
	}
	txs, err := s.list(ctx, repository.TransactionQuery{Type: typ})
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal)
	for _, t := range txs {
		out[t.CategoryName] = out[t.CategoryName].Add(t.Amount)
	}
	return out, nil
}

func (s *SummaryService) Overview(ctx context.Context) (Overview, error) {
	txs, err := s.list(ctx, repository.TransactionQuery{})
	if err != nil {
		return Overview{}, err
	}
	income, expense := splitByType(txs)
	return Overview{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}, nil
}

// MonthlySummary covers the current month and the five before it, oldest
// first. Months without transactions are reported with zero totals.
func (s *SummaryService) MonthlySummary(ctx context.Context) ([]MonthlyTotal, error) {
	today := models.DateOf(s.now())
	start := today.FirstOfMonth().AddMonths(-(monthlyWindow - 1))

	txs, err := s.list(ctx, repository.TransactionQuery{From: start, To: today})
	if err != nil {
		return nil, err
	}

	out := make([]MonthlyTotal, monthlyWindow)
	index := make(map[string]int, monthlyWindow)
	for i := range out {
		m := start.AddMonths(i)
		out[i] = MonthlyTotal{Month: monthLabel(m), TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}
		index[out[i].Month] = i
	}
	for _, t := range txs {
		i, ok := index[monthLabel(t.Date)]
		if !ok {
			continue
		}
		switch t.Type {
		case models.TypeIncome:
			out[i].TotalIncome = out[i].TotalIncome.Add(t.Amount)
		case models.TypeExpense:
			out[i].TotalExpense = out[i].TotalExpense.Add(t.Amount)
		}
	}
	return out, nil
}

// monthLabel formats d's month like "JANUARY 2024".
func monthLabel(d models.Date) string {
	return fmt.Sprintf("%s %d", strings.ToUpper(d.Month().String()), d.Year())
}

func sum(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(t.Amount)
	}
	return total
}

func splitByType(txs []models.Transaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case models.TypeIncome:
			income = income.Add(t.Amount)
		case models.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}
