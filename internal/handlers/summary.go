package handlers

import (
	"net/http"

	"expense_tracker"

	"github.com/gin-gonic/gin"
)

// @Summary      Total by type
// @Description  Zero when the caller has no transactions of the type.
// @Tags         summary
// @Produce      json
// @Param        type  path      string  true  "Transaction type"  Enums(INCOME,EXPENSE)
// @Success      200   {number}  number
// @Failure      400   {object}  expense_tracker.MessageResponse
// @Failure      401   {object}  expense_tracker.UnauthorizedResponse
// @Router       /api/transactions/summary/total/{type} [get]
// @Security     BearerAuth
func (h *Handler) getTotalByType(c *gin.Context) {
	typ, ok := pathType(c)
	if !ok {
		return
	}
	total, err := h.services.Summary.TotalByType(c.Request.Context(), typ)
	if err != nil {
		h.writeError(c, err, "summary_total_failed", "type", typ)
		return
	}
	c.JSON(http.StatusOK, total)
}

// @Summary      Total by type and date range
// @Tags         summary
// @Produce      json
// @Param        type       path      string  true  "Transaction type"  Enums(INCOME,EXPENSE)
// @Param        startDate  query     string  true  "First day (YYYY-MM-DD)"
// @Param        endDate    query     string  true  "Last day (YYYY-MM-DD)"
// @Success      200        {number}  number
// @Failure      400        {object}  expense_tracker.MessageResponse
// @Failure      401        {object}  expense_tracker.UnauthorizedResponse
// @Router       /api/transactions/summary/date-range/{type} [get]
// @Security     BearerAuth
func (h *Handler) getTotalByTypeAndDateRange(c *gin.Context) {
	typ, ok := pathType(c)
	if !ok {
		return
	}
	start, end, ok := dateRange(c)
	if !ok {
		return
	}
	total, err := h.services.Summary.TotalByTypeAndDateRange(c.Request.Context(), typ, start, end)
	if err != nil {
		h.writeError(c, err, "summary_total_range_failed", "type", typ, "start", start, "end", end)
		return
	}
	c.JSON(http.StatusOK, total)
}

// @Summary      Totals per category
// @Description  Keyed by category name; categories sharing a name share a bucket.
// @Tags         summary
// @Produce      json
// @Param        type  path      string  true  "Transaction type"  Enums(INCOME,EXPENSE)
// @Success      200   {object}  map[string]number
// @Failure      400   {object}  expense_tracker.MessageResponse
// @Failure      401   {object}  expense_tracker.UnauthorizedResponse
// @Router       /api/transactions/summary/category/{type} [get]
// @Security     BearerAuth
func (h *Handler) getCategorySummary(c *gin.Context) {
	typ, ok := pathType(c)
	if !ok {
		return
	}
	sums, err := h.services.Summary.CategorySummary(c.Request.Context(), typ)
	if err != nil {
		h.writeError(c, err, "summary_category_failed", "type", typ)
		return
	}
	c.JSON(http.StatusOK, sums)
}

// @Summary      Income, expense and balance
// @Tags         summary
// @Produce      json
// @Success      200  {object}  expense_tracker.SummaryResponse
// @Failure      401  {object}  expense_tracker.UnauthorizedResponse
// @Router       /api/transactions/summary [get]
// @Security     BearerAuth
func (h *Handler) getOverview(c *gin.Context) {
	o, err := h.services.Summary.Overview(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "summary_overview_failed")
		return
	}
	c.JSON(http.StatusOK, expense_tracker.SummaryResponse{
		TotalIncome:  o.TotalIncome,
		TotalExpense: o.TotalExpense,
		Balance:      o.Balance,
	})
}

// @Summary      Monthly summary
// @Description  The current month and the five before it, oldest first.
// @Tags         summary
// @Produce      json
// @Success      200  {array}   expense_tracker.MonthlySummaryItem
// @Failure      401  {object}  expense_tracker.UnauthorizedResponse
// @Router       /api/transactions/monthly-summary [get]
// @Security     BearerAuth
func (h *Handler) getMonthlySummary(c *gin.Context) {
	months, err := h.services.Summary.MonthlySummary(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "summary_monthly_failed")
		return
	}
	out := make([]expense_tracker.MonthlySummaryItem, 0, len(months))
	for _, m := range months {
		out = append(out, expense_tracker.MonthlySummaryItem{
			Month:        m.Month,
			TotalIncome:  m.TotalIncome,
			TotalExpense: m.TotalExpense,
		})
	}
	c.JSON(http.StatusOK, out)
}
