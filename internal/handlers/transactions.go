package handlers

import (
	"net/http"

	"expense_tracker/internal/models"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionRequest is the create/update payload of a transaction. The
// category may be given flat (categoryId) or nested ({"category":{"id":1}}).
// Ownership always comes from the caller's token; a userId field is ignored.
type TransactionRequest struct {
	Description string           `json:"description" binding:"max=255" example:"Lunch"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"12.5"`
	Date        models.Date      `json:"date" swaggertype:"string" example:"2024-01-05"`
	Type        string           `json:"type" binding:"omitempty,txtype" example:"EXPENSE"`
	CategoryID  int64            `json:"categoryId" example:"1"`
	Category    *CategoryRef     `json:"category,omitempty"`
}

// CategoryRef is the nested category reference accepted for compatibility.
type CategoryRef struct {
	ID int64 `json:"id"`
}

func (r TransactionRequest) input() service.TransactionInput {
	in := service.TransactionInput{
		Description: r.Description,
		Date:        r.Date,
		Type:        models.TransactionType(r.Type),
		CategoryID:  r.CategoryID,
	}
	if r.Amount != nil {
		in.Amount = *r.Amount
	}
	if in.CategoryID == 0 && r.Category != nil {
		in.CategoryID = r.Category.ID
	}
	return in
}

func (h *Handler) respondTransactions(c *gin.Context, f service.TransactionFilter, logKey string) {
	list, err := h.services.Transactions.List(c.Request.Context(), f)
	if err != nil {
		h.writeError(c, err, logKey)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Success      200  {array}   models.Transaction
// @Failure      401  {object}  expense_tracker.UnauthorizedResponse
// @Router       /api/transactions [get]
// @Security     BearerAuth
func (h *Handler) listTransactions(c *gin.Context) {
	h.respondTransactions(c, service.TransactionFilter{}, "transactions_list_failed")
}

// @Summary      List transactions by type
// @Tags         transactions
// @Produce      json
// @Param        type  path      string  true  "Transaction type"  Enums(INCOME,EXPENSE)
// @Success      200   {array}   models.Transaction
// @Failure      400   {object}  expense_tracker.MessageResponse
// @Failure      401   {object}  expense_tracker.UnauthorizedResponse
// @Router       /api/transactions/type/{type} [get]
// @Security     BearerAuth
func (h *Handler) listTransactionsByType(c *gin.Context) {
	typ, ok := pathType(c)
	if !ok {
		return
	}
	h.respondTransactions(c, service.TransactionFilter{Type: typ}, "transactions_list_by_type_failed")
}

// @Summary      List transactions by category
// @Tags         transactions
// @Produce      json
// @Param        categoryId  path      int  true  "Category id"
// @Success      200         {array}   models.Transaction
// @Failure      401         {object}  expense_tracker.UnauthorizedResponse
// @Failure      404         {object}  expense_tracker.MessageResponse
// @Router       /api/transactions/category/{categoryId} [get]
// @Security     BearerAuth
func (h *Handler) listTransactionsByCategory(c *gin.Context) {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	h.respondTransactions(c, service.TransactionFilter{CategoryID: id}, "transactions_list_by_category_failed")
}

// @Summary      List transactions in a date range
// @Description  Both bounds are inclusive.
// @Tags         transactions
// @Produce      json
// @Param        startDate  query     string  true  "First day (YYYY-MM-DD)"  example(2024-01-01)
// @Param        endDate    query     string  true  "Last day (YYYY-MM-DD)"   example(2024-01-31)
// @Success      200        {array}   models.Transaction
// @Failure      400        {object}  expense_tracker.MessageResponse
// @Failure      401        {object}  expense_tracker.UnauthorizedResponse
// @Router       /api/transactions/date-range [get]
// @Security     BearerAuth
func (h *Handler) listTransactionsByDateRange(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}
	h.respondTransactions(c, service.TransactionFilter{Start: start, End: end}, "transactions_list_by_range_failed")
}

// @Summary      Get transaction
// @Tags         transactions
// @Produce      json
// @Param        id   path      int  true  "Transaction id"
// @Success      200  {object}  models.Transaction
// @Failure      401  {object}  expense_tracker.UnauthorizedResponse
// @Failure      404  {object}  expense_tracker.MessageResponse
// @Router       /api/transactions/{id} [get]
// @Security     BearerAuth
func (h *Handler) getTransaction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	tx, err := h.services.Transactions.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "transaction_get_failed", "transaction_id", id)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// @Summary      Create transaction
// @Description  The category must belong to the caller and share the transaction's type.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body      TransactionRequest  true  "Transaction"
// @Success      201   {object}  models.Transaction
// @Failure      400   {object}  expense_tracker.MessageResponse
// @Failure      401   {object}  expense_tracker.UnauthorizedResponse
// @Failure      404   {object}  expense_tracker.MessageResponse
// @Router       /api/transactions [post]
// @Security     BearerAuth
func (h *Handler) createTransaction(c *gin.Context) {
	var req TransactionRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	tx, err := h.services.Transactions.Create(c.Request.Context(), req.input())
	if err != nil {
		h.writeError(c, err, "transaction_create_failed")
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// @Summary      Update transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Transaction id"
// @Param        body  body      TransactionRequest  true  "Transaction"
// @Success      200   {object}  models.Transaction
// @Failure      400   {object}  expense_tracker.MessageResponse
// @Failure      401   {object}  expense_tracker.UnauthorizedResponse
// @Failure      404   {object}  expense_tracker.MessageResponse
// @Router       /api/transactions/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTransaction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req TransactionRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	tx, err := h.services.Transactions.Update(c.Request.Context(), id, req.input())
	if err != nil {
		h.writeError(c, err, "transaction_update_failed", "transaction_id", id)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// @Summary      Delete transaction
// @Tags         transactions
// @Param        id   path  int  true  "Transaction id"
// @Success      200
// @Failure      401  {object}  expense_tracker.UnauthorizedResponse
// @Failure      404  {object}  expense_tracker.MessageResponse
// @Router       /api/transactions/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTransaction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.services.Transactions.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "transaction_delete_failed", "transaction_id", id)
		return
	}
	c.Status(http.StatusOK)
}
