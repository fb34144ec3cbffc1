package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"expense_tracker"
	"expense_tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// pathID parses the named path parameter as a positive id, answering 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, expense_tracker.MessageResponse{
			Message: fmt.Sprintf("invalid %s: must be a positive integer", name),
		})
		return 0, false
	}
	return id, true
}

// pathType parses the :type path parameter, answering 400 otherwise.
func pathType(c *gin.Context) (models.TransactionType, bool) {
	typ, err := models.ParseTransactionType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, expense_tracker.MessageResponse{Message: "type must be INCOME or EXPENSE"})
		return "", false
	}
	return typ, true
}

// dateRange reads the required startDate/endDate query parameters (YYYY-MM-DD).
func dateRange(c *gin.Context) (start, end models.Date, ok bool) {
	for _, q := range []struct {
		name string
		dst  *models.Date
	}{{"startDate", &start}, {"endDate", &end}} {
		raw := c.Query(q.name)
		if raw == "" {
			c.JSON(http.StatusBadRequest, expense_tracker.MessageResponse{Message: q.name + " is required"})
			return models.Date{}, models.Date{}, false
		}
		d, err := models.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, expense_tracker.MessageResponse{Message: q.name + " must be YYYY-MM-DD"})
			return models.Date{}, models.Date{}, false
		}
		*q.dst = d
	}
	return start, end, true
}
