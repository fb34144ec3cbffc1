package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"expense_tracker"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      Activity feed
// @Description  The caller's own create/update/delete history. If 'to' is date-only it covers that whole day.
// @Tags         activity
// @Produce      json
// @Param        from  query     string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2024-01-01)
// @Param        to    query     string  false  "End of range, same formats"  example(2024-01-31)
// @Param        type  query     string  false  "Event type"  Enums(CATEGORY_CREATED,CATEGORY_UPDATED,CATEGORY_DELETED,TRANSACTION_CREATED,TRANSACTION_UPDATED,TRANSACTION_DELETED)
// @Success      200   {object}  expense_tracker.ActivityListResponse
// @Failure      400   {object}  expense_tracker.MessageResponse
// @Failure      401   {object}  expense_tracker.UnauthorizedResponse
// @Router       /api/activity [get]
// @Security     BearerAuth
func (h *Handler) getActivity(c *gin.Context) {
	var (
		from, to time.Time
		err      error
	)
	if qs := c.Query("from"); qs != "" {
		if from, err = parseQueryTime(qs); err != nil {
			c.JSON(http.StatusBadRequest, expense_tracker.MessageResponse{Message: errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		if to, err = parseQueryTime(qs); err != nil {
			c.JSON(http.StatusBadRequest, expense_tracker.MessageResponse{Message: errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
	}

	events, err := h.services.Activity.List(c.Request.Context(), service.ActivityFilter{
		From: from,
		To:   to,
		Type: c.Query("type"),
	})
	if err != nil {
		h.writeError(c, err, "activity_list_failed", "from", from, "to", to)
		return
	}
	c.JSON(http.StatusOK, expense_tracker.ActivityListResponse{Count: len(events), Events: events})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}
