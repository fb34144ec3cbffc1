package handlers

import (
	"errors"
	"strings"
	"time"

	"expense_tracker"
	"expense_tracker/internal/auth"
	"expense_tracker/internal/identity"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

// requestLogger tags every request with an id and writes one access log line when it completes.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()

	rid := c.GetHeader(requestIDHeader)
	if rid == "" {
		rid = uuid.NewString()
	}
	c.Set(requestIDKey, rid)
	c.Header(requestIDHeader, rid)

	c.Next()

	h.log.Infow("http_request",
		"request_id", rid,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
	)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != expense_tracker.TokenType {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// identityMiddleware resolves the bearer token, if any, and installs the user
// into the request context. It never rejects a request: handlers and services
// decide whether an identity is required.
func (h *Handler) identityMiddleware(c *gin.Context) {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		c.Next()
		return
	}

	u, err := h.services.Authorization.ResolveIdentity(c.Request.Context(), token)
	if err != nil {
		h.log.Warnw("identity_unresolved",
			"request_id", c.GetString(requestIDKey),
			"path", c.Request.URL.Path,
			"reason", resolveReason(err),
			"err", err,
		)
		c.Next()
		return
	}

	c.Request = c.Request.WithContext(identity.WithUser(c.Request.Context(), *u))
	c.Next()
}

func resolveReason(err error) string {
	if errors.Is(err, service.ErrUnknownSubject) {
		return "unknown_subject"
	}
	return auth.Reason(err)
}

// requireIdentity answers 401 before protected handlers run when the identity
// middleware installed no user. Services check again on their own.
func (h *Handler) requireIdentity(c *gin.Context) {
	if _, ok := identity.UserFromContext(c.Request.Context()); !ok {
		h.unauthorized(c)
		c.Abort()
		return
	}
	c.Next()
}
