package handlers

import (
	"errors"
	"net/http"

	"expense_tracker"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgSignedUp          = "User registered successfully!"
	msgBadCredentials    = "Invalid username or password"
	msgSignInServerError = "Authentication failed due to server error"
)

// SignInRequest is the sign-in payload.
type SignInRequest struct {
	Username string `json:"username" binding:"required,notblank" example:"alice"`
	Password string `json:"password" binding:"required" example:"pw1"`
}

// SignUpRequest is the registration payload.
type SignUpRequest struct {
	Username string `json:"username" binding:"required,notblank,max=50" example:"alice"`
	Email    string `json:"email" binding:"required,email,max=100" example:"alice@x.com"`
	Password string `json:"password" binding:"required,notblank,max=72" example:"pw1"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("bad_request_body", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusBadRequest, expense_tracker.MessageResponse{Message: bindingMessage(err)})
		return false
	}
	return true
}

// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignUpRequest  true  "New user"
// @Success      200   {object}  expense_tracker.MessageResponse
// @Failure      400   {object}  expense_tracker.MessageResponse
// @Failure      500   {object}  expense_tracker.MessageResponse
// @Router       /api/auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input SignUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, err := h.services.SignUp(c.Request.Context(), service.SignUpInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrConflict) || errors.Is(err, service.ErrValidation) {
			h.log.Infow("auth_sign_up_rejected", "username", input.Username, "err", err)
		}
		h.writeError(c, err, "auth_sign_up_failed", "username", input.Username)
		return
	}

	h.log.Infow("auth_signed_up", "user_id", u.ID, "username", u.Username)
	c.JSON(http.StatusOK, expense_tracker.MessageResponse{Message: msgSignedUp})
}

// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignInRequest  true  "Credentials"
// @Success      200   {object}  expense_tracker.SignInResponse
// @Failure      400   {object}  expense_tracker.MessageResponse
// @Failure      401   {object}  expense_tracker.MessageResponse
// @Failure      500   {object}  expense_tracker.MessageResponse
// @Router       /api/auth/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	var input SignInRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.SignIn(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			h.log.Infow("auth_sign_in_failed", "username", input.Username)
			c.JSON(http.StatusUnauthorized, expense_tracker.MessageResponse{Message: msgBadCredentials})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgSignInServerError, "auth_sign_in_error", err,
			"username", input.Username)
		return
	}

	c.JSON(http.StatusOK, expense_tracker.SignInResponse{
		Token:    res.Token,
		Type:     expense_tracker.TokenType,
		ID:       res.UserID,
		Username: res.Username,
		Email:    res.Email,
	})
}
