package handler

import (
	"net/http"

	"raidhub/internal/delivery/http/middleware"
	"raidhub/internal/delivery/http/response"
	"raidhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SignupHandler holds dependencies for raid signup handlers.
type SignupHandler struct {
	uc usecase.SignupUsecase
}

// NewSignupHandler is the constructor for SignupHandler, injected by Fx.
func NewSignupHandler(uc usecase.SignupUsecase) *SignupHandler {
	return &SignupHandler{uc: uc}
}

type createSignupRequest struct {
	CharacterID int64 `json:"character_id" validate:"required"`
}

// List handles listing a raid's roster.
func (h *SignupHandler) List(c echo.Context) error {
	raidID, err := parseIDParam(c, "raidId")
	if err != nil {
		return errors.WithStack(err)
	}

	details, err := h.uc.ListSignups(c.Request().Context(), raidID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Signups retrieved successfully")
}

// Create handles signing one of the caller's characters up for a raid.
func (h *SignupHandler) Create(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	raidID, err := parseIDParam(c, "raidId")
	if err != nil {
		return errors.WithStack(err)
	}

	var req createSignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	signup, err := h.uc.CreateSignup(c.Request().Context(), userID, raidID, req.CharacterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, signup, "Signup created successfully")
}

// Cancel handles removing the caller's signup from a raid.
func (h *SignupHandler) Cancel(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	raidID, err := parseIDParam(c, "raidId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.CancelSignup(c.Request().Context(), userID, raidID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signup cancelled successfully")
}
