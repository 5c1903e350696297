// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"raidhub/internal/delivery/http/response"
	"raidhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type lineLoginRequest struct {
	LineUserID string `json:"lineUserId" validate:"required"`
	Name       string `json:"name"`
	Picture    string `json:"picture"`
}

type lineLoginResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// LineLogin handles the LINE login request: it upserts the user and returns
// a fresh access token.
func (h *AuthHandler) LineLogin(c echo.Context) error {
	var req lineLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.LoginWithLine(c.Request().Context(), &usecase.LineLoginInput{
		LineUserID: req.LineUserID,
		Name:       req.Name,
		Picture:    req.Picture,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lineLoginResponse{
		Token: result.Token,
		User:  result.User,
	}, "Login successful")
}
