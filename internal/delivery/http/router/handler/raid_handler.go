package handler

import (
	"net/http"
	"time"

	"raidhub/internal/delivery/http/middleware"
	"raidhub/internal/delivery/http/response"
	"raidhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RaidHandler holds dependencies for raid management handlers.
type RaidHandler struct {
	uc usecase.RaidUsecase
}

// NewRaidHandler is the constructor for RaidHandler, injected by Fx.
func NewRaidHandler(uc usecase.RaidUsecase) *RaidHandler {
	return &RaidHandler{uc: uc}
}

type createRaidRequest struct {
	Title       string    `json:"title" validate:"required"`
	Subtitle    string    `json:"subtitle"`
	Boss        string    `json:"boss"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	CharacterID *int64    `json:"character_id"`
}

type createRaidResponse struct {
	Raid   any `json:"raid"`
	Signup any `json:"signup,omitempty"`
}

// List handles listing upcoming raids.
func (h *RaidHandler) List(c echo.Context) error {
	raids, err := h.uc.ListRaids(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, raids, "Raids retrieved successfully")
}

// Create handles creating a raid, optionally signing up one of the creator's
// characters at the same time.
func (h *RaidHandler) Create(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	var req createRaidRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid raid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.CreateRaid(c.Request().Context(), userID, &usecase.CreateRaidInput{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Boss:        req.Boss,
		StartTime:   req.StartTime,
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := createRaidResponse{Raid: result.Raid}
	if result.Signup != nil {
		resp.Signup = result.Signup
	}

	return response.Success(c, http.StatusCreated, resp, "Raid created successfully")
}

// Delete handles deleting a raid. Only its creator may do so.
func (h *RaidHandler) Delete(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	raidID, err := parseIDParam(c, "raidId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteRaid(c.Request().Context(), userID, raidID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Raid deleted successfully")
}
