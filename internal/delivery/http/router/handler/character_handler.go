package handler

import (
	"net/http"

	"raidhub/internal/delivery/http/middleware"
	"raidhub/internal/delivery/http/response"
	"raidhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CharacterHandler holds dependencies for character management handlers.
type CharacterHandler struct {
	uc usecase.CharacterUsecase
}

// NewCharacterHandler is the constructor for CharacterHandler, injected by Fx.
func NewCharacterHandler(uc usecase.CharacterUsecase) *CharacterHandler {
	return &CharacterHandler{uc: uc}
}

type createCharacterRequest struct {
	Name      string `json:"name" validate:"required"`
	Job       string `json:"job"`
	Level     *int   `json:"level"`
	IsDefault bool   `json:"is_default"`
}

type updateCharacterRequest struct {
	Name      *string `json:"name"`
	Job       *string `json:"job"`
	Level     *int    `json:"level"`
	IsDefault *bool   `json:"is_default"`
}

// List handles listing the caller's characters.
func (h *CharacterHandler) List(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	characters, err := h.uc.ListCharacters(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, characters, "Characters retrieved successfully")
}

// Create handles creating a character for the caller.
func (h *CharacterHandler) Create(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	var req createCharacterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid character input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	character, err := h.uc.CreateCharacter(c.Request().Context(), userID, &usecase.CreateCharacterInput{
		Name:      req.Name,
		Job:       req.Job,
		Level:     req.Level,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, character, "Character created successfully")
}

// Update handles a partial update of one of the caller's characters.
func (h *CharacterHandler) Update(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	characterID, err := parseIDParam(c, "characterId")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateCharacterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid character input")
	}

	character, err := h.uc.UpdateCharacter(c.Request().Context(), userID, characterID, &usecase.UpdateCharacterInput{
		Name:      req.Name,
		Job:       req.Job,
		Level:     req.Level,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, character, "Character updated successfully")
}

// Delete handles deleting one of the caller's characters.
func (h *CharacterHandler) Delete(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	characterID, err := parseIDParam(c, "characterId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteCharacter(c.Request().Context(), userID, characterID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Character deleted successfully")
}

// SetDefault handles marking one of the caller's characters as their default.
func (h *CharacterHandler) SetDefault(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	characterID, err := parseIDParam(c, "characterId")
	if err != nil {
		return errors.WithStack(err)
	}

	character, err := h.uc.SetDefaultCharacter(c.Request().Context(), userID, characterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, character, "Default character set successfully")
}
