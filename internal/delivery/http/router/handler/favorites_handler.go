package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/middleware"
	"atlas/internal/delivery/http/response"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoritesHandler holds dependencies for favorite-country handlers.
type FavoritesHandler struct {
	uc     usecase.FavoritesUsecase
	logger *slog.Logger
}

// NewFavoritesHandler is the constructor for FavoritesHandler, injected by Fx.
func NewFavoritesHandler(uc usecase.FavoritesUsecase, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		uc:     uc,
		logger: logger,
	}
}

type favoriteRequest struct {
	CountryCode string `json:"countryCode" validate:"required"`
}

// List returns the authenticated user's favorite country codes.
func (h *FavoritesHandler) List(c echo.Context) error {
	userID, ok := middleware.SubjectID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid token identity")
	}

	favorites, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.FavoritesBody{Favorites: favorites})
}

// Add records a country code as a favorite of the authenticated user.
func (h *FavoritesHandler) Add(c echo.Context) error {
	userID, ok := middleware.SubjectID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid token identity")
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Missing country code")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Missing country code")
	}

	favorites, err := h.uc.Add(c.Request().Context(), userID, req.CountryCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.FavoritesBody{Favorites: favorites})
}

// Remove drops a country code from the authenticated user's favorites.
func (h *FavoritesHandler) Remove(c echo.Context) error {
	userID, ok := middleware.SubjectID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid token identity")
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Missing country code")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Missing country code")
	}

	favorites, err := h.uc.Remove(c.Request().Context(), userID, req.CountryCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.FavoritesBody{Favorites: favorites})
}
