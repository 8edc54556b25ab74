// Package response contains the JSON bodies of the public HTTP surface.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform error payload: {"message": "..."}.
type ErrorBody struct {
	Message string `json:"message"`
}

// MessageBody is the payload of informational successes such as logout.
type MessageBody struct {
	Message string `json:"message"`
}

// AuthBody is returned by register and login.
type AuthBody struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// FavoritesBody wraps the favorites set of the authenticated user.
type FavoritesBody struct {
	Favorites []string `json:"favorites"`
}

// ProfileBody is returned by the profile endpoint.
type ProfileBody struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Favorites []string `json:"favorites"`
}

// Error writes the uniform error payload with the given status.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Message: message})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
