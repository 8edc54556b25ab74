// Package middleware contains the HTTP middleware chain: request id, logging,
// error translation and bearer token authentication.
package middleware

import (
	"strings"

	"atlas/internal/delivery/http/response"
	"atlas/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// subjectKey is the echo context key holding the authenticated user ID.
const subjectKey = "subjectID"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on the request. Missing or
// malformed headers and invalid tokens are all rejected with 401; the request
// never reaches the downstream handler. On success the resolved subject ID is
// attached to the request context, where handlers pick it up via SubjectID
// and pass it explicitly into the use cases.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Access denied. No token provided.")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		userID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		SetSubjectID(c, userID)

		return next(c)
	}
}

// SetSubjectID attaches the authenticated user ID to the request context.
func SetSubjectID(c echo.Context, userID uuid.UUID) {
	c.Set(subjectKey, userID)
}

// SubjectID returns the authenticated user ID resolved by Authenticate.
// The boolean is false on routes that did not pass through the middleware.
func SubjectID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(subjectKey).(uuid.UUID)

	return userID, ok
}
