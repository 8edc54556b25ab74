package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "atlas/internal/domain/errors"
	mockSvc "atlas/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().Verify("good.token").Return(userID, nil)

	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext("Bearer good.token")

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		gotID, ok := SubjectID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, gotID)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run without a token")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token provided")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run without a bearer token")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bearer")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("bad.token").Return(uuid.Nil, domainerrors.ErrInvalidToken)

	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("Bearer bad.token")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run with an invalid token")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestSubjectID_AbsentWithoutMiddleware(t *testing.T) {
	c, _ := newAuthTestContext("")

	_, ok := SubjectID(c)

	assert.False(t, ok)
}
