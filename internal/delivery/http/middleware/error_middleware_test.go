package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "atlas/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Message
}

func newErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(domainerrors.ErrInvalidCredentials.WrapMessage("login failed"), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeMessage(t, rec))
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "malformed body"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "malformed body", decodeMessage(t, rec))
}

// Unexpected errors must never leak internals to the client.
func TestErrorMiddleware_UnknownError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeMessage(t, rec))
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext()

	require.NoError(t, c.JSON(http.StatusOK, map[string]string{"status": "ok"}))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
}
