package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atlas/internal/delivery/http/middleware"
	"atlas/internal/delivery/http/validator"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	mockUC "atlas/internal/mocks/usecase"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_Register_Success(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	userID := uuid.New()

	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "secret1",
		}).
		Return(&usecase.AuthOutput{
			User: &entity.User{
				ID:    userID,
				Name:  "Test User",
				Email: "test@example.com",
			},
			Token: "signed.token.value",
		}, nil)

	h := NewAccountHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"name":"Test User","email":"test@example.com","password":"secret1"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body["id"])
	assert.Equal(t, "Test User", body["name"])
	assert.Equal(t, "test@example.com", body["email"])
	assert.Equal(t, "signed.token.value", body["token"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAccountHandler_Register_MissingFields(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"name":"Test User","email":"test@example.com"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "All fields are required")
}

func TestAccountHandler_Register_DuplicateEmail(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered"))

	h := NewAccountHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(http.MethodPost, "/auth/register",
		`{"name":"Test User","email":"taken@example.com","password":"secret1"}`)

	err := h.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountHandler_Login_Success(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	userID := uuid.New()

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{
			Email:    "test@example.com",
			Password: "secret1",
		}).
		Return(&usecase.AuthOutput{
			User: &entity.User{
				ID:    userID,
				Name:  "Test User",
				Email: "test@example.com",
			},
			Token: "signed.token.value",
		}, nil)

	h := NewAccountHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"test@example.com","password":"secret1"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body["id"])
	assert.Equal(t, "signed.token.value", body["token"])
}

func TestAccountHandler_Login_BadCredentials(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	h := NewAccountHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"test@example.com","password":"wrong"}`)

	err := h.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountHandler_Logout(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	uc.EXPECT().Logout(mock.Anything).Return(nil)

	h := NewAccountHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out successfully")
}

func TestAccountHandler_Profile_Success(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	userID := uuid.New()

	uc.EXPECT().
		Profile(mock.Anything, userID).
		Return(&entity.User{
			ID:        userID,
			Name:      "Test User",
			Email:     "test@example.com",
			Favorites: []string{"DEU", "FRA"},
		}, nil)

	h := NewAccountHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodGet, "/profile", "")
	middleware.SetSubjectID(c, userID)

	require.NoError(t, h.Profile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorites":["DEU","FRA"]`)
}

func TestAccountHandler_Profile_NoIdentity(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodGet, "/profile", "")

	require.NoError(t, h.Profile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
