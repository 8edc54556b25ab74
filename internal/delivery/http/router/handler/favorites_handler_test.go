package handler

import (
	"net/http"
	"testing"

	"atlas/internal/delivery/http/middleware"
	domainerrors "atlas/internal/domain/errors"
	mockUC "atlas/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoritesHandler_List_Success(t *testing.T) {
	uc := mockUC.NewMockFavoritesUsecase(t)
	userID := uuid.New()

	uc.EXPECT().List(mock.Anything, userID).Return([]string{"DEU", "FRA"}, nil)

	h := NewFavoritesHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodGet, "/favorites", "")
	middleware.SetSubjectID(c, userID)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"favorites":["DEU","FRA"]}`, rec.Body.String())
}

// An empty set must serialize as [], not null.
func TestFavoritesHandler_List_Empty(t *testing.T) {
	uc := mockUC.NewMockFavoritesUsecase(t)
	userID := uuid.New()

	uc.EXPECT().List(mock.Anything, userID).Return([]string{}, nil)

	h := NewFavoritesHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodGet, "/favorites", "")
	middleware.SetSubjectID(c, userID)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorites":[]`)
}

func TestFavoritesHandler_List_NoIdentity(t *testing.T) {
	uc := mockUC.NewMockFavoritesUsecase(t)
	h := NewFavoritesHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodGet, "/favorites", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFavoritesHandler_Add_Success(t *testing.T) {
	uc := mockUC.NewMockFavoritesUsecase(t)
	userID := uuid.New()

	uc.EXPECT().Add(mock.Anything, userID, "JPN").Return([]string{"DEU", "JPN"}, nil)

	h := NewFavoritesHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/favorites/add", `{"countryCode":"JPN"}`)
	middleware.SetSubjectID(c, userID)

	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"favorites":["DEU","JPN"]}`, rec.Body.String())
}

func TestFavoritesHandler_Add_MissingCode(t *testing.T) {
	uc := mockUC.NewMockFavoritesUsecase(t)
	h := NewFavoritesHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/favorites/add", `{}`)
	middleware.SetSubjectID(c, uuid.New())

	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing country code")
}

func TestFavoritesHandler_Add_SubjectGone(t *testing.T) {
	uc := mockUC.NewMockFavoritesUsecase(t)
	userID := uuid.New()

	uc.EXPECT().
		Add(mock.Anything, userID, "JPN").
		Return(nil, domainerrors.ErrUserNotFound.WrapMessage("subject no longer exists"))

	h := NewFavoritesHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(http.MethodPost, "/favorites/add", `{"countryCode":"JPN"}`)
	middleware.SetSubjectID(c, userID)

	err := h.Add(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFavoritesHandler_Remove_Success(t *testing.T) {
	uc := mockUC.NewMockFavoritesUsecase(t)
	userID := uuid.New()

	uc.EXPECT().Remove(mock.Anything, userID, "DEU").Return([]string{"FRA"}, nil)

	h := NewFavoritesHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/favorites/remove", `{"countryCode":"DEU"}`)
	middleware.SetSubjectID(c, userID)

	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"favorites":["FRA"]}`, rec.Body.String())
}

func TestFavoritesHandler_Remove_MissingCode(t *testing.T) {
	uc := mockUC.NewMockFavoritesUsecase(t)
	h := NewFavoritesHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/favorites/remove", `{"countryCode":""}`)
	middleware.SetSubjectID(c, uuid.New())

	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing country code")
}
