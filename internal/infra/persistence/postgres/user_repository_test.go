package postgres

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "users" WHERE email = \$1`).
		WithArgs("a@x.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}).
			AddRow(userID, "A", "a@x.com", "hashed"))
	mock.ExpectQuery(`SELECT .* FROM "favorites" WHERE "favorites"\."user_id" = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "country_code"}).
			AddRow(userID, "FRA"))

	user, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, []string{"FRA"}, user.Favorites)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@x.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), userID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	generatedID := uuid.New()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(generatedID))

	user := &entity.User{
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "hashed",
	}
	err := repo.Create(context.Background(), user)
	require.NoError(t, err)

	// The entity picks up the database-generated ID.
	assert.Equal(t, generatedID, user.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`))

	err := repo.Create(context.Background(), &entity.User{
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "hashed",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
