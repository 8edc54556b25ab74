package postgres

import (
	"context"

	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements repository.FavoriteRepository using GORM.
//
// Favorites are rows keyed (user_id, country_code), so Add and Remove are
// single atomic statements. Concurrent add/remove calls for the same user
// interleave safely without a read-modify-write of the whole set.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// List returns the user's favorite country codes in deterministic order.
func (repo *favoriteRepository) List(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var codes []string
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Order("country_code").
		Pluck("country_code", &codes).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	if codes == nil {
		codes = []string{}
	}

	return codes, nil
}

// Add inserts the code for the user. ON CONFLICT DO NOTHING makes the insert
// idempotent against the composite primary key.
func (repo *favoriteRepository) Add(ctx context.Context, userID uuid.UUID, code string) error {
	favoriteM := &model.FavoriteModel{
		UserID:      userID,
		CountryCode: code,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favoriteM).Error
	if err != nil {
		// The user row is gone; the foreign key reports it.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	return nil
}

// Remove deletes the code for the user. Deleting an absent row is a no-op.
func (repo *favoriteRepository) Remove(ctx context.Context, userID uuid.UUID, code string) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND country_code = ?", userID, code).
		Delete(&model.FavoriteModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove favorite")
	}

	return nil
}
