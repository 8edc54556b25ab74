package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "atlas/internal/delivery/context"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoritesService implements the FavoritesUsecase interface.
//
// Mutations go through FavoriteRepository's atomic per-row operations, so two
// concurrent adds for the same user both land; the service never rewrites the
// whole favorites set from a stale read.
type favoritesService struct {
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoritesServiceParams holds dependencies for favoritesService, injected by Fx.
type FavoritesServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoritesService is the constructor for favoritesService.
func NewFavoritesService(params FavoritesServiceParams) usecase.FavoritesUsecase {
	return &favoritesService{
		userRepo:     params.UserRepo,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoritesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the user's favorites, failing with not-found when the token's
// subject no longer exists in the store.
func (srv *favoritesService) List(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if err := srv.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	codes, err := srv.favoriteRepo.List(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list favorites", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return codes, nil
}

// Add inserts the code and returns the updated set. Idempotent.
func (srv *favoritesService) Add(ctx context.Context, userID uuid.UUID, code string) ([]string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.ErrMissingCountryCode.WrapMessage("country code is required")
	}

	if err := srv.favoriteRepo.Add(ctx, userID, code); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("subject no longer exists")
		}

		srv.log(ctx).Error("Failed to add favorite", slog.Any("userID", userID), slog.String("code", code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add favorite")
	}

	srv.log(ctx).Debug("Favorite added", slog.Any("userID", userID), slog.String("code", code))

	return srv.readBack(ctx, userID)
}

// Remove deletes the code and returns the updated set. Idempotent.
func (srv *favoritesService) Remove(ctx context.Context, userID uuid.UUID, code string) ([]string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.ErrMissingCountryCode.WrapMessage("country code is required")
	}

	if err := srv.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	if err := srv.favoriteRepo.Remove(ctx, userID, code); err != nil {
		srv.log(ctx).Error("Failed to remove favorite", slog.Any("userID", userID), slog.String("code", code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to remove favorite")
	}

	srv.log(ctx).Debug("Favorite removed", slog.Any("userID", userID), slog.String("code", code))

	return srv.readBack(ctx, userID)
}

// ensureUserExists maps a missing subject to the domain not-found error.
func (srv *favoritesService) ensureUserExists(ctx context.Context, userID uuid.UUID) error {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("subject no longer exists")
		}

		return errors.Wrap(err, "failed to load user")
	}

	return nil
}

func (srv *favoritesService) readBack(ctx context.Context, userID uuid.UUID) ([]string, error) {
	codes, err := srv.favoriteRepo.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read back favorites")
	}

	return codes, nil
}
