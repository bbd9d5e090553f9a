package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kompanion-app/kompanion/internal/miniapp/domain"
	"github.com/kompanion-app/kompanion/internal/miniapp/store"
	"github.com/kompanion-app/kompanion/pkg/slogx"
)

// ErrUserNotFound is returned when a Telegram identity has no profile row.
var ErrUserNotFound = errors.New("user not found")

type ProfileService struct {
	Store store.Store
}

// Upsert creates or updates the profile keyed by u.TgID and returns the full
// refreshed record. On update only the mutable profile fields are touched;
// balance and subscription are preserved. Profiles are never deleted.
func (s *ProfileService) Upsert(ctx context.Context, u domain.User) (domain.User, error) {
	log := slogx.FromContext(ctx)

	existing, err := s.Store.Users().GetByTgID(ctx, u.TgID)
	switch {
	case err == nil:
		if err := s.Store.Users().UpdateProfile(ctx, u); err != nil {
			log.Error("failed to update profile",
				slog.Int64("tg_id", u.TgID),
				slog.Any("error", err),
			)
			return domain.User{}, err
		}

		log.Debug("profile updated", slog.Int64("tg_id", u.TgID))
		return s.Store.Users().GetByID(ctx, existing.ID)

	case errors.Is(err, store.ErrNotFound):
		id, err := s.Store.Users().Insert(ctx, u)
		if err != nil {
			log.Error("failed to create profile",
				slog.Int64("tg_id", u.TgID),
				slog.Any("error", err),
			)
			return domain.User{}, err
		}

		log.Info("profile created",
			slog.Int64("tg_id", u.TgID),
			slog.Int64("user_id", id),
		)
		return s.Store.Users().GetByID(ctx, id)

	default:
		log.Error("failed to fetch profile", slog.Any("error", err))
		return domain.User{}, err
	}
}

// List returns every profile, most recently created first.
func (s *ProfileService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().List(ctx)
}
