package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kompanion-app/kompanion/internal/miniapp/domain"
	"github.com/kompanion-app/kompanion/internal/miniapp/store"
	"github.com/kompanion-app/kompanion/pkg/slogx"
)

type BalanceService struct {
	Store store.Store
}

// Add applies a signed delta to the user's balance and returns the updated
// profile. Negative amounts are allowed and the balance may go below zero.
func (s *BalanceService) Add(ctx context.Context, tgID int64, amount float64) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetByTgID(ctx, tgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := s.Store.Users().AddBalance(ctx, tgID, amount); err != nil {
		log.Error("failed to change balance",
			slog.Int64("tg_id", tgID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	log.Info("balance changed",
		slog.Int64("tg_id", tgID),
		slog.Float64("amount", amount),
	)
	return s.Store.Users().GetByTgID(ctx, tgID)
}

// SetSubscription flips the user's subscription flag and returns the updated
// profile.
func (s *BalanceService) SetSubscription(ctx context.Context, tgID int64, active bool) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetByTgID(ctx, tgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := s.Store.Users().SetSubscribed(ctx, tgID, active); err != nil {
		log.Error("failed to set subscription",
			slog.Int64("tg_id", tgID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	log.Info("subscription updated",
		slog.Int64("tg_id", tgID),
		slog.Bool("active", active),
	)
	return s.Store.Users().GetByTgID(ctx, tgID)
}
