package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kompanion-app/kompanion/internal/miniapp/domain"
	"github.com/kompanion-app/kompanion/internal/miniapp/store"
	"github.com/kompanion-app/kompanion/pkg/slogx"
)

// ErrSelfInvite is returned when the sender and recipient are the same user.
var ErrSelfInvite = errors.New("cannot invite yourself")

type InviteService struct {
	Store store.Store
}

// Create records a directional pending invite from one Telegram identity to
// another. Repeating the same pair while a pending invite exists returns the
// existing record instead of creating a duplicate. Neither side needs a
// profile; invites reference tg_ids directly.
//
// The duplicate check is a read followed by an insert, so two simultaneous
// identical requests can both insert. Listings tolerate the duplicate and the
// chat gate only asks whether at least one pending invite exists per
// direction, so the effect is cosmetic.
func (s *InviteService) Create(ctx context.Context, fromTgID, toTgID int64) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	if fromTgID == toTgID {
		return domain.Invite{}, ErrSelfInvite
	}

	existing, err := s.Store.Invites().GetPending(ctx, fromTgID, toTgID)
	switch {
	case err == nil:
		log.Debug("pending invite already exists",
			slog.Int64("from_tg_id", fromTgID),
			slog.Int64("to_tg_id", toTgID),
		)
		return existing, nil

	case errors.Is(err, store.ErrNotFound):
		// fall through to create

	default:
		log.Error("failed to check for pending invite", slog.Any("error", err))
		return domain.Invite{}, err
	}

	id, err := s.Store.Invites().Create(ctx, fromTgID, toTgID)
	if err != nil {
		log.Error("failed to create invite",
			slog.Int64("from_tg_id", fromTgID),
			slog.Int64("to_tg_id", toTgID),
			slog.Any("error", err),
		)
		return domain.Invite{}, err
	}

	log.Info("invite created",
		slog.Int64("invite_id", id),
		slog.Int64("from_tg_id", fromTgID),
		slog.Int64("to_tg_id", toTgID),
	)
	return s.Store.Invites().GetByID(ctx, id)
}

// ListForUser returns every invite the given Telegram identity sent or
// received, newest first.
func (s *InviteService) ListForUser(ctx context.Context, tgID int64) ([]domain.Invite, error) {
	return s.Store.Invites().ListForUser(ctx, tgID)
}
