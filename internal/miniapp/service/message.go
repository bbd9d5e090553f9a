package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kompanion-app/kompanion/internal/miniapp/domain"
	"github.com/kompanion-app/kompanion/internal/miniapp/store"
	"github.com/kompanion-app/kompanion/pkg/slogx"
)

// ErrChatNotAllowed is returned when the sender is neither subscribed nor in
// a mutual pending-invite exchange with the recipient.
var ErrChatNotAllowed = errors.New("chat requires mutual invite or active subscription")

type MessageService struct {
	Store store.Store
}

// Send stores a message if the sender is allowed to talk to the recipient.
// The sender must have a profile; an active subscription opens chat with
// anyone, otherwise both directions of the pair must hold a pending invite.
// The recipient is not required to exist.
func (s *MessageService) Send(ctx context.Context, fromTgID, toTgID int64, text string) (domain.Message, error) {
	log := slogx.FromContext(ctx)

	sender, err := s.Store.Users().GetByTgID(ctx, fromTgID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Message{}, ErrUserNotFound
	}
	if err != nil {
		log.Error("failed to fetch sender", slog.Any("error", err))
		return domain.Message{}, err
	}

	if !sender.Subscribed {
		if err := s.requireMutualInvite(ctx, fromTgID, toTgID); err != nil {
			return domain.Message{}, err
		}
	}

	id, err := s.Store.Messages().Create(ctx, fromTgID, toTgID, text)
	if err != nil {
		log.Error("failed to store message",
			slog.Int64("from_tg_id", fromTgID),
			slog.Int64("to_tg_id", toTgID),
			slog.Any("error", err),
		)
		return domain.Message{}, err
	}

	log.Info("message sent",
		slog.Int64("message_id", id),
		slog.Int64("from_tg_id", fromTgID),
		slog.Int64("to_tg_id", toTgID),
	)
	return s.Store.Messages().GetByID(ctx, id)
}

func (s *MessageService) requireMutualInvite(ctx context.Context, fromTgID, toTgID int64) error {
	if _, err := s.Store.Invites().GetPending(ctx, fromTgID, toTgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrChatNotAllowed
		}
		return err
	}

	if _, err := s.Store.Invites().GetPending(ctx, toTgID, fromTgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrChatNotAllowed
		}
		return err
	}

	return nil
}

// History returns the full conversation between two Telegram identities in
// chronological order, regardless of which side is listed first.
func (s *MessageService) History(ctx context.Context, aTgID, bTgID int64) ([]domain.Message, error) {
	return s.Store.Messages().ListBetween(ctx, aTgID, bTgID)
}
