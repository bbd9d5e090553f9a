package service

import (
	"context"
	"testing"

	"github.com/kompanion-app/kompanion/internal/miniapp/domain"
	"github.com/kompanion-app/kompanion/internal/miniapp/store"
	"github.com/kompanion-app/kompanion/internal/miniapp/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func strPtr(v string) *string { return &v }

func int64Ptr(v int64) *int64 { return &v }

func createUser(t *testing.T, ctx context.Context, s store.Store, tgID int64, firstName string) domain.User {
	t.Helper()

	svc := &ProfileService{Store: s}
	u, err := svc.Upsert(ctx, domain.User{TgID: tgID, FirstName: firstName})
	require.NoError(t, err)
	return u
}

func TestProfileUpsert(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &ProfileService{Store: s}

	t.Run("creates a new profile", func(t *testing.T) {
		u, err := svc.Upsert(ctx, domain.User{
			TgID:      100,
			FirstName: "Alice",
			About:     strPtr("likes hiking"),
			Age:       int64Ptr(30),
		})
		require.NoError(t, err)
		require.NotZero(t, u.ID)
		require.Equal(t, int64(100), u.TgID)
		require.Equal(t, "Alice", u.FirstName)
		require.NotNil(t, u.About)
		require.Equal(t, "likes hiking", *u.About)
		require.Zero(t, u.Balance)
		require.False(t, u.Subscribed)
	})

	t.Run("updates in place and keeps the row id", func(t *testing.T) {
		first, err := svc.Upsert(ctx, domain.User{TgID: 101, FirstName: "Bob"})
		require.NoError(t, err)

		second, err := svc.Upsert(ctx, domain.User{
			TgID:      101,
			FirstName: "Robert",
			Topics:    strPtr("chess"),
		})
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)
		require.Equal(t, "Robert", second.FirstName)
		require.NotNil(t, second.Topics)
		require.Equal(t, "chess", *second.Topics)
	})

	t.Run("update clears omitted optional fields", func(t *testing.T) {
		_, err := svc.Upsert(ctx, domain.User{
			TgID:      102,
			FirstName: "Carol",
			Location:  strPtr("Sydney"),
		})
		require.NoError(t, err)

		u, err := svc.Upsert(ctx, domain.User{TgID: 102, FirstName: "Carol"})
		require.NoError(t, err)
		require.Nil(t, u.Location)
	})

	t.Run("update preserves balance and subscription", func(t *testing.T) {
		_, err := svc.Upsert(ctx, domain.User{TgID: 103, FirstName: "Dave"})
		require.NoError(t, err)

		balances := &BalanceService{Store: s}
		_, err = balances.Add(ctx, 103, 25.5)
		require.NoError(t, err)
		_, err = balances.SetSubscription(ctx, 103, true)
		require.NoError(t, err)

		u, err := svc.Upsert(ctx, domain.User{TgID: 103, FirstName: "David"})
		require.NoError(t, err)
		require.Equal(t, 25.5, u.Balance)
		require.True(t, u.Subscribed)
	})
}

func TestProfileList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &ProfileService{Store: s}

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	createUser(t, ctx, s, 200, "First")
	createUser(t, ctx, s, 201, "Second")

	users, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	// Newest first.
	require.Equal(t, int64(201), users[0].TgID)
	require.Equal(t, int64(200), users[1].TgID)
}

func TestInviteCreate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &InviteService{Store: s}

	t.Run("rejects self invites", func(t *testing.T) {
		_, err := svc.Create(ctx, 300, 300)
		require.ErrorIs(t, err, ErrSelfInvite)
	})

	t.Run("creates a pending invite without profiles", func(t *testing.T) {
		inv, err := svc.Create(ctx, 300, 301)
		require.NoError(t, err)
		require.NotZero(t, inv.ID)
		require.Equal(t, int64(300), inv.FromTgID)
		require.Equal(t, int64(301), inv.ToTgID)
		require.Equal(t, domain.InviteStatusPending, inv.Status)
		require.NotEmpty(t, inv.CreatedAt)
	})

	t.Run("repeated invite returns the existing record", func(t *testing.T) {
		first, err := svc.Create(ctx, 302, 303)
		require.NoError(t, err)

		second, err := svc.Create(ctx, 302, 303)
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)
	})

	t.Run("directions are independent", func(t *testing.T) {
		forward, err := svc.Create(ctx, 304, 305)
		require.NoError(t, err)

		reverse, err := svc.Create(ctx, 305, 304)
		require.NoError(t, err)
		require.NotEqual(t, forward.ID, reverse.ID)
	})
}

func TestInviteListForUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &InviteService{Store: s}

	_, err := svc.Create(ctx, 400, 401)
	require.NoError(t, err)
	_, err = svc.Create(ctx, 402, 400)
	require.NoError(t, err)
	_, err = svc.Create(ctx, 402, 403)
	require.NoError(t, err)

	invites, err := svc.ListForUser(ctx, 400)
	require.NoError(t, err)
	require.Len(t, invites, 2)
	for _, inv := range invites {
		require.True(t, inv.FromTgID == 400 || inv.ToTgID == 400)
	}

	invites, err = svc.ListForUser(ctx, 999)
	require.NoError(t, err)
	require.Empty(t, invites)
}

func TestMessageSendGate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	messages := &MessageService{Store: s}
	invites := &InviteService{Store: s}
	balances := &BalanceService{Store: s}

	createUser(t, ctx, s, 500, "Sender")

	t.Run("unknown sender is rejected", func(t *testing.T) {
		_, err := messages.Send(ctx, 999, 500, "hello")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("no invites and no subscription is forbidden", func(t *testing.T) {
		_, err := messages.Send(ctx, 500, 501, "hello")
		require.ErrorIs(t, err, ErrChatNotAllowed)
	})

	t.Run("one-directional invite is not enough", func(t *testing.T) {
		_, err := invites.Create(ctx, 500, 501)
		require.NoError(t, err)

		_, err = messages.Send(ctx, 500, 501, "hello")
		require.ErrorIs(t, err, ErrChatNotAllowed)
	})

	t.Run("mutual pending invites open the chat", func(t *testing.T) {
		_, err := invites.Create(ctx, 501, 500)
		require.NoError(t, err)

		msg, err := messages.Send(ctx, 500, 501, "hello")
		require.NoError(t, err)
		require.NotZero(t, msg.ID)
		require.Equal(t, "hello", msg.Text)
	})

	t.Run("subscription bypasses the invite check", func(t *testing.T) {
		createUser(t, ctx, s, 502, "Subscriber")
		_, err := balances.SetSubscription(ctx, 502, true)
		require.NoError(t, err)

		msg, err := messages.Send(ctx, 502, 503, "premium hello")
		require.NoError(t, err)
		require.Equal(t, int64(503), msg.ToTgID)
	})
}

func TestMessageHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	messages := &MessageService{Store: s}
	invites := &InviteService{Store: s}

	createUser(t, ctx, s, 600, "A")
	createUser(t, ctx, s, 601, "B")
	_, err := invites.Create(ctx, 600, 601)
	require.NoError(t, err)
	_, err = invites.Create(ctx, 601, 600)
	require.NoError(t, err)

	_, err = messages.Send(ctx, 600, 601, "first")
	require.NoError(t, err)
	_, err = messages.Send(ctx, 601, 600, "second")
	require.NoError(t, err)
	_, err = messages.Send(ctx, 600, 601, "third")
	require.NoError(t, err)

	t.Run("returns both directions in order", func(t *testing.T) {
		history, err := messages.History(ctx, 600, 601)
		require.NoError(t, err)
		require.Len(t, history, 3)
		require.Equal(t, "first", history[0].Text)
		require.Equal(t, "second", history[1].Text)
		require.Equal(t, "third", history[2].Text)
	})

	t.Run("is symmetric in the pair order", func(t *testing.T) {
		forward, err := messages.History(ctx, 600, 601)
		require.NoError(t, err)
		reverse, err := messages.History(ctx, 601, 600)
		require.NoError(t, err)
		require.Equal(t, forward, reverse)
	})

	t.Run("empty for strangers", func(t *testing.T) {
		history, err := messages.History(ctx, 700, 701)
		require.NoError(t, err)
		require.Empty(t, history)
	})
}

func TestBalanceAdd(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &BalanceService{Store: s}

	createUser(t, ctx, s, 800, "Payer")

	t.Run("unknown user is rejected", func(t *testing.T) {
		_, err := svc.Add(ctx, 999, 10)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("accumulates across calls", func(t *testing.T) {
		u, err := svc.Add(ctx, 800, 10)
		require.NoError(t, err)
		require.Equal(t, float64(10), u.Balance)

		u, err = svc.Add(ctx, 800, 2.5)
		require.NoError(t, err)
		require.Equal(t, 12.5, u.Balance)
	})

	t.Run("negative amounts may push below zero", func(t *testing.T) {
		u, err := svc.Add(ctx, 800, -20)
		require.NoError(t, err)
		require.Equal(t, -7.5, u.Balance)
	})
}

func TestSetSubscription(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &BalanceService{Store: s}

	createUser(t, ctx, s, 900, "Member")

	t.Run("unknown user is rejected", func(t *testing.T) {
		_, err := svc.SetSubscription(ctx, 999, true)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("activates and deactivates", func(t *testing.T) {
		u, err := svc.SetSubscription(ctx, 900, true)
		require.NoError(t, err)
		require.True(t, u.Subscribed)

		u, err = svc.SetSubscription(ctx, 900, false)
		require.NoError(t, err)
		require.False(t, u.Subscribed)
	})
}
