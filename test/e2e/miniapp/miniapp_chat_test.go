package miniapp_test

import (
	"net/http"
	"testing"

	"github.com/kompanion-app/kompanion/pkg/miniappsdk"
	"github.com/stretchr/testify/require"
)

func TestChatGate(t *testing.T) {
	client := setupServer(t)
	ctx := t.Context()

	createProfile(t, ctx, client, 3001, "Alice")

	t.Run("unknown sender gets 404", func(t *testing.T) {
		_, err := client.SendMessage(ctx, 3999, 3001, "hello?")
		requireAPIError(t, err, http.StatusNotFound, miniappsdk.ErrorCodeNotFound)
	})

	t.Run("no invites gets 403", func(t *testing.T) {
		_, err := client.SendMessage(ctx, 3001, 3002, "hello?")
		requireAPIError(t, err, http.StatusForbidden, miniappsdk.ErrorCodeForbidden)
	})

	t.Run("one-way invite is still 403", func(t *testing.T) {
		_, err := client.CreateInvite(ctx, 3001, 3002)
		require.NoError(t, err)

		_, err = client.SendMessage(ctx, 3001, 3002, "hello?")
		requireAPIError(t, err, http.StatusForbidden, miniappsdk.ErrorCodeForbidden)
	})

	t.Run("mutual invites open the chat", func(t *testing.T) {
		_, err := client.CreateInvite(ctx, 3002, 3001)
		require.NoError(t, err)

		msg, err := client.SendMessage(ctx, 3001, 3002, "hi there")
		require.NoError(t, err)
		require.Equal(t, "hi there", msg.Text)
		require.NotEmpty(t, msg.CreatedAt)
	})

	t.Run("subscription bypasses invites entirely", func(t *testing.T) {
		createProfile(t, ctx, client, 3003, "Sam")
		_, err := client.SetSubscription(ctx, 3003, true)
		require.NoError(t, err)

		msg, err := client.SendMessage(ctx, 3003, 3004, "premium hello")
		require.NoError(t, err)
		require.Equal(t, int64(3004), msg.ToTgID)
	})
}

func TestChatHistory(t *testing.T) {
	client := setupServer(t)
	ctx := t.Context()

	createProfile(t, ctx, client, 3101, "A")
	createProfile(t, ctx, client, 3102, "B")
	openChat(t, ctx, client, 3101, 3102)

	_, err := client.SendMessage(ctx, 3101, 3102, "first")
	require.NoError(t, err)
	_, err = client.SendMessage(ctx, 3102, 3101, "second")
	require.NoError(t, err)
	_, err = client.SendMessage(ctx, 3101, 3102, "third")
	require.NoError(t, err)

	history, err := client.GetChat(ctx, 3101, 3102)
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, "first", history[0].Text)
	require.Equal(t, "second", history[1].Text)
	require.Equal(t, "third", history[2].Text)

	// Pair order does not matter.
	mirrored, err := client.GetChat(ctx, 3102, 3101)
	require.NoError(t, err)
	require.Equal(t, history, mirrored)

	// Strangers get an empty transcript, not an error.
	empty, err := client.GetChat(ctx, 3201, 3202)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestChatValidation(t *testing.T) {
	client := setupServer(t)
	ctx := t.Context()

	createProfile(t, ctx, client, 3301, "A")
	createProfile(t, ctx, client, 3302, "B")
	openChat(t, ctx, client, 3301, 3302)

	_, err := client.SendMessage(ctx, 3301, 3302, "")
	requireAPIError(t, err, http.StatusBadRequest, miniappsdk.ErrorCodeInvalidRequest)
}
