package miniapp_test

import (
	"net/http"
	"testing"

	"github.com/kompanion-app/kompanion/pkg/miniappsdk"
	"github.com/stretchr/testify/require"
)

func TestBalanceAccumulates(t *testing.T) {
	client := setupServer(t)
	ctx := t.Context()

	createProfile(t, ctx, client, 4001, "Payer")

	balance, err := client.AddBalance(ctx, 4001, 100)
	require.NoError(t, err)
	require.Equal(t, float64(100), balance.Balance)

	balance, err = client.AddBalance(ctx, 4001, 49.5)
	require.NoError(t, err)
	require.Equal(t, 149.5, balance.Balance)

	// Negative deltas are allowed and may overdraw.
	balance, err = client.AddBalance(ctx, 4001, -200)
	require.NoError(t, err)
	require.Equal(t, -50.5, balance.Balance)
}

func TestBalanceUnknownUser(t *testing.T) {
	client := setupServer(t)

	_, err := client.AddBalance(t.Context(), 4999, 10)
	requireAPIError(t, err, http.StatusNotFound, miniappsdk.ErrorCodeNotFound)
}

func TestSubscriptionToggle(t *testing.T) {
	client := setupServer(t)
	ctx := t.Context()

	createProfile(t, ctx, client, 4101, "Member")

	balance, err := client.SetSubscription(ctx, 4101, true)
	require.NoError(t, err)
	require.True(t, balance.Subscribed)

	balance, err = client.SetSubscription(ctx, 4101, false)
	require.NoError(t, err)
	require.False(t, balance.Subscribed)
}

func TestSubscriptionUnknownUser(t *testing.T) {
	client := setupServer(t)

	_, err := client.SetSubscription(t.Context(), 4999, true)
	requireAPIError(t, err, http.StatusNotFound, miniappsdk.ErrorCodeNotFound)
}
