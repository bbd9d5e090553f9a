package miniapp_test

import (
	"net/http"
	"testing"

	"github.com/kompanion-app/kompanion/pkg/miniappsdk"
	"github.com/stretchr/testify/require"
)

func TestInviteLifecycle(t *testing.T) {
	client := setupServer(t)
	ctx := t.Context()

	// Invites work without either side having a profile.
	invite, err := client.CreateInvite(ctx, 2001, 2002)
	require.NoError(t, err)
	require.NotZero(t, invite.ID)
	require.Equal(t, int64(2001), invite.FromTgID)
	require.Equal(t, int64(2002), invite.ToTgID)
	require.Equal(t, "pending", invite.Status)
	require.NotEmpty(t, invite.CreatedAt)

	// Idempotent while pending: same pair, same record.
	again, err := client.CreateInvite(ctx, 2001, 2002)
	require.NoError(t, err)
	require.Equal(t, invite.ID, again.ID)

	// The reverse direction is its own invite.
	reverse, err := client.CreateInvite(ctx, 2002, 2001)
	require.NoError(t, err)
	require.NotEqual(t, invite.ID, reverse.ID)

	invites, err := client.ListInvites(ctx, 2001)
	require.NoError(t, err)
	require.Len(t, invites, 2)

	invites, err = client.ListInvites(ctx, 2002)
	require.NoError(t, err)
	require.Len(t, invites, 2)

	invites, err = client.ListInvites(ctx, 2999)
	require.NoError(t, err)
	require.Empty(t, invites)
}

func TestInviteSelfRejected(t *testing.T) {
	client := setupServer(t)

	_, err := client.CreateInvite(t.Context(), 2003, 2003)
	requireAPIError(t, err, http.StatusBadRequest, miniappsdk.ErrorCodeInvalidRequest)
}
