package miniapp_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"

	httpapi "github.com/kompanion-app/kompanion/internal/miniapp/http"
	"github.com/kompanion-app/kompanion/internal/miniapp/service"
	"github.com/kompanion-app/kompanion/internal/miniapp/store/drivers/sqlite"
	"github.com/kompanion-app/kompanion/pkg/miniappsdk"
	"github.com/stretchr/testify/require"
)

// setupServer wires a fresh in-memory store into the full HTTP router and
// serves it from an httptest server, so tests exercise the real middleware
// chain and JSON surface end to end.
func setupServer(t *testing.T) *miniappsdk.Client {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.DiscardHandler)
	router := httpapi.NewRouter("test", st, logger)
	router.ProfileService = &service.ProfileService{Store: st}
	router.InviteService = &service.InviteService{Store: st}
	router.MessageService = &service.MessageService{Store: st}
	router.BalanceService = &service.BalanceService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return miniappsdk.NewClient(server.URL)
}

// createProfile registers a minimal profile and fails the test on error.
func createProfile(t *testing.T, ctx context.Context, client *miniappsdk.Client, tgID int64, firstName string) *miniappsdk.Profile {
	t.Helper()

	profile, err := client.UpsertProfile(ctx, miniappsdk.ProfileRequest{
		TgID:      tgID,
		FirstName: firstName,
	})
	require.NoError(t, err)
	return profile
}

// openChat creates pending invites in both directions so the pair can talk.
func openChat(t *testing.T, ctx context.Context, client *miniappsdk.Client, a, b int64) {
	t.Helper()

	_, err := client.CreateInvite(ctx, a, b)
	require.NoError(t, err)
	_, err = client.CreateInvite(ctx, b, a)
	require.NoError(t, err)
}

// requireAPIError asserts err is an APIError with the given status and code.
func requireAPIError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()

	var apiErr *miniappsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, statusCode, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
