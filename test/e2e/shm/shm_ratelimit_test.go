package shm_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/shm/pkg/shmsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitInviteEndpoints verifies invite uploads are limited per client.
func TestRateLimitInviteEndpoints(t *testing.T) {
	baseURL, cleanup := setupContainer(t, map[string]string{
		"RATELIMIT_MODERATE_REQUESTS":   "3",
		"RATELIMIT_MODERATE_WINDOW_SEC": "60",
		"RATELIMIT_MODERATE_BURST":      "3",
	})
	defer cleanup()

	client := shmsdk.NewSDKClient(baseURL)
	ics := inviteICS("Limited", "20240101T090000Z")

	for i := range 3 {
		_, err := client.ParseInvite(t.Context(), ics)
		require.NoError(t, err, "request %d should not be rate limited", i+1)
	}

	_, err := client.ParseInvite(t.Context(), ics)
	assertAPIError(t, err, http.StatusTooManyRequests, "rate_limit_exceeded")

	// Reads use a separate, more generous profile.
	_, err = client.ListMeetings(t.Context())
	require.NoError(t, err)
}
