package utils_test

import (
	"context"
	"testing"

	"washly/utils"

	"github.com/stretchr/testify/assert"
)

func TestIsTokenRevokedFailsOpenWithoutCache(t *testing.T) {
	// No Redis in unit tests; a nil auth cache must never lock users out.
	assert.False(t, utils.IsTokenRevoked(context.Background(), "some-token"))
}

func TestRevokeTokenSkipsExpired(t *testing.T) {
	// A non-positive TTL means the token is already dead; revoking it must
	// be a no-op rather than a cache round trip.
	assert.NoError(t, utils.RevokeToken(context.Background(), "some-token", 0))
	assert.NoError(t, utils.RevokeToken(context.Background(), "some-token", -1))
}
