//go:build unit || e2e

package storetest

import (
	"context"
	"testing"

	"booking-console/internal/domain/session"
	"booking-console/internal/infra"
	"booking-console/internal/infra/credstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunContract exercises the behaviour every credential store driver must share.
// open must return an empty store for the given profile.
func RunContract(t *testing.T, open func(t *testing.T, profile string) credstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key reads as empty", func(t *testing.T) {
		store := open(t, "contract-missing")
		value, err := store.Get(ctx, session.KeyAccess)
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("set overwrites and keys are independent", func(t *testing.T) {
		store := open(t, "contract-set")
		require.NoError(t, store.Set(ctx, session.KeyAccess, "a1"))
		require.NoError(t, store.Set(ctx, session.KeyRefresh, "r1"))
		require.NoError(t, store.Set(ctx, session.KeyAccess, "a2"))

		access, err := store.Get(ctx, session.KeyAccess)
		require.NoError(t, err)
		assert.Equal(t, "a2", access)

		refresh, err := store.Get(ctx, session.KeyRefresh)
		require.NoError(t, err)
		assert.Equal(t, "r1", refresh)
	})

	t.Run("delete removes a single key", func(t *testing.T) {
		store := open(t, "contract-delete")
		require.NoError(t, store.Set(ctx, session.KeyAccess, "a1"))
		require.NoError(t, store.Set(ctx, session.KeyUser, "alice"))
		require.NoError(t, store.Delete(ctx, session.KeyAccess))
		require.NoError(t, store.Delete(ctx, session.KeyRefresh))

		access, err := store.Get(ctx, session.KeyAccess)
		require.NoError(t, err)
		assert.Empty(t, access)

		user, err := store.Get(ctx, session.KeyUser)
		require.NoError(t, err)
		assert.Equal(t, "alice", user)
	})

	t.Run("clear removes every key of the profile only", func(t *testing.T) {
		store := open(t, "contract-clear")
		for _, key := range session.Keys {
			require.NoError(t, store.Set(ctx, key, "v-"+key))
		}
		require.NoError(t, store.Clear(ctx))
		require.NoError(t, store.Clear(ctx))

		for _, key := range session.Keys {
			value, err := store.Get(ctx, key)
			require.NoError(t, err)
			assert.Empty(t, value, key)
		}
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		store := open(t, "contract-invalid")
		err := store.Set(ctx, " ", "x")
		assert.True(t, infra.IsKind(err, infra.KindInvalidKey))
	})
}
