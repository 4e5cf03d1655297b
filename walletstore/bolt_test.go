package walletstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piprate/ssikit/did"
	"github.com/piprate/ssikit/walletstore"
)

func TestBolt_PutGetKey(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "wallet.db")

	store, err := walletstore.NewBolt(dbPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Open(ctx, "wallet-1"))

	key := did.Key{Verkey: "abc", Signkey: "def"}
	require.NoError(t, store.PutKey(ctx, "wallet-1", key))

	got, err := store.GetKey(ctx, "wallet-1", "abc")
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestBolt_ListKeys(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "wallet.db")

	store, err := walletstore.NewBolt(dbPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Open(ctx, "wallet-1"))
	require.NoError(t, store.PutKey(ctx, "wallet-1", did.Key{Verkey: "a", Signkey: "sa"}))
	require.NoError(t, store.PutKey(ctx, "wallet-1", did.Key{Verkey: "b", Signkey: "sb"}))

	keys, err := store.ListKeys(ctx, "wallet-1")
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestBolt_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "wallet.db")

	store, err := walletstore.NewBolt(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Open(ctx, "wallet-1"))
	require.NoError(t, store.PutKey(ctx, "wallet-1", did.Key{Verkey: "a", Signkey: "sa"}))
	require.NoError(t, store.Close())

	reopened, err := walletstore.NewBolt(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetKey(ctx, "wallet-1", "a")
	require.NoError(t, err)
	assert.Equal(t, "sa", got.Signkey)
}
