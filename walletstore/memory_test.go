package walletstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piprate/ssikit/did"
	"github.com/piprate/ssikit/ssierrors"
	"github.com/piprate/ssikit/walletstore"
)

func TestMemory_PutGetKey(t *testing.T) {
	ctx := context.Background()
	store := walletstore.NewMemory()
	require.NoError(t, store.Open(ctx, "wallet-1"))

	key := did.Key{Verkey: "abc", Signkey: "def"}
	require.NoError(t, store.PutKey(ctx, "wallet-1", key))

	got, err := store.GetKey(ctx, "wallet-1", "abc")
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestMemory_GetKey_UnknownHandle(t *testing.T) {
	ctx := context.Background()
	store := walletstore.NewMemory()

	_, err := store.GetKey(ctx, "nonexistent", "abc")
	require.Error(t, err)
	assert.True(t, ssierrors.Has(err, ssierrors.WalletInvalidHandle))
}

func TestMemory_GetKey_NotFound(t *testing.T) {
	ctx := context.Background()
	store := walletstore.NewMemory()
	require.NoError(t, store.Open(ctx, "wallet-1"))

	_, err := store.GetKey(ctx, "wallet-1", "missing")
	require.Error(t, err)
	assert.True(t, ssierrors.Has(err, ssierrors.WalletNotFound))
}

func TestMemory_ListKeys(t *testing.T) {
	ctx := context.Background()
	store := walletstore.NewMemory()
	require.NoError(t, store.Open(ctx, "wallet-1"))

	require.NoError(t, store.PutKey(ctx, "wallet-1", did.Key{Verkey: "a", Signkey: "sa"}))
	require.NoError(t, store.PutKey(ctx, "wallet-1", did.Key{Verkey: "b", Signkey: "sb"}))

	keys, err := store.ListKeys(ctx, "wallet-1")
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestMemory_DeleteKey(t *testing.T) {
	ctx := context.Background()
	store := walletstore.NewMemory()
	require.NoError(t, store.Open(ctx, "wallet-1"))
	require.NoError(t, store.PutKey(ctx, "wallet-1", did.Key{Verkey: "a", Signkey: "sa"}))

	require.NoError(t, store.DeleteKey(ctx, "wallet-1", "a"))

	_, err := store.GetKey(ctx, "wallet-1", "a")
	require.Error(t, err)
	assert.True(t, ssierrors.Has(err, ssierrors.WalletNotFound))
}

func TestMemory_TheirDIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := walletstore.NewMemory()
	require.NoError(t, store.Open(ctx, "wallet-1"))

	td := did.TheirDid{Did: "did:sov:abc", Verkey: "xyz"}
	require.NoError(t, store.PutTheirDID(ctx, "wallet-1", td))

	got, err := store.GetTheirDID(ctx, "wallet-1", "did:sov:abc")
	require.NoError(t, err)
	assert.Equal(t, td, got)
}
