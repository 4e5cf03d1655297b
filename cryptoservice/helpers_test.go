package cryptoservice_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/require"

	"github.com/piprate/ssikit/suite"
)

func suiteRegistry() *suite.Registry {
	reg := suite.NewRegistry()
	reg.Register(suite.NewEd25519Suite())
	return reg
}

func base58Decode(t *testing.T, s string) []byte {
	t.Helper()
	decoded := base58.Decode(s)
	require.NotEmpty(t, decoded)
	return decoded
}

func base58Encode(t *testing.T, b []byte) string {
	t.Helper()
	return base58.Encode(b)
}
