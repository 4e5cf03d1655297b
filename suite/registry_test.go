package suite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piprate/ssikit/ssierrors"
	"github.com/piprate/ssikit/suite"
)

func TestRegistry_LookupUnknown(t *testing.T) {
	reg := suite.NewRegistry()
	_, err := reg.Lookup("op", "nonexistent")
	require.Error(t, err)
	assert.True(t, ssierrors.Has(err, ssierrors.UnknownCrypto))
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := suite.NewRegistry()
	reg.Register(suite.NewEd25519Suite())

	s, err := reg.Lookup("op", suite.DefaultSuiteName)
	require.NoError(t, err)
	assert.Equal(t, suite.DefaultSuiteName, s.Name())
}

func TestRegistry_RegisterDuplicatePanics(t *testing.T) {
	reg := suite.NewRegistry()
	reg.Register(suite.NewEd25519Suite())

	assert.Panics(t, func() {
		reg.Register(suite.NewEd25519Suite())
	})
}

func TestDefault_HasEd25519(t *testing.T) {
	s, err := suite.Default().Lookup("op", suite.DefaultSuiteName)
	require.NoError(t, err)
	assert.Equal(t, suite.DefaultSuiteName, s.Name())
}
