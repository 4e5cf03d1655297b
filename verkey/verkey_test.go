package verkey_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piprate/ssikit/ssierrors"
	"github.com/piprate/ssikit/suite"
	"github.com/piprate/ssikit/verkey"
)

func TestSplit_NoSuffix(t *testing.T) {
	body, suiteName := verkey.Split("abc123")
	assert.Equal(t, "abc123", body)
	assert.Equal(t, suite.DefaultSuiteName, suiteName)
}

func TestSplit_WithSuffix(t *testing.T) {
	body, suiteName := verkey.Split("abc123:other-suite")
	assert.Equal(t, "abc123", body)
	assert.Equal(t, "other-suite", suiteName)
}

func TestCryptoName(t *testing.T) {
	assert.Equal(t, suite.DefaultSuiteName, verkey.CryptoName("abc123"))
	assert.Equal(t, "other-suite", verkey.CryptoName("abc123:other-suite"))
}

func TestBuildFull_NilOptionalVerkeyReturnsDidBody(t *testing.T) {
	full, err := verkey.BuildFull("op", "the-did-body", nil)
	require.NoError(t, err)
	assert.Equal(t, "the-did-body", full)
}

func TestBuildFull_NonAbbreviatedVerkeyPassesThrough(t *testing.T) {
	vk := "CnEDk9HrMnmiHXEV1WFgbVCRteYnPqsJwrTdcZaNhFVW"
	full, err := verkey.BuildFull("op", "8wZcEriaNLNKtteJvx7f8i", &vk)
	require.NoError(t, err)
	assert.Equal(t, vk, full)
}

func TestBuildFull_PreservesSuiteSuffix(t *testing.T) {
	abbrev := "~NcYxiDXkpYi6ov5FcYDi1e:other-suite"
	full, err := verkey.BuildFull("op", "8wZcEriaNLNKtteJvx7f8i", &abbrev)
	require.NoError(t, err)
	assert.Equal(t, "5L2HBnzbu6Auh2pkDRbFt5f4prvgE2LzknkuYLsKkacp:other-suite", full)
}

func TestValidateStructure_FullKey(t *testing.T) {
	vk := base58.Encode(make([]byte, 32))
	assert.NoError(t, verkey.ValidateStructure("op", vk))
}

func TestValidateStructure_AbbreviatedKey(t *testing.T) {
	vk := "~" + base58.Encode(make([]byte, 16))
	assert.NoError(t, verkey.ValidateStructure("op", vk))
}

func TestValidateStructure_WrongLengthRejected(t *testing.T) {
	vk := base58.Encode(make([]byte, 20))
	err := verkey.ValidateStructure("op", vk)
	require.Error(t, err)
	assert.True(t, ssierrors.Has(err, ssierrors.InvalidStructure))
}

func TestDecodeFull_RejectsAbbreviated(t *testing.T) {
	vk := "~" + base58.Encode(make([]byte, 16))
	_, err := verkey.DecodeFull("op", vk)
	require.Error(t, err)
	assert.True(t, ssierrors.Has(err, ssierrors.InvalidStructure))
}

func TestDecodeFull_DecodesExactly32Bytes(t *testing.T) {
	raw := make([]byte, 32)
	raw[0] = 7
	vk := base58.Encode(raw)

	decoded, err := verkey.DecodeFull("op", vk)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}
