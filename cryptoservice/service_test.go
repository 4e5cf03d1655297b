package cryptoservice_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piprate/ssikit/cryptoservice"
	"github.com/piprate/ssikit/did"
	"github.com/piprate/ssikit/ssierrors"
)

func newService() *cryptoservice.Service {
	return cryptoservice.New(suiteRegistry(), zerolog.Nop())
}

func TestCreateMyDID_NoArgs(t *testing.T) {
	svc := newService()

	d, key, err := svc.CreateMyDID(did.MyDidInfo{})
	require.NoError(t, err)

	assert.Len(t, base58Decode(t, d.Did), 16)
	assert.Len(t, base58Decode(t, key.Verkey), 32)
	assert.Equal(t, d.Verkey, key.Verkey)
}

func TestCreateMyDID_WithSeed(t *testing.T) {
	svc := newService()
	seedStr := "000000000000000000000000Trustee1"

	d, key, err := svc.CreateMyDID(did.MyDidInfo{Seed: &seedStr})
	require.NoError(t, err)
	require.NotEmpty(t, d.Did)
	require.NotEmpty(t, key.Signkey)
}

func TestCreateMyDID_CidProducesFullVerkeyAsDid(t *testing.T) {
	svc := newService()
	seedStr := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	cid := true

	d, key, err := svc.CreateMyDID(did.MyDidInfo{Seed: &seedStr, Cid: &cid})
	require.NoError(t, err)
	assert.Equal(t, key.Verkey, d.Did)
}

func TestSignAndVerify_RoundTrip(t *testing.T) {
	svc := newService()

	_, key, err := svc.CreateMyDID(did.MyDidInfo{})
	require.NoError(t, err)

	msg := []byte("hello ssi")
	sig, err := svc.Sign(key, msg)
	require.NoError(t, err)
	assert.Len(t, sig, 64)

	valid, err := svc.Verify(key.Verkey, msg, sig)
	require.NoError(t, err)
	assert.True(t, valid)

	tampered := append([]byte{}, msg...)
	tampered[0] ^= 0xFF
	valid, err = svc.Verify(key.Verkey, tampered, sig)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestSign_KnownVector(t *testing.T) {
	svc := newService()
	seedStr := "000000000000000000000000Trustee1"
	msg := []byte("{\"reqId\":1496822211362017764}")

	_, key, err := svc.CreateMyDID(did.MyDidInfo{Seed: &seedStr})
	require.NoError(t, err)

	sig, err := svc.Sign(key, msg)
	require.NoError(t, err)
	assert.Len(t, sig, 64)
	assert.Equal(t, []byte{
		20, 191, 100, 213, 101, 12, 197, 198, 203, 49, 89, 220, 205, 192, 224, 221,
		97, 77, 220, 190, 90, 60, 142, 23, 16, 240, 189, 129, 45, 148, 245, 8,
		102, 95, 95, 249, 100, 89, 41, 227, 213, 25, 100, 1, 232, 188, 245, 235,
		186, 21, 52, 176, 236, 11, 99, 70, 155, 159, 89, 215, 197, 239, 138, 5,
	}, sig)

	valid, err := svc.Verify(key.Verkey, msg, sig)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestAuthCrypt_RoundTrip(t *testing.T) {
	svc := newService()

	_, alice, err := svc.CreateMyDID(did.MyDidInfo{})
	require.NoError(t, err)
	_, bob, err := svc.CreateMyDID(did.MyDidInfo{})
	require.NoError(t, err)

	msg := []byte("top secret")
	ciphertext, nonce, err := svc.AuthCrypt(alice, bob.Verkey, msg)
	require.NoError(t, err)

	plaintext, err := svc.AuthCryptOpen(bob, alice.Verkey, ciphertext, nonce)
	require.NoError(t, err)
	assert.Equal(t, msg, plaintext)
}

func TestAuthCrypt_SuiteMismatchIsUnknownCrypto(t *testing.T) {
	svc := newService()

	_, alice, err := svc.CreateMyDID(did.MyDidInfo{})
	require.NoError(t, err)

	otherVerkey := alice.Verkey + ":other-suite"
	_, _, err = svc.AuthCrypt(alice, otherVerkey, []byte("msg"))
	require.Error(t, err)
	assert.True(t, ssierrors.Has(err, ssierrors.UnknownCrypto))
}

func TestAnonCrypt_RoundTrip(t *testing.T) {
	svc := newService()

	_, bob, err := svc.CreateMyDID(did.MyDidInfo{})
	require.NoError(t, err)

	msg := []byte("anonymous message")
	ciphertext, err := svc.AnonCrypt(bob.Verkey, msg)
	require.NoError(t, err)

	plaintext, err := svc.AnonCryptOpen(bob, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, msg, plaintext)
}

func TestEncryptDecryptPlaintext_RoundTrip(t *testing.T) {
	svc := newService()

	cek := make([]byte, 32)
	for i := range cek {
		cek[i] = byte(i)
	}

	ciphertext, iv, tag, err := svc.EncryptPlaintext([]byte("hello"), "aad", cek)
	require.NoError(t, err)

	plaintext, err := svc.DecryptCiphertext(ciphertext, "aad", iv, tag, cek)
	require.NoError(t, err)
	assert.Equal(t, "hello", plaintext)
}

func TestCreateTheirDID_AbbreviatedVerkey(t *testing.T) {
	svc := newService()

	seedStr := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	d, key, err := svc.CreateMyDID(did.MyDidInfo{Seed: &seedStr})
	require.NoError(t, err)

	abbrev := "~" + base58Encode(t, base58Decode(t, key.Verkey)[16:])
	theirDid, err := svc.CreateTheirDID(did.TheirDidInfo{Did: d.Did, Verkey: &abbrev})
	require.NoError(t, err)
	assert.Equal(t, key.Verkey, theirDid.Verkey)
}

func TestValidateKey_RejectsGarbage(t *testing.T) {
	svc := newService()
	err := svc.ValidateKey("not-base58-!!!")
	require.Error(t, err)
	assert.True(t, ssierrors.Has(err, ssierrors.InvalidStructure))
}
