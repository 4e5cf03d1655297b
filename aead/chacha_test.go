package aead_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piprate/ssikit/aead"
	"github.com/piprate/ssikit/ssierrors"
)

func cek() []byte {
	k := make([]byte, aead.KeySize)
	for i := range k {
		k[i] = byte(i)
	}
	return k
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := cek()
	ciphertext, iv, tag, err := aead.EncryptPlaintext([]byte("hello world"), "context", key)
	require.NoError(t, err)

	plaintext, err := aead.DecryptCiphertext(ciphertext, "context", iv, tag, key)
	require.NoError(t, err)
	assert.Equal(t, "hello world", plaintext)
}

func TestDecrypt_WrongAADFailsAuthentication(t *testing.T) {
	key := cek()
	ciphertext, iv, tag, err := aead.EncryptPlaintext([]byte("hello"), "context-a", key)
	require.NoError(t, err)

	_, err = aead.DecryptCiphertext(ciphertext, "context-b", iv, tag, key)
	require.Error(t, err)
	assert.True(t, ssierrors.Has(err, ssierrors.UnknownCrypto))
}

func TestDecrypt_WrongKeyFailsAuthentication(t *testing.T) {
	key := cek()
	ciphertext, iv, tag, err := aead.EncryptPlaintext([]byte("hello"), "context", key)
	require.NoError(t, err)

	otherKey := make([]byte, aead.KeySize)
	_, err = aead.DecryptCiphertext(ciphertext, "context", iv, tag, otherKey)
	require.Error(t, err)
	assert.True(t, ssierrors.Has(err, ssierrors.UnknownCrypto))
}

func TestDecrypt_MalformedIVIsInvalidStructure(t *testing.T) {
	key := cek()
	ciphertext, _, tag, err := aead.EncryptPlaintext([]byte("hello"), "context", key)
	require.NoError(t, err)

	_, err = aead.DecryptCiphertext(ciphertext, "context", "not-base64!!", tag, key)
	require.Error(t, err)
	assert.True(t, ssierrors.Has(err, ssierrors.InvalidStructure))
}

func TestEncrypt_NoncesAreUnique(t *testing.T) {
	key := cek()
	_, iv1, _, err := aead.EncryptPlaintext([]byte("hello"), "context", key)
	require.NoError(t, err)
	_, iv2, _, err := aead.EncryptPlaintext([]byte("hello"), "context", key)
	require.NoError(t, err)

	assert.NotEqual(t, iv1, iv2)
}
