// Copyright 2022 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package aead implements the ChaCha20-Poly1305 IETF helpers that sit over
// a caller-supplied content-encryption key, base64url-encoding every
// exposed field.
package aead

import (
	"crypto/rand"
	"encoding/base64"
	"unicode/utf8"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/piprate/ssikit/ssierrors"
)

// KeySize is the length in bytes of a content-encryption key (CEK).
const KeySize = chacha20poly1305.KeySize

var b64 = base64.RawURLEncoding

// EncryptPlaintext encrypts plaintext under cek with a fresh 12-byte nonce,
// binding aad as additional authenticated data. It returns the detached
// ciphertext, nonce and 16-byte tag, each base64url-encoded without padding.
func EncryptPlaintext(plaintext []byte, aad string, cek []byte) (ciphertextB64, ivB64, tagB64 string, err error) {
	const op = "encrypt_plaintext"

	c, err := chacha20poly1305.New(cek)
	if err != nil {
		return "", "", "", ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", "", "", ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
	}

	sealed := c.Seal(nil, nonce, plaintext, []byte(aad))
	tagStart := len(sealed) - c.Overhead()
	ciphertext, tag := sealed[:tagStart], sealed[tagStart:]

	return b64.EncodeToString(ciphertext), b64.EncodeToString(nonce), b64.EncodeToString(tag), nil
}

// DecryptCiphertext reverses EncryptPlaintext. Per spec.md §4.5, an
// authentication failure here returns UnknownCrypto (preserved for
// compatibility with the historical behavior §9 flags as questionable);
// every other failure mode returns InvalidStructure.
func DecryptCiphertext(ciphertextB64, aad, ivB64, tagB64 string, cek []byte) (string, error) {
	const op = "decrypt_ciphertext"

	ciphertext, err := b64.DecodeString(ciphertextB64)
	if err != nil {
		return "", ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
	}
	nonce, err := b64.DecodeString(ivB64)
	if err != nil {
		return "", ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
	}
	tag, err := b64.DecodeString(tagB64)
	if err != nil {
		return "", ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
	}

	c, err := chacha20poly1305.New(cek)
	if err != nil {
		return "", ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
	}

	if len(nonce) != chacha20poly1305.NonceSize {
		return "", ssierrors.New(ssierrors.InvalidStructure, op, "", "IV must be 12 bytes")
	}
	if len(tag) != c.Overhead() {
		return "", ssierrors.New(ssierrors.InvalidStructure, op, "", "tag must be 16 bytes")
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := c.Open(nil, nonce, sealed, []byte(aad))
	if err != nil {
		return "", ssierrors.Wrap(ssierrors.UnknownCrypto, op, "", err)
	}

	if !utf8.Valid(plaintext) {
		return "", ssierrors.New(ssierrors.InvalidStructure, op, "", "decrypted plaintext is not valid UTF-8")
	}

	return string(plaintext), nil
}
