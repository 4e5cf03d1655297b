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

package suite

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"

	"filippo.io/edwards25519"
	"github.com/jamesruan/sodium"

	"github.com/piprate/ssikit/ssierrors"
)

const (
	// NonceSize is the crypto_box nonce length used by AuthCrypt/AuthCryptOpen.
	NonceSize = 24
)

// ed25519Suite is the default ciphersuite: Ed25519 signatures, with
// box/sealed-box encryption performed over the Curve25519 keys libsodium
// derives from the same Ed25519 keypair (SignPublicKey/SignSecretKey.ToBox).
type ed25519Suite struct{}

// NewEd25519Suite returns the default ciphersuite implementation.
func NewEd25519Suite() Suite {
	return ed25519Suite{}
}

func (ed25519Suite) Name() string { return DefaultSuiteName }

func (s ed25519Suite) KeyGen(seed []byte) (pk, sk []byte, err error) {
	const op = "ed25519.keygen"

	if seed == nil {
		pub, priv, genErr := ed25519.GenerateKey(rand.Reader)
		if genErr != nil {
			return nil, nil, ssierrors.Wrap(ssierrors.InvalidStructure, op, "", genErr)
		}
		return []byte(pub), []byte(priv), nil
	}

	if len(seed) != ed25519.SeedSize {
		return nil, nil, ssierrors.New(ssierrors.InvalidStructure, op, "", "seed must be 32 bytes")
	}

	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	return []byte(pub), []byte(priv), nil
}

func (s ed25519Suite) Sign(sk, msg []byte) ([]byte, error) {
	const op = "ed25519.sign"

	if len(sk) != ed25519.PrivateKeySize {
		return nil, ssierrors.New(ssierrors.InvalidStructure, op, "", "signing key must be 64 bytes")
	}
	return ed25519.Sign(ed25519.PrivateKey(sk), msg), nil
}

func (s ed25519Suite) Verify(pk, msg, sig []byte) (bool, error) {
	const op = "ed25519.verify"

	if len(pk) != ed25519.PublicKeySize {
		return false, ssierrors.New(ssierrors.InvalidStructure, op, "", "verkey must be 32 bytes")
	}
	if len(sig) != ed25519.SignatureSize {
		return false, ssierrors.New(ssierrors.InvalidStructure, op, "", "signature must be 64 bytes")
	}
	return ed25519.Verify(ed25519.PublicKey(pk), msg, sig), nil
}

func (s ed25519Suite) GenNonce() []byte {
	n := sodium.NewBoxNonce()
	return n.Bytes
}

func (s ed25519Suite) AuthCrypt(sk, peerPK, plaintext, nonce []byte) ([]byte, error) {
	const op = "ed25519.authcrypt"

	if len(nonce) != NonceSize {
		return nil, ssierrors.New(ssierrors.InvalidStructure, op, "", "nonce must be 24 bytes")
	}
	mySK, theirPK, err := boxKeys(op, sk, peerPK)
	if err != nil {
		return nil, err
	}

	ct := sodium.Bytes(plaintext).Box(sodium.BoxNonce{Bytes: nonce}, theirPK, mySK)
	return []byte(ct), nil
}

func (s ed25519Suite) AuthCryptOpen(sk, peerPK, ciphertext, nonce []byte) ([]byte, error) {
	const op = "ed25519.authcrypt_open"

	if len(nonce) != NonceSize {
		return nil, ssierrors.New(ssierrors.InvalidStructure, op, "", "nonce must be 24 bytes")
	}
	mySK, theirPK, err := boxKeys(op, sk, peerPK)
	if err != nil {
		return nil, err
	}

	pt, err := sodium.Bytes(ciphertext).BoxOpen(sodium.BoxNonce{Bytes: nonce}, theirPK, mySK)
	if err != nil {
		return nil, ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
	}
	return []byte(pt), nil
}

func (s ed25519Suite) AnonCrypt(peerPK, plaintext []byte) ([]byte, error) {
	const op = "ed25519.anoncrypt"

	if len(peerPK) != ed25519.PublicKeySize {
		return nil, ssierrors.New(ssierrors.InvalidStructure, op, "", "verkey must be 32 bytes")
	}
	boxPK := sodium.SignPublicKey{Bytes: peerPK}.ToBox()
	return []byte(sodium.Bytes(plaintext).SealedBox(boxPK)), nil
}

func (s ed25519Suite) AnonCryptOpen(pk, sk, ciphertext []byte) ([]byte, error) {
	const op = "ed25519.anoncrypt_open"

	if len(pk) != ed25519.PublicKeySize {
		return nil, ssierrors.New(ssierrors.InvalidStructure, op, "", "verkey must be 32 bytes")
	}
	if len(sk) != ed25519.PrivateKeySize {
		return nil, ssierrors.New(ssierrors.InvalidStructure, op, "", "signing key must be 64 bytes")
	}

	boxPK := sodium.SignPublicKey{Bytes: pk}.ToBox()
	boxSK := sodium.SignSecretKey{Bytes: sk}.ToBox()

	pt, err := sodium.Bytes(ciphertext).SealedBoxOpen(sodium.BoxKP{PublicKey: boxPK, SecretKey: boxSK})
	if err != nil {
		return nil, ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
	}
	return []byte(pt), nil
}

// ValidateKey rejects non-canonical point encodings. This is the structural
// check the spec requires before a verkey is trusted for cryptographic use.
func (s ed25519Suite) ValidateKey(pk []byte) error {
	const op = "ed25519.validate_key"

	if len(pk) != ed25519.PublicKeySize {
		return ssierrors.New(ssierrors.InvalidStructure, op, "", "verkey must be 32 bytes")
	}
	p, err := new(edwards25519.Point).SetBytes(pk)
	if err != nil {
		return ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
	}
	// SetBytes accepts non-canonical encodings of valid points; re-encoding
	// and comparing rejects them.
	if !bytes.Equal(p.Bytes(), pk) {
		return ssierrors.New(ssierrors.InvalidStructure, op, "", "verkey is not a canonical point encoding")
	}
	return nil
}

func boxKeys(op string, sk, peerPK []byte) (sodium.BoxSecretKey, sodium.BoxPublicKey, error) {
	if len(sk) != ed25519.PrivateKeySize {
		return sodium.BoxSecretKey{}, sodium.BoxPublicKey{}, ssierrors.New(ssierrors.InvalidStructure, op, "", "signing key must be 64 bytes")
	}
	if len(peerPK) != ed25519.PublicKeySize {
		return sodium.BoxSecretKey{}, sodium.BoxPublicKey{}, ssierrors.New(ssierrors.InvalidStructure, op, "", "verkey must be 32 bytes")
	}

	mySK := sodium.SignSecretKey{Bytes: sk}.ToBox()
	theirPK := sodium.SignPublicKey{Bytes: peerPK}.ToBox()
	return mySK, theirPK, nil
}
