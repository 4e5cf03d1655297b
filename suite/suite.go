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

// Package suite defines the ciphersuite capability contract used by the
// CryptoService and provides the process-wide registry of named suites.
package suite

// Suite is the capability set a named ciphersuite must provide. Concrete
// key types stay private to the suite's own package; callers only ever
// hold the wire-encoded (base58) forms.
type Suite interface {
	// Name returns the suite's registry key, e.g. "ed25519".
	Name() string

	// KeyGen produces a (public, private) keypair. If seed is non-nil,
	// derivation is deterministic; otherwise a CSPRNG is used.
	KeyGen(seed []byte) (pk, sk []byte, err error)

	// Sign produces a detached signature over msg using sk.
	Sign(sk, msg []byte) ([]byte, error)

	// Verify reports whether sig is a valid signature of msg under pk.
	// It returns an error only when pk or sig are structurally malformed;
	// a well-formed but wrong signature returns (false, nil).
	Verify(pk, msg, sig []byte) (bool, error)

	// GenNonce returns a fresh nonce sized for AuthCrypt/AuthCryptOpen.
	GenNonce() []byte

	// AuthCrypt performs authenticated public-key encryption of plaintext
	// from sk to peerPK, using the given nonce.
	AuthCrypt(sk, peerPK, plaintext, nonce []byte) ([]byte, error)

	// AuthCryptOpen reverses AuthCrypt.
	AuthCryptOpen(sk, peerPK, ciphertext, nonce []byte) ([]byte, error)

	// AnonCrypt performs sealed-box encryption to peerPK; no sender key
	// is required or recoverable by the recipient.
	AnonCrypt(peerPK, plaintext []byte) ([]byte, error)

	// AnonCryptOpen reverses AnonCrypt using the recipient's own keypair.
	AnonCryptOpen(pk, sk, ciphertext []byte) ([]byte, error)

	// ValidateKey performs a cheap structural check on a public key
	// (e.g. canonical point encoding).
	ValidateKey(pk []byte) error
}
