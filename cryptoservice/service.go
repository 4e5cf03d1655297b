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

// Package cryptoservice is the façade that wires the ciphersuite registry,
// the verkey codec, the seed normalizer and the DID/Key factory into the
// operations exposed at the SDK boundary: key/DID creation, signing and
// verification, authenticated and anonymous encryption, and the AEAD
// plaintext/ciphertext helpers.
//
// All operations here are pure and CPU-bound; the only suspension point in
// the source this is ported from is the registry's read lock, which in Go
// is a plain sync.RWMutex acquired synchronously (see suite.Registry). A
// caller wanting to offload CPU-heavy calls onto a worker pool may do so
// around these calls without changing their semantics.
package cryptoservice

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/piprate/ssikit/aead"
	"github.com/piprate/ssikit/did"
	"github.com/piprate/ssikit/ssierrors"
	"github.com/piprate/ssikit/suite"
	"github.com/piprate/ssikit/verkey"
)

// Service bundles a ciphersuite registry behind the operations of spec.md §4.
// The zero value is not usable; construct with New or NewDefault.
type Service struct {
	registry *suite.Registry
	log      zerolog.Logger
}

// New builds a Service around reg. Use this to plug in a registry that has
// been extended with non-default suites.
func New(reg *suite.Registry, logger zerolog.Logger) *Service {
	return &Service{registry: reg, log: logger}
}

// NewDefault builds a Service around the process-wide default registry
// (ed25519 only), logging through the global zerolog logger.
func NewDefault() *Service {
	return New(suite.Default(), log.Logger)
}

// CreateKey implements spec.md §4.4 create_key.
func (s *Service) CreateKey(info did.KeyInfo) (did.Key, error) {
	s.log.Trace().Str("op", "create_key").Msg("entering")
	key, err := did.CreateKey(s.registry, info)
	s.log.Trace().Str("op", "create_key").Err(err).Msg("leaving")
	return key, err
}

// CreateMyDID implements spec.md §4.4 create_my_did.
func (s *Service) CreateMyDID(info did.MyDidInfo) (did.Did, did.Key, error) {
	s.log.Trace().Str("op", "create_my_did").Msg("entering")
	d, key, err := did.CreateMyDID(s.registry, info)
	s.log.Trace().Str("op", "create_my_did").Str("did", d.Did).Err(err).Msg("leaving")
	return d, key, err
}

// CreateTheirDID implements spec.md §4.4 create_their_did.
func (s *Service) CreateTheirDID(info did.TheirDidInfo) (did.TheirDid, error) {
	s.log.Trace().Str("op", "create_their_did").Str("did", info.Did).Msg("entering")
	theirDid, err := did.CreateTheirDID(s.registry, info)
	s.log.Trace().Str("op", "create_their_did").Err(err).Msg("leaving")
	return theirDid, err
}

// RotateKey implements spec.md §4.4's rotation note: equivalent to CreateKey
// with fresh material, suite-consistent with the key being replaced.
func (s *Service) RotateKey(current did.Key, newSeed *string) (did.Key, error) {
	return did.RotateKey(s.registry, current, newSeed)
}

// ValidateKey implements spec.md §4.1 validate_key.
func (s *Service) ValidateKey(vk string) error {
	return did.ValidateKey("validate_key", s.registry, vk)
}

// Sign implements spec.md §4.5 sign.
func (s *Service) Sign(myKey did.Key, msg []byte) ([]byte, error) {
	const op = "sign"
	s.log.Trace().Str("op", op).Msg("entering")

	suiteName := verkey.CryptoName(myKey.Verkey)
	su, err := s.registry.Lookup(op, suiteName)
	if err != nil {
		return nil, err
	}

	sk, err := decodeBase58(op, myKey.Signkey)
	if err != nil {
		return nil, err
	}

	sig, err := su.Sign(sk, msg)
	s.log.Trace().Str("op", op).Err(err).Msg("leaving")
	return sig, err
}

// Verify implements spec.md §4.5 verify.
func (s *Service) Verify(theirVk string, msg, sig []byte) (bool, error) {
	const op = "verify"
	s.log.Trace().Str("op", op).Msg("entering")

	pk, err := verkey.DecodeFull(op, theirVk)
	if err != nil {
		return false, err
	}
	suiteName := verkey.CryptoName(theirVk)
	su, err := s.registry.Lookup(op, suiteName)
	if err != nil {
		return false, err
	}

	valid, err := su.Verify(pk, msg, sig)
	s.log.Trace().Str("op", op).Bool("valid", valid).Err(err).Msg("leaving")
	return valid, err
}

// AuthCrypt implements spec.md §4.5 authcrypt.
func (s *Service) AuthCrypt(myKey did.Key, theirVk string, msg []byte) (ciphertext, nonce []byte, err error) {
	const op = "authcrypt"

	su, sk, theirPK, err := s.compatibleSuite(op, myKey, theirVk)
	if err != nil {
		return nil, nil, err
	}

	nonce = su.GenNonce()
	ciphertext, err = su.AuthCrypt(sk, theirPK, msg, nonce)
	return ciphertext, nonce, err
}

// AuthCryptOpen implements spec.md §4.5 authcrypt_open.
func (s *Service) AuthCryptOpen(myKey did.Key, theirVk string, ciphertext, nonce []byte) ([]byte, error) {
	const op = "authcrypt_open"

	su, sk, theirPK, err := s.compatibleSuite(op, myKey, theirVk)
	if err != nil {
		return nil, err
	}

	return su.AuthCryptOpen(sk, theirPK, ciphertext, nonce)
}

// AnonCrypt implements spec.md §4.5 anoncrypt.
func (s *Service) AnonCrypt(theirVk string, msg []byte) ([]byte, error) {
	const op = "anoncrypt"

	pk, err := verkey.DecodeFull(op, theirVk)
	if err != nil {
		return nil, err
	}
	su, err := s.registry.Lookup(op, verkey.CryptoName(theirVk))
	if err != nil {
		return nil, err
	}

	return su.AnonCrypt(pk, msg)
}

// AnonCryptOpen implements spec.md §4.5 anoncrypt_open.
func (s *Service) AnonCryptOpen(myKey did.Key, ciphertext []byte) ([]byte, error) {
	const op = "anoncrypt_open"

	suiteName := verkey.CryptoName(myKey.Verkey)
	su, err := s.registry.Lookup(op, suiteName)
	if err != nil {
		return nil, err
	}

	pk, err := verkey.DecodeFull(op, myKey.Verkey)
	if err != nil {
		return nil, err
	}
	sk, err := decodeBase58(op, myKey.Signkey)
	if err != nil {
		return nil, err
	}

	return su.AnonCryptOpen(pk, sk, ciphertext)
}

// EncryptPlaintext implements spec.md §4.5's AEAD helper.
func (s *Service) EncryptPlaintext(plaintext []byte, aad string, cek []byte) (ciphertext, iv, tag string, err error) {
	return aead.EncryptPlaintext(plaintext, aad, cek)
}

// DecryptCiphertext implements spec.md §4.5's AEAD helper.
func (s *Service) DecryptCiphertext(ciphertext, aad, iv, tag string, cek []byte) (string, error) {
	return aead.DecryptCiphertext(ciphertext, aad, iv, tag, cek)
}

// compatibleSuite resolves myKey's signing key and their verkey's public key,
// failing with UnknownCrypto if the two verkeys declare different suites.
func (s *Service) compatibleSuite(op string, myKey did.Key, theirVk string) (su suite.Suite, sk, theirPK []byte, err error) {
	mySuite := verkey.CryptoName(myKey.Verkey)
	theirSuite := verkey.CryptoName(theirVk)
	if mySuite != theirSuite {
		return nil, nil, nil, ssierrors.New(ssierrors.UnknownCrypto, op, theirVk,
			"my key crypto type is incompatible with their key crypto type: "+mySuite+" vs "+theirSuite)
	}

	su, err = s.registry.Lookup(op, mySuite)
	if err != nil {
		return nil, nil, nil, err
	}

	sk, err = decodeBase58(op, myKey.Signkey)
	if err != nil {
		return nil, nil, nil, err
	}

	theirPK, err = verkey.DecodeFull(op, theirVk)
	if err != nil {
		return nil, nil, nil, err
	}

	return su, sk, theirPK, nil
}

func decodeBase58(op, s string) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 && s != "" {
		return nil, ssierrors.New(ssierrors.InvalidStructure, op, "", "invalid base58 signing key")
	}
	return decoded, nil
}
