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

package did

import (
	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/piprate/ssikit/seed"
	"github.com/piprate/ssikit/ssierrors"
	"github.com/piprate/ssikit/suite"
	"github.com/piprate/ssikit/verkey"
)

// CreateKey implements spec.md §4.4 create_key: resolve the suite, normalize
// the seed, generate a keypair, and render both halves as base58, tagging
// the verkey with ":<suite>" when it isn't the default.
func CreateKey(reg *suite.Registry, info KeyInfo) (Key, error) {
	const op = "create_key"

	suiteName := suite.DefaultSuiteName
	if info.CryptoType != nil {
		suiteName = *info.CryptoType
	}

	s, err := reg.Lookup(op, suiteName)
	if err != nil {
		return Key{}, err
	}

	seedBytes, err := seed.Normalize(info.Seed)
	if err != nil {
		return Key{}, err
	}

	pk, sk, err := s.KeyGen(seedBytes)
	if err != nil {
		return Key{}, ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
	}

	vk := base58.Encode(pk)
	if suiteName != suite.DefaultSuiteName {
		vk += ":" + suiteName
	}

	return Key{Verkey: vk, Signkey: base58.Encode(sk)}, nil
}

// CreateMyDID implements spec.md §4.4 create_my_did.
func CreateMyDID(reg *suite.Registry, info MyDidInfo) (Did, Key, error) {
	const op = "create_my_did"

	suiteName := suite.DefaultSuiteName
	if info.CryptoType != nil {
		suiteName = *info.CryptoType
	}

	s, err := reg.Lookup(op, suiteName)
	if err != nil {
		return Did{}, Key{}, err
	}

	seedBytes, err := seed.Normalize(info.Seed)
	if err != nil {
		return Did{}, Key{}, err
	}

	pk, sk, err := s.KeyGen(seedBytes)
	if err != nil {
		return Did{}, Key{}, ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
	}

	var didValue string
	if info.Did != nil {
		// A caller-supplied DID is used verbatim: method/ledger composition
		// only applies to bodies this package derives itself.
		didValue = *info.Did
	} else {
		var body string
		if info.Cid != nil && *info.Cid {
			body = base58.Encode(pk)
		} else {
			body = base58.Encode(pk[0:16])
		}
		didValue = ComposeDID(body, info.MethodName, info.LedgerType)
	}

	if err := ValidateStructure(op, didValue); err != nil {
		return Did{}, Key{}, err
	}

	vk := base58.Encode(pk)
	if suiteName != suite.DefaultSuiteName {
		vk += ":" + suiteName
	}

	return Did{Did: didValue, Verkey: vk}, Key{Verkey: vk, Signkey: base58.Encode(sk)}, nil
}

// CreateTheirDID implements spec.md §4.4 create_their_did.
func CreateTheirDID(reg *suite.Registry, info TheirDidInfo) (TheirDid, error) {
	const op = "create_their_did"

	if info.Did == "" {
		return TheirDid{}, ssierrors.New(ssierrors.InvalidStructure, op, "", "TheirDidInfo.did is required")
	}

	if err := ValidateStructure(op, info.Did); err != nil {
		return TheirDid{}, err
	}

	vk, err := verkey.BuildFull(op, Unqualify(info.Did), info.Verkey)
	if err != nil {
		return TheirDid{}, err
	}

	if err := ValidateKey(op, reg, vk); err != nil {
		return TheirDid{}, err
	}

	return TheirDid{Did: info.Did, Verkey: vk}, nil
}

// RotateKey produces replacement key material for an existing My-DID,
// preserving the current key's ciphersuite. The DID itself never changes;
// callers (the wallet) decide whether and when to commit the new Key
// record over the old one — this module holds no rotation state.
func RotateKey(reg *suite.Registry, current Key, newSeed *string) (Key, error) {
	suiteName := verkey.CryptoName(current.Verkey)
	return CreateKey(reg, KeyInfo{Seed: newSeed, CryptoType: &suiteName})
}

// ValidateKey performs the §4.1 structural check on a verkey: abbreviated
// forms are only checked for valid base58 of the expected length, while
// full forms are also passed through the suite's point-validation.
func ValidateKey(op string, reg *suite.Registry, vk string) error {
	body, suiteName := verkey.Split(vk)
	s, err := reg.Lookup(op, suiteName)
	if err != nil {
		return err
	}

	if len(body) > 0 && body[0] == verkey.AbbreviationPrefix[0] {
		// Abbreviated verkeys are only structurally checked: the suite
		// can't validate curve points it can't first reassemble.
		return verkey.ValidateStructure(op, vk)
	}

	pk, err := verkey.DecodeFull(op, vk)
	if err != nil {
		return err
	}
	return s.ValidateKey(pk)
}
