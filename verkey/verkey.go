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

// Package verkey implements the verkey codec: parsing and rendering
// verification keys in full and abbreviated form, with an optional
// suite-tag suffix.
package verkey

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/piprate/ssikit/ssierrors"
	"github.com/piprate/ssikit/suite"
)

const (
	// AbbreviationPrefix marks an abbreviated verkey.
	AbbreviationPrefix = "~"
	// suffixSep separates the verkey body from its suite tag.
	suffixSep = ":"

	// FullKeyLen is the byte length of a full Ed25519 public key.
	FullKeyLen = 32
	// AbbreviatedLen is the byte length encoded by an abbreviated verkey.
	AbbreviatedLen = 16
)

// Split separates a verkey into its base58 body (full or abbreviated,
// without suite suffix) and its suite name. A verkey with no ":<suite>"
// suffix carries the default suite.
func Split(vk string) (body, suiteName string) {
	idx := strings.LastIndex(vk, suffixSep)
	if idx < 0 {
		return vk, suite.DefaultSuiteName
	}
	return vk[:idx], vk[idx+1:]
}

// CryptoName returns the suite tag of vk, or the default suite name if vk
// carries none. Works on both full and abbreviated forms.
func CryptoName(vk string) string {
	_, name := Split(vk)
	return name
}

// BuildFull resolves an optional verkey (full, abbreviated, or absent)
// against a DID body into a full verkey, preserving any suite suffix.
//
//   - optionalVk absent: the DID body is itself the verkey (identity DID).
//   - optionalVk abbreviated ("~..."): the DID body supplies the high 16
//     bytes, the abbreviation's decoded bytes supply the low 16 bytes.
//   - otherwise: optionalVk is returned unchanged.
func BuildFull(op, didBody string, optionalVk *string) (string, error) {
	if optionalVk == nil {
		return didBody, nil
	}
	vk := *optionalVk

	body, suiteTag := Split(vk)
	if !strings.HasPrefix(body, AbbreviationPrefix) {
		return vk, nil
	}

	didBytes, err := decodeExact(op, didBody, AbbreviatedLen)
	if err != nil {
		return "", err
	}
	tailBytes, err := decodeExact(op, strings.TrimPrefix(body, AbbreviationPrefix), AbbreviatedLen)
	if err != nil {
		return "", err
	}

	full := make([]byte, 0, FullKeyLen)
	full = append(full, didBytes...)
	full = append(full, tailBytes...)

	encoded := base58.Encode(full)
	if suiteTag != suite.DefaultSuiteName {
		encoded = encoded + suffixSep + suiteTag
	}
	return encoded, nil
}

// ValidateStructure checks that vk base58-decodes to a plausible key: 32
// bytes for a full verkey, 16 bytes for an abbreviated one. It does not
// perform curve validation — callers that need that should decode the
// full form and call the suite's ValidateKey.
func ValidateStructure(op, vk string) error {
	body, _ := Split(vk)
	if strings.HasPrefix(body, AbbreviationPrefix) {
		_, err := decodeExact(op, strings.TrimPrefix(body, AbbreviationPrefix), AbbreviatedLen)
		return err
	}
	_, err := decodeExact(op, body, FullKeyLen)
	return err
}

// DecodeFull base58-decodes the body of a full (non-abbreviated) verkey,
// requiring exactly FullKeyLen bytes.
func DecodeFull(op, vk string) ([]byte, error) {
	body, _ := Split(vk)
	if strings.HasPrefix(body, AbbreviationPrefix) {
		return nil, ssierrors.New(ssierrors.InvalidStructure, op, vk, "verkey is abbreviated, not full")
	}
	return decodeExact(op, body, FullKeyLen)
}

func decodeExact(op, b58 string, n int) ([]byte, error) {
	decoded := base58.Decode(b58)
	if decoded == nil || len(decoded) != n {
		return nil, ssierrors.New(ssierrors.InvalidStructure, op, b58, "invalid base58 or wrong length")
	}
	return decoded, nil
}
