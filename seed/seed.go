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

// Package seed normalizes a caller-supplied seed string into the canonical
// 32-byte form consumed by KeyGen.
package seed

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/piprate/ssikit/ssierrors"
)

// Bytes is the number of bytes in a canonical seed.
const Bytes = 32

const op = "normalize_seed"

// Normalize accepts a seed in one of three textual forms and returns its
// canonical 32 raw bytes:
//
//   - exactly 32 bytes of raw UTF-8: used as-is.
//   - ends with "=": treated as standard base64, must decode to 32 bytes.
//   - exactly 64 bytes: treated as hex, decoded to 32 bytes.
//
// A nil input returns (nil, nil). Anything else is InvalidStructure.
func Normalize(raw *string) ([]byte, error) {
	if raw == nil {
		return nil, nil
	}
	s := *raw

	switch {
	case len(s) == Bytes:
		return []byte(s), nil

	case strings.HasSuffix(s, "="):
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
		}
		if len(decoded) != Bytes {
			return nil, ssierrors.New(ssierrors.InvalidStructure, op, "",
				"base64 seed must decode to 32 bytes")
		}
		return decoded, nil

	case len(s) == Bytes*2:
		decoded, err := hex.DecodeString(s)
		if err != nil {
			return nil, ssierrors.Wrap(ssierrors.InvalidStructure, op, "", err)
		}
		return decoded, nil

	default:
		return nil, ssierrors.New(ssierrors.InvalidStructure, op, "",
			"seed must be a 32 byte string, a base64 string decoding to 32 bytes, or a 64 byte hex string")
	}
}
