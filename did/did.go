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

// Package did implements the DID/Key factory: the data records of spec.md
// §3 (Did, Key, TheirDid and their JSON configuration inputs) and the
// operations of §4.4 that produce them.
package did

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/piprate/ssikit/ssierrors"
)

type (
	// Did is a My-DID record: the caller's own DID plus the verkey of the
	// signing key the wallet holds for it.
	Did struct {
		Did    string `json:"did"`
		Verkey string `json:"verkey"`
	}

	// Key is a Key record: a verkey and the base58 form of its 64-byte
	// Ed25519 secret key.
	Key struct {
		Verkey  string `json:"verkey"`
		Signkey string `json:"signkey"`
	}

	// TheirDid is a peer's DID record. Verkey is always the fully expanded
	// (never abbreviated) form, with any suite tag preserved.
	TheirDid struct {
		Did    string `json:"did"`
		Verkey string `json:"verkey"`
	}

	// MyDidInfo configures CreateMyDID. Unrecognized JSON
	// fields are ignored by the decoder; only TheirDidInfo.Did is required.
	MyDidInfo struct {
		Did        *string `json:"did,omitempty"`
		Seed       *string `json:"seed,omitempty"`
		Cid        *bool   `json:"cid,omitempty"`
		CryptoType *string `json:"crypto_type,omitempty"`
		MethodName *string `json:"method_name,omitempty"`
		LedgerType *string `json:"ledger_type,omitempty"`
	}

	// TheirDidInfo configures CreateTheirDID.
	TheirDidInfo struct {
		Did        string  `json:"did"`
		Verkey     *string `json:"verkey,omitempty"`
		CryptoType *string `json:"crypto_type,omitempty"`
	}

	// KeyInfo configures CreateKey in isolation (no DID is produced).
	KeyInfo struct {
		Seed       *string `json:"seed,omitempty"`
		CryptoType *string `json:"crypto_type,omitempty"`
	}
)

// ComposeDID renders a DID body into its on-wire form: "did:<method>:<body>"
// when a method is named (optionally with a ledger segment), or the bare
// body when it isn't.
func ComposeDID(body string, method, ledgerType *string) string {
	if method == nil {
		return body
	}
	if ledgerType != nil {
		return "did:" + *method + ":" + *ledgerType + ":" + body
	}
	return "did:" + *method + ":" + body
}

// Unqualify strips any "did:<method>:" prefix, returning the bare body.
func Unqualify(value string) string {
	if !strings.HasPrefix(value, "did:") {
		return value
	}
	parts := strings.Split(value, ":")
	return parts[len(parts)-1]
}

// ValidateStructure checks that a DID's unqualified body is valid base58 of
// either 16 or 32 bytes (the two ledger-compatible body lengths). This is
// the "currently a structural check, reserved for future state validation"
// behavior described in spec.md §4.4.
func ValidateStructure(op, value string) error {
	body := Unqualify(value)
	decoded := base58.Decode(body)
	if len(decoded) != 16 && len(decoded) != 32 {
		return ssierrors.New(ssierrors.InvalidStructure, op, value, "DID body must decode to 16 or 32 bytes")
	}
	return nil
}
