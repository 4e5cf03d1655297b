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

// Package ledgerclient defines the ledger collaborator contract: spec.md §6
// scopes the distributed ledger itself out of this module. What lives here
// is the read-only NYM resolution interface the CryptoService's callers use
// to check a DID/verkey pair against ledger state, plus an in-memory
// reference implementation with a freshness-bounded cache in front of it.
package ledgerclient

import (
	"context"
	"strconv"

	"github.com/piprate/ssikit/ssierrors"
)

// Nym is a single ledger NYM transaction's relevant fields: a DID and the
// verkey it was last written with.
type Nym struct {
	Did    string
	Verkey string
}

// Client resolves a DID to its currently recorded NYM. A ledger that has
// never seen the DID returns InvalidState, matching spec.md §4.4's
// ValidateDID note that this module performs no retrieval itself.
type Client interface {
	ResolveNym(ctx context.Context, poolHandle int, did string) (Nym, error)
}

// ErrUnknownNym wraps did into an InvalidState error for op.
func ErrUnknownNym(op, did string) error {
	return ssierrors.New(ssierrors.InvalidState, op, did, "no NYM transaction found for DID")
}

// ErrInvalidPoolHandle wraps a pool handle into a
// PoolLedgerInvalidPoolHandle error for op.
func ErrInvalidPoolHandle(op string, poolHandle int) error {
	return ssierrors.New(ssierrors.PoolLedgerInvalidPoolHandle, op, strconv.Itoa(poolHandle), "invalid pool ledger handle")
}
