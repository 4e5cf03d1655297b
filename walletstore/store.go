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

// Package walletstore defines the wallet collaborator contract: spec.md §6
// scopes the wallet itself out of this module, so only the interface the
// CryptoService's callers are expected to satisfy lives here, plus three
// reference implementations (an in-process Memory store, a durable Bolt
// store and a Vault KV v2 store) exercising that contract.
package walletstore

import (
	"context"

	"github.com/piprate/ssikit/did"
	"github.com/piprate/ssikit/ssierrors"
)

// Store persists Key and TheirDid records behind an opaque wallet handle.
// Secret key material passed to PutKey is never retained by the CryptoService
// itself (spec.md §5) — this is the boundary where it is expected to land at
// rest.
type Store interface {
	// Open prepares the store to serve handle, creating that wallet's
	// namespace if it does not exist yet. It does not reject unknown
	// handles.
	Open(ctx context.Context, handle string) error

	// PutKey stores key under verkey within handle, overwriting any
	// existing record for that verkey.
	PutKey(ctx context.Context, handle string, key did.Key) error

	// GetKey retrieves the key record for verkey, or WalletNotFound.
	GetKey(ctx context.Context, handle, verkey string) (did.Key, error)

	// DeleteKey removes the key record for verkey. Deleting a key that
	// doesn't exist is not an error.
	DeleteKey(ctx context.Context, handle, verkey string) error

	// ListKeys returns every key record held under handle, in unspecified
	// order.
	ListKeys(ctx context.Context, handle string) ([]did.Key, error)

	// PutTheirDID stores a peer DID record under handle.
	PutTheirDID(ctx context.Context, handle string, theirDid did.TheirDid) error

	// GetTheirDID retrieves the peer DID record for didValue, or
	// WalletNotFound.
	GetTheirDID(ctx context.Context, handle, didValue string) (did.TheirDid, error)

	// Close releases any resources held by the store (file handles,
	// network connections). Stores that hold none may no-op.
	Close() error
}

// ErrHandle wraps handle into a WalletInvalidHandle error for op.
func ErrHandle(op, handle string) error {
	return ssierrors.New(ssierrors.WalletInvalidHandle, op, handle, "unknown wallet handle")
}

// ErrNotFound wraps subject (a verkey or DID) into a WalletNotFound error
// for op.
func ErrNotFound(op, subject string) error {
	return ssierrors.New(ssierrors.WalletNotFound, op, subject, "record not found in wallet")
}

// ErrIncompatiblePool wraps handle into a WalletIncompatiblePool error for
// op, raised when a wallet opened against one pool's genesis is asked to
// serve a request scoped to a different, incompatible pool.
func ErrIncompatiblePool(op, handle string) error {
	return ssierrors.New(ssierrors.WalletIncompatiblePool, op, handle, "wallet is incompatible with the requested pool")
}
