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

// Package ssierrors defines the error kinds raised by the crypto service
// and its collaborators. Every failure surfaced by this module carries one
// of these kinds so callers can branch on errors.Is without parsing strings.
package ssierrors

import (
	"errors"
	"fmt"
)

// Kind classifies an Error. Callers should match on Kind via Has (or
// errors.Is with an *Error target of that Kind), not on Error.Error() text.
type Kind int

const (
	// UnknownCrypto is raised when a ciphersuite name is missing from the
	// registry, or when two parties declare incompatible ciphersuites.
	UnknownCrypto Kind = iota + 1
	// InvalidStructure is raised on malformed base58/base64/hex, wrong-length
	// keys/seeds/nonces/tags/signatures, missing required JSON fields, or
	// non-UTF-8 plaintext.
	InvalidStructure
	// InvalidState is raised when referenced material (e.g. a peer NYM) is
	// not found in any accessible source.
	InvalidState
	// WalletInvalidHandle is surfaced unchanged from the wallet collaborator.
	WalletInvalidHandle
	// WalletNotFound is surfaced unchanged from the wallet collaborator.
	WalletNotFound
	// WalletIncompatiblePool is surfaced unchanged from the wallet collaborator.
	WalletIncompatiblePool
	// PoolLedgerInvalidPoolHandle is surfaced unchanged from the ledger collaborator.
	PoolLedgerInvalidPoolHandle
)

func (k Kind) String() string {
	switch k {
	case UnknownCrypto:
		return "UnknownCrypto"
	case InvalidStructure:
		return "InvalidStructure"
	case InvalidState:
		return "InvalidState"
	case WalletInvalidHandle:
		return "WalletInvalidHandle"
	case WalletNotFound:
		return "WalletNotFound"
	case WalletIncompatiblePool:
		return "WalletIncompatiblePool"
	case PoolLedgerInvalidPoolHandle:
		return "PoolLedgerInvalidPoolHandle"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned across this module. Op names the
// operation that failed (e.g. "create_my_did", "verify"); Subject is an
// opaque, non-secret identifier in play at the time of failure (a DID, a
// suite name, a key reference) — never seed material, signing keys, or
// plaintext.
type Error struct {
	Kind    Kind
	Op      string
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s: %s (%s): %v", e.Op, e.Kind, e.Subject, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error carrying the same Kind, so callers
// can write errors.Is(err, ssierrors.New(ssierrors.UnknownCrypto, "", "", "")) or,
// more commonly, use the Has helper below.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// New builds an *Error of the given kind. msg becomes the wrapped cause.
func New(kind Kind, op, subject, msg string) *Error {
	return &Error{Kind: kind, Op: op, Subject: subject, Err: errors.New(msg)}
}

// Wrap builds an *Error of the given kind around an existing cause.
func Wrap(kind Kind, op, subject string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Subject: subject, Err: err}
}

// Has reports whether the first *Error found in err's chain (err itself or
// anything it wraps) is of kind. *Errors nested inside that one are not
// consulted.
func Has(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
