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

package walletstore

import (
	"context"
	"sync"

	"github.com/piprate/ssikit/did"
)

type wallet struct {
	keys      map[string]did.Key
	theirDIDs map[string]did.TheirDid
}

// Memory is an in-process Store, useful for tests and the ssictl CLI's
// ephemeral default wallet. Handles are created by Open; other methods
// return WalletInvalidHandle for a handle that was never opened.
type Memory struct {
	mu      sync.RWMutex
	wallets map[string]*wallet
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{wallets: make(map[string]*wallet)}
}

func (m *Memory) Open(_ context.Context, handle string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.wallets[handle]; !ok {
		m.wallets[handle] = &wallet{
			keys:      make(map[string]did.Key),
			theirDIDs: make(map[string]did.TheirDid),
		}
	}
	return nil
}

func (m *Memory) PutKey(_ context.Context, handle string, key did.Key) error {
	w, err := m.wallet("put_key", handle)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	w.keys[key.Verkey] = key
	return nil
}

func (m *Memory) GetKey(_ context.Context, handle, verkey string) (did.Key, error) {
	w, err := m.wallet("get_key", handle)
	if err != nil {
		return did.Key{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	key, ok := w.keys[verkey]
	if !ok {
		return did.Key{}, ErrNotFound("get_key", verkey)
	}
	return key, nil
}

func (m *Memory) DeleteKey(_ context.Context, handle, verkey string) error {
	w, err := m.wallet("delete_key", handle)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(w.keys, verkey)
	return nil
}

func (m *Memory) ListKeys(_ context.Context, handle string) ([]did.Key, error) {
	w, err := m.wallet("list_keys", handle)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]did.Key, 0, len(w.keys))
	for _, k := range w.keys {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *Memory) PutTheirDID(_ context.Context, handle string, theirDid did.TheirDid) error {
	w, err := m.wallet("put_their_did", handle)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	w.theirDIDs[theirDid.Did] = theirDid
	return nil
}

func (m *Memory) GetTheirDID(_ context.Context, handle, didValue string) (did.TheirDid, error) {
	w, err := m.wallet("get_their_did", handle)
	if err != nil {
		return did.TheirDid{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	theirDid, ok := w.theirDIDs[didValue]
	if !ok {
		return did.TheirDid{}, ErrNotFound("get_their_did", didValue)
	}
	return theirDid, nil
}

func (m *Memory) Close() error { return nil }

func (m *Memory) wallet(op, handle string) (*wallet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.wallets[handle]
	if !ok {
		return nil, ErrHandle(op, handle)
	}
	return w, nil
}
