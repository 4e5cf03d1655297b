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

package ledgerclient

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/muesli/cache2go"
)

// Memory is a Client backed by an in-process table of NYM records, fronted
// by a cache2go table that expires entries after freshness elapses. This
// mirrors the remote wallet factory's account cache in the teacher repo:
// an optional, time-boxed cache in front of a slower lookup, here the
// pool-handle-scoped NYM table rather than an HTTP round trip.
type Memory struct {
	mu         sync.RWMutex
	pools      map[int]map[string]Nym
	freshness  time.Duration
	cacheTable *cache2go.CacheTable
}

var _ Client = (*Memory)(nil)

// NewMemory returns a Memory client whose ResolveNym results are cached for
// freshness. A freshness of zero disables caching: every call re-reads the
// underlying table.
func NewMemory(freshness time.Duration) *Memory {
	m := &Memory{
		pools:     make(map[int]map[string]Nym),
		freshness: freshness,
	}
	if freshness > 0 {
		m.cacheTable = cache2go.Cache("ledgerclient.nym." + strconv.FormatInt(time.Now().UnixNano(), 36))
	}
	return m
}

// PutNym seeds poolHandle's table with nym, as a ledger write would. This
// exists so tests can populate a Memory client without a real ledger
// connection.
func (m *Memory) PutNym(poolHandle int, nym Nym) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pool, ok := m.pools[poolHandle]
	if !ok {
		pool = make(map[string]Nym)
		m.pools[poolHandle] = pool
	}
	pool[nym.Did] = nym

	if m.cacheTable != nil {
		m.cacheTable.Delete(cacheKey(poolHandle, nym.Did))
	}
}

func (m *Memory) ResolveNym(_ context.Context, poolHandle int, did string) (Nym, error) {
	const op = "resolve_nym"

	if m.cacheTable != nil {
		if item, err := m.cacheTable.Value(cacheKey(poolHandle, did)); err == nil {
			return item.Data().(Nym), nil
		}
	}

	m.mu.RLock()
	pool, ok := m.pools[poolHandle]
	if !ok {
		m.mu.RUnlock()
		return Nym{}, ErrInvalidPoolHandle(op, poolHandle)
	}
	nym, ok := pool[did]
	m.mu.RUnlock()
	if !ok {
		return Nym{}, ErrUnknownNym(op, did)
	}

	if m.cacheTable != nil {
		m.cacheTable.Add(cacheKey(poolHandle, did), m.freshness, nym)
	}

	return nym, nil
}

func cacheKey(poolHandle int, did string) string {
	return strconv.Itoa(poolHandle) + "/" + did
}
