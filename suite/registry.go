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

package suite

import (
	"sync"

	"github.com/piprate/ssikit/ssierrors"
)

// DefaultSuiteName is the ciphersuite used when a caller doesn't name one.
const DefaultSuiteName = "ed25519"

// Registry is a shared, read-mostly mapping from suite name to Suite.
// Reads (Lookup) take the read lock and never block each other; Register
// takes the write lock and is only expected at process start-up or when a
// plugin extends the registry before first use.
type Registry struct {
	mu     sync.RWMutex
	suites map[string]Suite
}

// NewRegistry returns an empty registry. Most callers want Default.
func NewRegistry() *Registry {
	return &Registry{suites: make(map[string]Suite)}
}

// Register adds suite under its own Name(). It panics on a duplicate
// registration for the same name, matching the teacher's storage backend
// registry idiom (config-time programmer error, not a runtime condition).
func (r *Registry) Register(s Suite) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if _, exists := r.suites[name]; exists {
		panic("suite already registered: " + name)
	}
	r.suites[name] = s
}

// Lookup returns the suite registered under name, or UnknownCrypto.
func (r *Registry) Lookup(op, name string) (Suite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.suites[name]
	if !ok {
		return nil, ssierrors.New(ssierrors.UnknownCrypto, op, name, "unknown ciphersuite")
	}
	return s, nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, lazily populated with the
// ed25519 suite on first access.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		defaultReg.Register(NewEd25519Suite())
	})
	return defaultReg
}
