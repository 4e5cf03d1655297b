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
	"fmt"

	"github.com/rs/zerolog/log"
)

// Parameters configures a Store constructor, e.g. a bbolt file path or a
// Vault mount point.
type Parameters map[string]any

// Constructor builds a Store from Parameters.
type Constructor func(params Parameters) (Store, error)

var constructors = make(map[string]Constructor)

// Register adds a named Store constructor. It panics on a duplicate
// registration for storeType, matching the teacher's storage backend
// registry idiom (config-time programmer error, not a runtime condition).
func Register(storeType string, ctor Constructor) {
	if _, ok := constructors[storeType]; ok {
		panic("wallet store constructor already registered for type: " + storeType)
	}
	constructors[storeType] = ctor
}

// Create builds the Store registered under storeType.
func Create(storeType string, params Parameters) (Store, error) {
	log.Info().Str("type", storeType).Msg("creating wallet store")

	ctor, ok := constructors[storeType]
	if !ok {
		return nil, fmt.Errorf("wallet store type not known or loaded: %s", storeType)
	}
	return ctor(params)
}

func init() {
	Register("memory", func(Parameters) (Store, error) {
		return NewMemory(), nil
	})
	Register("bolt", func(params Parameters) (Store, error) {
		path, _ := params["path"].(string)
		if path == "" {
			return nil, fmt.Errorf("bolt wallet store requires a \"path\" parameter")
		}
		return NewBolt(path)
	})
	Register("vault", func(params Parameters) (Store, error) {
		mount, _ := params["mount"].(string)
		if mount == "" {
			mount = "secret"
		}
		return NewVault(mount)
	})
}
