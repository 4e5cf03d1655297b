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

// Package ssiconfig loads the CryptoService's ambient configuration (the
// default ciphersuite, NYM cache freshness, and wallet store backend
// selection) the same way the teacher loads its node and CLI configuration:
// a koanf tree merged from defaults, an optional YAML file, and the
// environment, in that order of increasing precedence.
package ssiconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"

	"github.com/piprate/ssikit/suite"
)

// Config is the CryptoService's ambient configuration.
type Config struct {
	// DefaultSuite holds a ciphersuite name (suite.DefaultSuiteName unless
	// overridden). ssictl only logs it; operations that name no suite use
	// suite.DefaultSuiteName whatever this field holds.
	DefaultSuite string `koanf:"defaultSuite"`
	// NymFreshness holds a NYM cache freshness (5m unless overridden). No
	// code in this module reads it; ledgerclient.NewMemory takes its
	// freshness as an argument.
	NymFreshness time.Duration `koanf:"nymFreshness"`
	// WalletStoreType selects a walletstore.Constructor registered name
	// ("memory", "bolt", "vault").
	WalletStoreType string `koanf:"walletStoreType"`
	// WalletStoreParams is passed to the selected walletstore.Constructor
	// verbatim.
	WalletStoreParams map[string]any `koanf:"walletStoreParams"`
}

const envPrefix = "SSIKIT_"

func defaults() map[string]any {
	return map[string]any{
		"defaultSuite":      suite.DefaultSuiteName,
		"nymFreshness":      "5m",
		"walletStoreType":   "memory",
		"walletStoreParams": map[string]any{},
	}
}

// Load builds a Config by layering defaults, an optional YAML file at path
// (skipped if path is empty), and environment variables prefixed with
// SSIKIT_ (e.g. SSIKIT_DEFAULTSUITE overrides defaultSuite).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading config defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// Environment names are case-folded; map them back onto the camelCase
	// keys so they override the same paths as the defaults and the file.
	keys := make(map[string]string)
	for key := range defaults() {
		keys[strings.ToLower(key)] = key
	}
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		name := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if key, ok := keys[name]; ok {
			return key
		}
		return name
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
