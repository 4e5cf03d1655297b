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
	"fmt"
	"os"

	"github.com/hashicorp/vault/api"

	"github.com/piprate/ssikit/did"
)

// Vault is a Store backed by a Vault KV v2 secrets engine, one secret per
// key/DID record. Signing keys never leave Vault's storage at rest — the
// CryptoService only ever sees them as the values this Store hands back on
// GetKey, per spec.md §5's "zeroized by the caller on drop" boundary.
type Vault struct {
	c     *api.Client
	mount string
}

var _ Store = (*Vault)(nil)

// NewVault builds a Vault store against mount (a KV v2 mount point, e.g.
// "secret"), taking address and token from the standard VAULT_ADDR and
// VAULT_TOKEN environment variables.
func NewVault(mount string) (*Vault, error) {
	for _, envVar := range []string{api.EnvVaultAddress, api.EnvVaultToken} {
		if os.Getenv(envVar) == "" {
			return nil, fmt.Errorf("environment variable not found: %s", envVar)
		}
	}

	c, err := api.NewClient(nil)
	if err != nil {
		return nil, err
	}
	return &Vault{c: c, mount: mount}, nil
}

func (v *Vault) Open(_ context.Context, _ string) error {
	return nil
}

func (v *Vault) PutKey(_ context.Context, handle string, key did.Key) error {
	_, err := v.c.Logical().Write(v.keyPath(handle, key.Verkey), map[string]any{
		"data": map[string]any{
			"verkey":  key.Verkey,
			"signkey": key.Signkey,
		},
	})
	return err
}

func (v *Vault) GetKey(_ context.Context, handle, verkey string) (did.Key, error) {
	s, err := v.c.Logical().Read(v.keyPath(handle, verkey))
	if err != nil {
		return did.Key{}, err
	}
	if s == nil {
		return did.Key{}, ErrNotFound("get_key", verkey)
	}

	data, _ := s.Data["data"].(map[string]any)
	signkey, _ := data["signkey"].(string)
	return did.Key{Verkey: verkey, Signkey: signkey}, nil
}

func (v *Vault) DeleteKey(_ context.Context, handle, verkey string) error {
	_, err := v.c.Logical().Delete(v.metadataPath(handle, verkey))
	return err
}

func (v *Vault) ListKeys(_ context.Context, handle string) ([]did.Key, error) {
	s, err := v.c.Logical().List(fmt.Sprintf("%s/metadata/%s/keys", v.mount, handle))
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	rawKeys, _ := s.Data["keys"].([]any)
	keys := make([]did.Key, 0, len(rawKeys))
	for _, rk := range rawKeys {
		verkey, _ := rk.(string)
		key, err := v.GetKey(context.Background(), handle, verkey)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (v *Vault) PutTheirDID(_ context.Context, handle string, theirDid did.TheirDid) error {
	_, err := v.c.Logical().Write(v.theirDIDPath(handle, theirDid.Did), map[string]any{
		"data": map[string]any{
			"did":    theirDid.Did,
			"verkey": theirDid.Verkey,
		},
	})
	return err
}

func (v *Vault) GetTheirDID(_ context.Context, handle, didValue string) (did.TheirDid, error) {
	s, err := v.c.Logical().Read(v.theirDIDPath(handle, didValue))
	if err != nil {
		return did.TheirDid{}, err
	}
	if s == nil {
		return did.TheirDid{}, ErrNotFound("get_their_did", didValue)
	}

	data, _ := s.Data["data"].(map[string]any)
	verkey, _ := data["verkey"].(string)
	return did.TheirDid{Did: didValue, Verkey: verkey}, nil
}

func (v *Vault) Close() error { return nil }

func (v *Vault) keyPath(handle, verkey string) string {
	return fmt.Sprintf("%s/data/%s/keys/%s", v.mount, handle, verkey)
}

func (v *Vault) metadataPath(handle, verkey string) string {
	return fmt.Sprintf("%s/metadata/%s/keys/%s", v.mount, handle, verkey)
}

func (v *Vault) theirDIDPath(handle, didValue string) string {
	return fmt.Sprintf("%s/data/%s/their_dids/%s", v.mount, handle, didValue)
}
