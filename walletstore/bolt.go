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
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/piprate/ssikit/did"
	"github.com/piprate/ssikit/utils/jsonw"
)

var (
	keysBucket      = []byte("keys")
	theirDIDsBucket = []byte("their_dids")
)

// Bolt is a durable Store backed by a single bbolt file. Each wallet handle
// is its own top-level bucket, with "keys" and "their_dids" sub-buckets
// inside it — mirroring the nested-bucket-per-tenant layout the teacher's
// rdb backend uses for per-account isolation, minus the SQL layer.
type Bolt struct {
	db *bolt.DB
}

var _ Store = (*Bolt)(nil)

// NewBolt opens (creating if necessary) a bbolt database at path.
func NewBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Open(_ context.Context, handle string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		wb, err := tx.CreateBucketIfNotExists([]byte(handle))
		if err != nil {
			return err
		}
		if _, err := wb.CreateBucketIfNotExists(keysBucket); err != nil {
			return err
		}
		_, err = wb.CreateBucketIfNotExists(theirDIDsBucket)
		return err
	})
}

func (b *Bolt) PutKey(_ context.Context, handle string, key did.Key) error {
	payload, err := jsonw.Marshal(key)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		wb := tx.Bucket([]byte(handle))
		if wb == nil {
			return ErrHandle("put_key", handle)
		}
		return wb.Bucket(keysBucket).Put([]byte(key.Verkey), payload)
	})
}

func (b *Bolt) GetKey(_ context.Context, handle, verkey string) (did.Key, error) {
	var key did.Key
	err := b.db.View(func(tx *bolt.Tx) error {
		wb := tx.Bucket([]byte(handle))
		if wb == nil {
			return ErrHandle("get_key", handle)
		}
		raw := wb.Bucket(keysBucket).Get([]byte(verkey))
		if raw == nil {
			return ErrNotFound("get_key", verkey)
		}
		return jsonw.Unmarshal(raw, &key)
	})
	return key, err
}

func (b *Bolt) DeleteKey(_ context.Context, handle, verkey string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		wb := tx.Bucket([]byte(handle))
		if wb == nil {
			return ErrHandle("delete_key", handle)
		}
		return wb.Bucket(keysBucket).Delete([]byte(verkey))
	})
}

func (b *Bolt) ListKeys(_ context.Context, handle string) ([]did.Key, error) {
	var keys []did.Key
	err := b.db.View(func(tx *bolt.Tx) error {
		wb := tx.Bucket([]byte(handle))
		if wb == nil {
			return ErrHandle("list_keys", handle)
		}
		return wb.Bucket(keysBucket).ForEach(func(_, raw []byte) error {
			var key did.Key
			if err := jsonw.Unmarshal(raw, &key); err != nil {
				return err
			}
			keys = append(keys, key)
			return nil
		})
	})
	return keys, err
}

func (b *Bolt) PutTheirDID(_ context.Context, handle string, theirDid did.TheirDid) error {
	payload, err := jsonw.Marshal(theirDid)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		wb := tx.Bucket([]byte(handle))
		if wb == nil {
			return ErrHandle("put_their_did", handle)
		}
		return wb.Bucket(theirDIDsBucket).Put([]byte(theirDid.Did), payload)
	})
}

func (b *Bolt) GetTheirDID(_ context.Context, handle, didValue string) (did.TheirDid, error) {
	var theirDid did.TheirDid
	err := b.db.View(func(tx *bolt.Tx) error {
		wb := tx.Bucket([]byte(handle))
		if wb == nil {
			return ErrHandle("get_their_did", handle)
		}
		raw := wb.Bucket(theirDIDsBucket).Get([]byte(didValue))
		if raw == nil {
			return ErrNotFound("get_their_did", didValue)
		}
		return jsonw.Unmarshal(raw, &theirDid)
	})
	return theirDid, err
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
