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

package jsonw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piprate/ssikit/utils/jsonw"
)

type walletRecord struct {
	Verkey  string `json:"verkey"`
	Signkey string `json:"signkey"`
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	rec := walletRecord{Verkey: "6vkGQheBvA7sRNJGEgtQPwP9kB9K1nDxpEatJKkcG1Jb", Signkey: "s3cr3t"}

	raw, err := jsonw.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"verkey":"6vkGQheBvA7sRNJGEgtQPwP9kB9K1nDxpEatJKkcG1Jb","signkey":"s3cr3t"}`, string(raw))

	var out walletRecord
	require.NoError(t, jsonw.Unmarshal(raw, &out))
	assert.Equal(t, rec, out)
}

func TestUnmarshal_MalformedPayloadFails(t *testing.T) {
	var out walletRecord
	err := jsonw.Unmarshal([]byte(`{"verkey":`), &out)
	assert.Error(t, err)
}
