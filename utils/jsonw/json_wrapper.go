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

// Package jsonw wraps sonic's codec entry points so storage backends depend
// on one internal package rather than bytedance/sonic directly.
package jsonw

import "github.com/bytedance/sonic"

var (
	Marshal   = sonic.Marshal
	Unmarshal = sonic.Unmarshal
)
