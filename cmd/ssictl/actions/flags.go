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

package actions

import "github.com/urfave/cli/v2"

const (
	InvalidParameter = 1
	OperationFailed  = 2

	DefaultWalletHandle = "default"
)

var StandardFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  "debug",
		Usage: "if true, enable debug mode",
	},
	&cli.StringFlag{
		Name:    "config",
		Value:   "",
		Usage:   "path to a ssictl YAML config file",
		EnvVars: []string{"SSICTL_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "wallet",
		Value:   DefaultWalletHandle,
		Usage:   "wallet handle to operate against",
		EnvVars: []string{"SSICTL_WALLET"},
	},
}
