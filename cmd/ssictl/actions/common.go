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

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/piprate/ssikit/cryptoservice"
	"github.com/piprate/ssikit/ssiconfig"
	"github.com/piprate/ssikit/walletstore"
)

// StandardSet is the CLI's command table.
var StandardSet = []*cli.Command{
	CreateKeyCommand,
	CreateDIDCommand,
	SignCommand,
	VerifyCommand,
}

// openWallet loads ssiconfig from the --config flag, opens the configured
// wallet store against the --wallet handle, and returns a ready
// CryptoService alongside it. Callers are responsible for calling
// store.Close().
func openWallet(c *cli.Context) (*cryptoservice.Service, walletstore.Store, error) {
	cfg, err := ssiconfig.Load(c.String("config"))
	if err != nil {
		return nil, nil, cli.Exit(err.Error(), OperationFailed)
	}

	store, err := walletstore.Create(cfg.WalletStoreType, cfg.WalletStoreParams)
	if err != nil {
		return nil, nil, cli.Exit(err.Error(), OperationFailed)
	}

	if err := store.Open(context.Background(), c.String("wallet")); err != nil {
		return nil, nil, cli.Exit(err.Error(), OperationFailed)
	}

	log.Debug().Str("suite", cfg.DefaultSuite).Str("wallet", c.String("wallet")).Msg("opened wallet")

	return cryptoservice.NewDefault(), store, nil
}
