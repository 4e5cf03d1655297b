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
	"encoding/base64"
	"encoding/hex"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/piprate/ssikit/did"
)

var CreateKeyCommand = &cli.Command{
	Name:      "create-key",
	Usage:     "generate a new keypair and store it in the wallet",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "seed", Usage: "32-byte, base64, or hex seed (random if omitted)"},
	},
	Action: func(c *cli.Context) error {
		svc, store, err := openWallet(c)
		if err != nil {
			return err
		}
		defer store.Close()

		var seed *string
		if s := c.String("seed"); s != "" {
			seed = &s
		}

		key, err := svc.CreateKey(did.KeyInfo{Seed: seed})
		if err != nil {
			return cli.Exit(err.Error(), OperationFailed)
		}

		if err := store.PutKey(context.Background(), c.String("wallet"), key); err != nil {
			return cli.Exit(err.Error(), OperationFailed)
		}

		printKeyTable([]did.Key{key})
		return nil
	},
}

var CreateDIDCommand = &cli.Command{
	Name:      "create-did",
	Usage:     "generate a new DID and key, and store both in the wallet",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "seed", Usage: "32-byte, base64, or hex seed (random if omitted)"},
		&cli.BoolFlag{Name: "cid", Usage: "use the full verkey as the DID body"},
		&cli.StringFlag{Name: "method", Usage: "DID method name, e.g. \"sov\" (unqualified body if omitted)"},
	},
	Action: func(c *cli.Context) error {
		svc, store, err := openWallet(c)
		if err != nil {
			return err
		}
		defer store.Close()

		var seed *string
		if s := c.String("seed"); s != "" {
			seed = &s
		}
		var method *string
		if m := c.String("method"); m != "" {
			method = &m
		}
		var cid *bool
		if c.Bool("cid") {
			v := true
			cid = &v
		}

		d, key, err := svc.CreateMyDID(did.MyDidInfo{Seed: seed, Cid: cid, MethodName: method})
		if err != nil {
			return cli.Exit(err.Error(), OperationFailed)
		}

		if err := store.PutKey(context.Background(), c.String("wallet"), key); err != nil {
			return cli.Exit(err.Error(), OperationFailed)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"DID", "Verkey"})
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")
		table.Append([]string{d.Did, d.Verkey})
		table.Render()

		return nil
	},
}

var SignCommand = &cli.Command{
	Name:      "sign",
	Usage:     "sign a message with a wallet-held key",
	ArgsUsage: "<verkey> <message>",
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 2 {
			return cli.Exit("please specify a verkey and a message", InvalidParameter)
		}

		svc, store, err := openWallet(c)
		if err != nil {
			return err
		}
		defer store.Close()

		key, err := store.GetKey(context.Background(), c.String("wallet"), c.Args().Get(0))
		if err != nil {
			return cli.Exit(err.Error(), OperationFailed)
		}

		sig, err := svc.Sign(key, []byte(c.Args().Get(1)))
		if err != nil {
			return cli.Exit(err.Error(), OperationFailed)
		}

		println(base64.StdEncoding.EncodeToString(sig))
		return nil
	},
}

var VerifyCommand = &cli.Command{
	Name:      "verify",
	Usage:     "verify a message signature against a verkey",
	ArgsUsage: "<verkey> <message> <signature-hex>",
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 3 {
			return cli.Exit("please specify a verkey, a message and a hex-encoded signature", InvalidParameter)
		}

		svc, store, err := openWallet(c)
		if err != nil {
			return err
		}
		defer store.Close()

		sig, err := hex.DecodeString(c.Args().Get(2))
		if err != nil {
			return cli.Exit("signature must be hex-encoded: "+err.Error(), InvalidParameter)
		}

		valid, err := svc.Verify(c.Args().Get(0), []byte(c.Args().Get(1)), sig)
		if err != nil {
			return cli.Exit(err.Error(), OperationFailed)
		}

		if valid {
			println("valid")
		} else {
			println("invalid")
			return cli.Exit("", OperationFailed)
		}
		return nil
	},
}

func printKeyTable(keys []did.Key) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Verkey", "Signkey"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	for _, k := range keys {
		table.Append([]string{k.Verkey, k.Signkey})
	}
	table.Render()
}
