// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pangpanglabs/echoswagger/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/packages/testutil/testchain"
	"github.com/iotaledger/sawfly/packages/webapi"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

// overridden with `-ldflags "-X main.version=..."`
var version = "0.1.0"

var (
	listenAddress = ":9090"
	seedHex       = "0xffa736fb5373da7bf8b8c97e73157300a529cb7e37c48f3b8ce0ec3cb556e509"
	generation    = testchain.GenerationModern
)

func main() {
	cmd := &cobra.Command{
		Args:  cobra.NoArgs,
		Run:   start,
		Use:   "sawfly-solo",
		Short: "sawfly-solo runs an in-memory chain with the contracts runtime",
		Long: `sawfly-solo runs an in-memory chain exposing the node HTTP API.

sawfly-solo does the following:

- Starts an in-memory chain with the contracts runtime
- Derives 10 accounts from the seed (addresses printed after init)
- Starts a webapi server at port 9090

Note: chain data is stored in-memory and will be lost upon termination.
`,
	}

	log.Init(cmd)
	cmd.PersistentFlags().StringVarP(&listenAddress, "listen", "l", listenAddress, "listen address")
	cmd.PersistentFlags().StringVarP(&seedHex, "seed", "s", seedHex, "seed")
	cmd.PersistentFlags().StringVarP(&generation, "generation", "g", generation, "runtime generation (modern|dual|legacy)")

	err := cmd.Execute()
	log.Check(err)
}

func initChain() *testchain.Chain {
	opts, err := testchain.GenerationOptions(generation)
	log.Check(err)
	opts = append(opts, testchain.WithName("solo"))
	return testchain.New(log.HiveLogger(), opts...)
}

func deriveAccounts(seed []byte) []ledger.AccountID {
	log.Printf("deriving accounts from the seed...\n")
	accounts := make([]ledger.AccountID, 0, 10)
	for i := 0; i < 10; i++ {
		kp, err := ledger.KeyPairFromSeed(ledger.SubSeed(seed, uint32(i)))
		log.Check(err)
		accounts = append(accounts, kp.Address())
	}
	return accounts
}

func printAccounts(accounts []ledger.AccountID) {
	header := []string{"index", "address"}
	var rows [][]string
	for i, account := range accounts {
		rows = append(rows, []string{fmt.Sprintf("%d", i), account.String()})
	}
	log.PrintTable(header, rows)
}

func initWebAPI(chain *testchain.Chain) echoswagger.ApiRoot {
	echoSwagger := webapi.NewEcho(log.DebugFlag, version, log.HiveLogger())
	webapi.Init(echoSwagger, chain, version, log.HiveLogger())
	return echoSwagger
}

func printInfo(chain *testchain.Chain, seed []byte, accounts []ledger.AccountID) {
	log.Printf("\n")
	log.Printf("Chain: %s (%s runtime)\n", chain.Name(), chain.Generation())
	log.Printf("\nAccounts:\n")
	printAccounts(accounts)
	log.Printf("\n")
	addr := listenAddress
	if listenAddress[0] == ':' {
		addr = "http://localhost" + listenAddress
	}
	log.Printf("sawfly-cli configuration\n")
	log.Printf("------------------------\n")
	log.Printf("sawfly-cli set node.apiaddress %s\n", addr)
	log.Printf("sawfly-cli set wallet.seed %s\n", hexutil.Encode(seed))
	log.Printf("\n")
	log.Printf("API documentation: %s/doc\n", addr)
	log.Printf("\n")
}

func start(_ *cobra.Command, _ []string) {
	seed := lo.Must(hexutil.Decode(seedHex))

	chain := initChain()
	hook := chain.ReceiptProcessed().Hook(func(receipt *ledger.Receipt) {
		log.Printf("request %s processed in block %d\n", receipt.RequestID.Hex(), receipt.BlockIndex)
	})
	defer hook.Unhook()

	accounts := deriveAccounts(seed)
	echoSwagger := initWebAPI(chain)

	printInfo(chain, seed, accounts)

	if err := echoSwagger.Echo().Start(listenAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Check(err)
	}
}
