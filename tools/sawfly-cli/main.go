// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/config"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/setup"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/contract"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/node"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/wallet"
)

// overridden with `-ldflags "-X main.version=..."`
var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Version: version,
		Use:     "sawfly-cli <command>",
		Short:   "sawfly-cli deploys and calls contracts through a node's API",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			log.Check(cmd.Help())
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Read()
		},
	}

	log.Init(rootCmd)
	setup.Init(rootCmd)
	wallet.Init(rootCmd)
	node.Init(rootCmd)
	contract.Init(rootCmd)

	log.Check(rootCmd.Execute())
}
