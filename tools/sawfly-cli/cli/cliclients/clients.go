package cliclients

import (
	"github.com/iotaledger/sawfly/packages/chainclient"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/config"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/wallet"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

var client chainclient.Client

// ChainClient connects to the configured node on first use. The runtime
// call table is fetched once and reused by every command. Calls are signed
// with the wallet key when a seed was initialized.
func ChainClient() chainclient.Client {
	if client == nil {
		apiAddress := config.NodeAPIAddress()
		log.Verbosef("using node %s\n", apiAddress)

		var kp *ledger.KeyPair
		if config.SeedHex() != "" {
			kp = wallet.Load().KeyPair
		}

		c, err := chainclient.NewClient(chainclient.Config{
			APIAddress: apiAddress,
			KeyPair:    kp,
		}, log.HiveLogger())
		log.Check(err)
		client = c
	}
	return client
}
