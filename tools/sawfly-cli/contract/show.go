package contract

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/cliclients"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

func initShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <address>",
		Short: "Show a deployed contract",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			address, err := ledger.AccountIDFromString(args[0])
			log.Check(err)

			info, err := cliclients.ChainClient().GetContractInfo(context.Background(), address)
			log.Check(err)

			log.Printf("Address: %s\n", info.Address)
			log.Printf("Code hash: %s\n", info.CodeHash)
			log.Printf("Deployer: %s\n", info.Deployer)
			log.Printf("Balance: %d\n", info.Balance)
			log.Printf("Deployed in block: %d\n", info.BlockIndex)
		},
	}
}

func initCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "code <code-hash>",
		Short: "Show a stored code bundle",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			codeHash, err := hashing.HashValueFromHex(args[0])
			log.Check(err)

			info, err := cliclients.ChainClient().GetCodeInfo(context.Background(), codeHash)
			log.Check(err)

			log.Printf("Code hash: %s\n", info.Hash)
			log.Printf("Size: %s (%d bytes)\n", humanize.Bytes(uint64(info.Size)), info.Size)
			log.Printf("Uploader: %s\n", info.Uploader)
			log.Printf("Stored in block: %d\n", info.BlockIndex)
		},
	}
}
