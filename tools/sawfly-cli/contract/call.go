package contract

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iotaledger/sawfly/packages/contracts"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/cliclients"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

func initCallCmd() *cobra.Command {
	var (
		value    uint64
		gasLimit uint64
	)

	cmd := &cobra.Command{
		Use:   "call <address> <metadata.json> <message> [args...]",
		Short: "Execute a message on a deployed contract",
		Args:  cobra.MinimumNArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			address, err := ledger.AccountIDFromString(args[0])
			log.Check(err)
			contractABI := loadMetadata(args[1])

			instance := contracts.NewContract(cliclients.ChainClient(), contractABI, address)
			msg, err := contractABI.FindMessage(args[2])
			log.Check(err)

			opts := contracts.NewCallOptions().WithValue(value).WithGasLimit(gasLimit)
			exec, err := instance.Exec(args[2], opts, parseArgs(msg.Params, args[3:])...)
			log.Check(err)

			receipt, err := exec.Submit(context.Background())
			log.Check(err)
			logReceipt(receipt)
		},
	}

	cmd.Flags().Uint64Var(&value, "value", 0, "funds to transfer with the call")
	cmd.Flags().Uint64Var(&gasLimit, "gas-limit", 0, "gas limit of the call")
	return cmd
}
