package contract

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/cliclients"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

func initReceiptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <request-id>",
		Short: "Fetch the receipt of a processed request",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			requestID, err := hashing.HashValueFromHex(args[0])
			log.Check(err)

			receipt, err := cliclients.ChainClient().GetReceipt(context.Background(), requestID)
			log.Check(err)
			logReceipt(receipt)
		},
	}
}

func logReceipt(receipt *ledger.Receipt) {
	log.Printf("Request %s processed in block %d, gas burned: %d\n",
		receipt.RequestID.Hex(), receipt.BlockIndex, receipt.GasBurned)
	if len(receipt.Events) == 0 {
		return
	}

	log.Printf("\nEvents:\n")
	header := []string{"module", "kind", "data"}
	rows := make([][]string, len(receipt.Events))
	for i, event := range receipt.Events {
		data := ""
		for j, d := range event.Data {
			if j > 0 {
				data += " "
			}
			data += hexutil.Encode(d)
		}
		rows[i] = []string{event.Module, string(event.Kind), data}
	}
	log.PrintTable(header, rows)
}
