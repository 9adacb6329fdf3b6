package contract

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/iotaledger/sawfly/packages/contracts"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/cliclients"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

func initStoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "store <file.wasm> <metadata.json>",
		Short: "Upload a code bundle without instantiating it",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			wasm, err := os.ReadFile(args[0])
			log.Check(err)

			code, err := contracts.NewCode(cliclients.ChainClient(), loadMetadata(args[1]), wasm)
			log.Check(err)

			result, err := code.StoreOnly().Submit(context.Background())
			log.Check(err)

			model := &StoreModel{
				CodeHash:   result.Blueprint.CodeHash().Hex(),
				RequestID:  result.Receipt.RequestID.Hex(),
				BlockIndex: result.Receipt.BlockIndex,
				GasBurned:  result.Receipt.GasBurned,
			}
			log.PrintCLIOutput(model)
		},
	}
}

type StoreModel struct {
	CodeHash   string
	RequestID  string
	BlockIndex uint32
	GasBurned  uint64
}

var _ log.CLIOutput = &StoreModel{}

func (m *StoreModel) AsText() (string, error) {
	template := `Code stored under hash {{ .CodeHash }}
Request ID: {{ .RequestID }}
Block index: {{ .BlockIndex }}, gas burned: {{ .GasBurned }}
Instantiate it with: contract instantiate {{ .CodeHash }} <metadata.json>`
	return log.ParseCLIOutputTemplate(m, template)
}
