package contract

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/iotaledger/sawfly/packages/abi"
	"github.com/iotaledger/sawfly/packages/contracts"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/cliclients"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

func initDeployCmd() *cobra.Command {
	var (
		ctorLabel string
		salt      string
		value     uint64
		gasLimit  uint64
	)

	cmd := &cobra.Command{
		Use:   "deploy <file.wasm> <metadata.json> [ctor-args...]",
		Short: "Store and instantiate a contract in one go",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			wasm, err := os.ReadFile(args[0])
			log.Check(err)
			contractABI := loadMetadata(args[1])

			code, err := contracts.NewCode(cliclients.ChainClient(), contractABI, wasm)
			log.Check(err)
			log.Verbosef("deployment protocol: %s\n", code.Protocol())

			ctor := resolveCtor(contractABI, ctorLabel)
			deploy, err := code.Instantiate(ctor, deployOptions(salt, value, gasLimit), parseArgs(ctor.Params, args[2:])...)
			log.Check(err)

			result, err := deploy.Submit(context.Background())
			log.Check(err)
			printDeployment(result)
		},
	}

	cmd.Flags().StringVar(&ctorLabel, "ctor", "", "constructor label or 0x selector (default: first constructor)")
	cmd.Flags().StringVar(&salt, "salt", "", "instantiation salt (distinct salts yield distinct addresses)")
	cmd.Flags().Uint64Var(&value, "value", 0, "funds to endow the new contract with")
	cmd.Flags().Uint64Var(&gasLimit, "gas-limit", 0, "gas limit of the instantiation")
	return cmd
}

// resolveCtor picks the constructor entry: the flagged label or selector,
// or the first constructor when the flag is empty.
func resolveCtor(contractABI *abi.ABI, label string) *abi.Constructor {
	var id any = label
	if label == "" {
		id = 0
	}
	ctor, err := contractABI.FindConstructor(id)
	log.Check(err)
	return ctor
}

func deployOptions(salt string, value, gasLimit uint64) *contracts.DeployOptions {
	return contracts.NewDeployOptions().WithSaltString(salt).WithValue(value).WithGasLimit(gasLimit)
}

func printDeployment(result *contracts.DeploymentResult) {
	model := &DeployModel{
		RequestID:  result.Receipt.RequestID.Hex(),
		BlockIndex: result.Receipt.BlockIndex,
		GasBurned:  result.Receipt.GasBurned,
	}
	if result.Blueprint != nil {
		model.CodeHash = result.Blueprint.CodeHash().Hex()
	}
	if result.Contract != nil {
		model.Address = result.Contract.Address().String()
	}
	log.PrintCLIOutput(model)
}

type DeployModel struct {
	CodeHash   string
	Address    string
	RequestID  string
	BlockIndex uint32
	GasBurned  uint64
}

var _ log.CLIOutput = &DeployModel{}

func (m *DeployModel) AsText() (string, error) {
	template := `{{ if .CodeHash }}Code hash: {{ .CodeHash }}
{{ end }}{{ if .Address }}Contract address: {{ .Address }}
{{ end }}Request ID: {{ .RequestID }}
Block index: {{ .BlockIndex }}, gas burned: {{ .GasBurned }}`
	return log.ParseCLIOutputTemplate(m, template)
}
