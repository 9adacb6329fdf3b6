package contract

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iotaledger/sawfly/packages/contracts"
	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/cliclients"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

func initInstantiateCmd() *cobra.Command {
	var (
		ctorLabel string
		salt      string
		value     uint64
		gasLimit  uint64
	)

	cmd := &cobra.Command{
		Use:   "instantiate <code-hash> <metadata.json> [ctor-args...]",
		Short: "Instantiate a contract from an already stored code bundle",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			codeHash, err := hashing.HashValueFromHex(args[0])
			log.Check(err)
			contractABI := loadMetadata(args[1])

			blueprint, err := contracts.NewBlueprint(cliclients.ChainClient(), contractABI, codeHash)
			log.Check(err)

			ctor := resolveCtor(contractABI, ctorLabel)
			deploy, err := blueprint.Instantiate(ctor, deployOptions(salt, value, gasLimit), parseArgs(ctor.Params, args[2:])...)
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
