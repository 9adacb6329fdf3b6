package wallet

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/config"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/wallet"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

func Init(rootCmd *cobra.Command) {
	rootCmd.AddCommand(initInitCmd())
	rootCmd.AddCommand(initAddressCmd())
}

func initInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a new wallet seed and store it in the config file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if config.SeedHex() != "" {
				log.Fatalf("wallet.seed is already set, refusing to overwrite it")
			}
			config.Set("wallet.seed", hexutil.Encode(ledger.NewSeed()))

			model := &InitModel{Address: wallet.Load().Address().String()}
			log.PrintCLIOutput(model)
		},
	}
}

type InitModel struct {
	Address string
}

var _ log.CLIOutput = &InitModel{}

func (m *InitModel) AsText() (string, error) {
	template := `New wallet seed saved in the config file.
Address: {{ .Address }}`
	return log.ParseCLIOutputTemplate(m, template)
}

func initAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Show the wallet address",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := wallet.Load()
			model := &AddressModel{Index: w.AddressIndex, Address: w.Address().String()}
			log.PrintCLIOutput(model)
		},
	}
}

type AddressModel struct {
	Index   uint32
	Address string
}

var _ log.CLIOutput = &AddressModel{}

func (m *AddressModel) AsText() (string, error) {
	template := `Address index: {{ .Index }}
Address: {{ .Address }}`
	return log.ParseCLIOutputTemplate(m, template)
}
