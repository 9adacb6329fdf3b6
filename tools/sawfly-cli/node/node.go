package node

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/cliclients"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

func Init(rootCmd *cobra.Command) {
	rootCmd.AddCommand(initInfoCmd())
}

func initInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show node info and its runtime call table",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			client := cliclients.ChainClient()
			info, err := client.Info(context.Background())
			log.Check(err)

			log.Printf("Chain: %s\n", info.Name)
			log.Printf("Version: %s\n", info.Version)
			log.Printf("Generation: %s\n", info.Generation)
			log.Printf("Block index: %d\n", info.BlockIndex)

			log.Printf("\nRuntime calls:\n")
			header := []string{"module", "entry", "arity"}
			var rows [][]string
			for _, spec := range client.CallTable().List() {
				rows = append(rows, []string{spec.Module, spec.Entry, fmt.Sprintf("%d", spec.Arity)})
			}
			log.PrintTable(header, rows)
		},
	}
}
