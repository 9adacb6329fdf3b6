package contract

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

func initConstructorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constructors <metadata.json>",
		Short: "List the constructors declared in a contract metadata file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			contractABI := loadMetadata(args[0])

			log.Printf("Contract: %s %s\n\n", contractABI.Name, contractABI.Version)
			header := []string{"index", "label", "selector", "params"}
			var rows [][]string
			for _, ctor := range contractABI.Constructors() {
				rows = append(rows, []string{
					fmt.Sprintf("%d", ctor.Index()),
					ctor.Label,
					ctor.SelectorHex(),
					describeParams(ctor.Params),
				})
			}
			log.PrintTable(header, rows)

			if messages := contractABI.Messages(); len(messages) > 0 {
				log.Printf("\nMessages:\n")
				header := []string{"label", "selector", "params"}
				var rows [][]string
				for _, msg := range messages {
					rows = append(rows, []string{msg.Label, msg.SelectorHex(), describeParams(msg.Params)})
				}
				log.PrintTable(header, rows)
			}
		},
	}
}
