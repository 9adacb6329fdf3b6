package setup

import (
	"github.com/spf13/cobra"

	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/config"
)

func Init(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVarP(&config.ConfigPath, "config", "c", "sawfly-cli.json", "path to sawfly-cli.json")

	rootCmd.AddCommand(initSetCmd())
}

func initSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			config.Set(args[0], args[1])
		},
	}
}
