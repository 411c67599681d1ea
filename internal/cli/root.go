package cli

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "courier",
	Short: "Durable local intake and best-effort relay for contact messages",
	Long: `courier keeps every submitted contact message in a durable local
registry and forwards each one, best effort, to a configured relay.
The local write is the guarantee; the relay is advisory.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to JSON config file")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(relayCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
