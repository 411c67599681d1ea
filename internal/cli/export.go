package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the registry to a JSON backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		app, err := newApp(cmd.Context(), cfgPath)
		if err != nil {
			return err
		}
		defer app.Close()

		doc, name, err := app.backup.Export(cmd.Context())
		if err != nil {
			return err
		}
		if output != "" {
			name = output
		}

		if err := os.WriteFile(name, doc, 0o644); err != nil {
			return fmt.Errorf("writing backup file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", name)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output file (default <prefix>_<date>.json)")
}
