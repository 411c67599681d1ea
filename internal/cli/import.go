package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore the registry from a JSON backup file",
	Long: `Restore the registry from a JSON backup file. The document replaces
the whole registry; a single malformed entry rejects the import and
leaves the current registry untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading backup file: %w", err)
		}

		app, err := newApp(cmd.Context(), cfgPath)
		if err != nil {
			return err
		}
		defer app.Close()

		msgs, err := app.backup.Import(cmd.Context(), doc)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "restored %d message(s)\n", len(msgs))
		return nil
	},
}
