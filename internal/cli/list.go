package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List committed messages, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context(), cfgPath)
		if err != nil {
			return err
		}
		defer app.Close()

		msgs, err := app.svc.List(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(msgs) == 0 {
			fmt.Fprintln(out, "no messages saved")
			return nil
		}

		for _, m := range msgs {
			fmt.Fprintf(out, "%s  %s  %s <%s>\n    %q\n", m.Id, m.CreatedAt, m.Name, m.Email, m.Body)
		}
		return nil
	},
}
