package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/argossea/courier/internal/models"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a contact message",
	Long: `Submit a contact message. The message is always committed to the
local registry; delivery to the relay is attempted once and reported
as a warning if it fails.

Examples:
  courier submit --name "Mario Rossi" --email mario@email.com --message "Engine warning light"
  courier submit --name "Mario Rossi" --email mario@email.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		message, _ := cmd.Flags().GetString("message")

		app, err := newApp(cmd.Context(), cfgPath)
		if err != nil {
			return err
		}
		defer app.Close()

		res, err := app.svc.Submit(cmd.Context(), models.Fields{Name: name, Email: email, Message: message})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if res.Remote.Accepted() {
			fmt.Fprintf(out, "delivered and saved: %s\n", res.Message.Id)
		} else {
			fmt.Fprintf(out, "saved locally, relay %s (%s): %s\n",
				res.Remote.Status, res.Remote.Reason, res.Message.Id)
		}
		return nil
	},
}

func init() {
	submitCmd.Flags().String("name", "", "sender name (required)")
	submitCmd.Flags().String("email", "", "sender email (required)")
	submitCmd.Flags().String("message", "", "message text")
}
