package exam

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <exam-id>",
	Short: "Delete an exam",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		if !deleteYes && !cfg.NonInteractive {
			confirmed, err := pterm.DefaultInteractiveConfirm.
				WithDefaultText("Delete exam " + args[0] + "?").
				Show()
			if err != nil {
				return errors.Wrap(err, "confirmation aborted")
			}
			if !confirmed {
				pterm.Info.Println("Aborted")
				return nil
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := client.DeleteExam(ctx, args[0]); err != nil {
			return errors.Wrap(err, "failed to delete exam")
		}
		pterm.Success.Println("Exam deleted")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip confirmation")
}
