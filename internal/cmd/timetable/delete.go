package timetable

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
)

var (
	deleteClass   string
	deleteSection string
	deleteYes     bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the class timetable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		class, section := classSection(cfg, deleteClass, deleteSection)
		if class == "" || section == "" {
			return errors.New("--class and --section are required")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		record, err := client.ClassTimetable(ctx, class, section)
		if err != nil {
			return errors.Wrap(err, "failed to fetch timetable")
		}
		if record == nil {
			pterm.Info.Printf("No timetable created for %s %s\n", class, section)
			return nil
		}

		if !deleteYes && !cfg.NonInteractive {
			confirmed, err := pterm.DefaultInteractiveConfirm.
				WithDefaultText("Delete the timetable for " + class + " " + section + "?").
				Show()
			if err != nil {
				return errors.Wrap(err, "confirmation aborted")
			}
			if !confirmed {
				pterm.Info.Println("Aborted")
				return nil
			}
		}

		if err := client.DeleteClassTimetable(ctx, record.ID); err != nil {
			return errors.Wrap(err, "failed to delete timetable")
		}
		pterm.Success.Println("Timetable deleted")
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVar(&deleteClass, "class", "", "Class name (default: your class assignment)")
	deleteCmd.Flags().StringVar(&deleteSection, "section", "", "Section (default: your class assignment)")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip confirmation")
}
