package timetable

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

var (
	setClass   string
	setSection string
	setDay     string
	setPeriod  int
	setSubject string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the subject for a period",
	Long: `Assigns a subject to one day/period slot of the class timetable.

The server has no in-place update: the stored record is replaced wholesale
(delete then create), so the remaining slots are carried over unchanged. An
empty --subject clears the slot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		class, section := classSection(cfg, setClass, setSection)
		if class == "" || section == "" {
			return errors.New("--class and --section are required")
		}
		if setDay == "" {
			return errors.New("--day is required (lowercase, e.g. monday)")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		record, err := client.ClassTimetable(ctx, class, section)
		if err != nil {
			return errors.Wrap(err, "failed to fetch timetable")
		}

		var existingID string
		input := sdk.CreateTimetableInput{ClassName: class, Section: section}
		if record != nil {
			existingID = record.ID
			input = record.AsInput()
			input.ClassName = class
			input.Section = section
		}
		if err := input.SetPeriod(setDay, setPeriod, setSubject); err != nil {
			return err
		}

		spinner, _ := pterm.DefaultSpinner.Start("Saving timetable...")
		if _, err := client.ReplaceClassTimetable(ctx, existingID, input); err != nil {
			spinner.Fail(err.Error())
			return errors.Wrap(err, "failed to save timetable")
		}
		if setSubject == "" {
			spinner.Success("Period cleared")
		} else {
			spinner.Success("Timetable saved")
		}
		return nil
	},
}

func init() {
	setCmd.Flags().StringVar(&setClass, "class", "", "Class name (default: your class assignment)")
	setCmd.Flags().StringVar(&setSection, "section", "", "Section (default: your class assignment)")
	setCmd.Flags().StringVar(&setDay, "day", "", "Day to edit (lowercase, e.g. monday)")
	setCmd.Flags().IntVar(&setPeriod, "period", 1, "Period slot (1-8)")
	setCmd.Flags().StringVar(&setSubject, "subject", "", "Subject name (empty clears the slot)")
}
