// Package timetable renders and edits the weekly class timetable.
package timetable

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

var (
	showClass   string
	showSection string
	showDay     string
)

// TimetableCmd shows the timetable for a class/section. Editing lives under
// the set/delete subcommands.
var TimetableCmd = &cobra.Command{
	Use:   "timetable",
	Short: "Show the class timetable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		class, section := classSection(cfg, showClass, showSection)
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

		days := sdk.TimetableDays
		if showDay != "" {
			if !knownDay(showDay) {
				return errors.Errorf("unknown day %q", showDay)
			}
			days = []string{showDay}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprint(w, "DAY")
		for p := 1; p <= sdk.TimetablePeriods; p++ {
			fmt.Fprintf(w, "\tP%d", p)
		}
		fmt.Fprintln(w)
		for _, day := range days {
			fmt.Fprint(w, strings.ToUpper(day[:1])+day[1:])
			periods := record.Day(day)
			for p := 1; p <= sdk.TimetablePeriods; p++ {
				subject := periods[fmt.Sprintf("period%d", p)]
				if subject == "" {
					subject = "-"
				}
				fmt.Fprintf(w, "\t%s", subject)
			}
			fmt.Fprintln(w)
		}
		w.Flush()
		return nil
	},
}

func knownDay(day string) bool {
	for _, d := range sdk.TimetableDays {
		if d == day {
			return true
		}
	}
	return false
}

// classSection resolves the target class/section, falling back to the class
// assignment on the stored profile.
func classSection(cfg *config.GlobalConfig, class, section string) (string, string) {
	if class != "" && section != "" {
		return class, section
	}
	snap := cfg.Session.Snapshot()
	profile, err := sdk.DecodeProfile(snap.User)
	if err != nil || profile == nil {
		return class, section
	}
	if class == "" {
		class = profile.ClassTeacher
	}
	if section == "" {
		section = profile.Section
	}
	return class, section
}

func init() {
	TimetableCmd.Flags().StringVar(&showClass, "class", "", "Class name (default: your class assignment)")
	TimetableCmd.Flags().StringVar(&showSection, "section", "", "Section (default: your class assignment)")
	TimetableCmd.Flags().StringVar(&showDay, "day", "", "Show a single day (lowercase, e.g. monday)")

	TimetableCmd.AddCommand(setCmd)
	TimetableCmd.AddCommand(deleteCmd)
}
