package attendance

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
	markClass   string
	markSection string
	markDate    string
	markAbsent  []string
	markLate    []string
	markLeave   []string
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Mark class attendance for a day",
	Long: `Submits attendance for your class roster.

Students listed with --absent/--late/--leave get that status; everyone else
on the roster is marked present. Without those flags, absentees are picked
interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		class, section := classSection(cfg, markClass, markSection)
		if class == "" || section == "" {
			return errors.New("--class and --section are required (no class assignment on your profile)")
		}

		date := markDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		students, err := client.ListStudents(ctx, class, section)
		if err != nil {
			return errors.Wrap(err, "failed to load roster")
		}
		if len(students) == 0 {
			pterm.Warning.Printf("No active students in %s %s\n", class, section)
			return nil
		}

		overrides := map[string]string{}
		for _, id := range markAbsent {
			overrides[id] = "absent"
		}
		for _, id := range markLate {
			overrides[id] = "late"
		}
		for _, id := range markLeave {
			overrides[id] = "leave"
		}

		if len(overrides) == 0 && !cfg.NonInteractive {
			picked, err := pickAbsentees(students)
			if err != nil {
				return err
			}
			for _, id := range picked {
				overrides[id] = "absent"
			}
		}

		entries := make([]sdk.RosterEntry, 0, len(students))
		for _, student := range students {
			status := "present"
			if s, ok := overrides[student.ID]; ok {
				status = s
			}
			entries = append(entries, sdk.RosterEntry{StudentID: student.ID, Status: status})
		}

		submission := sdk.RosterSubmission{
			Date:      date,
			ClassName: class,
			Section:   section,
			Entries:   entries,
		}
		if err := client.SubmitRosterAttendance(ctx, submission); err != nil {
			return errors.Wrap(err, "failed to submit attendance")
		}

		pterm.Success.Printf("Attendance submitted for %s %s on %s (%d students, %d not present)\n",
			class, section, date, len(entries), len(overrides))
		return nil
	},
}

// pickAbsentees offers the roster as a multiselect of students to mark absent.
func pickAbsentees(students []sdk.Student) ([]string, error) {
	options := make([]string, 0, len(students))
	byLabel := make(map[string]string, len(students))
	for _, student := range students {
		label := student.Name + " (" + student.RollNo + ")"
		options = append(options, label)
		byLabel[label] = student.ID
	}

	selected, err := pterm.DefaultInteractiveMultiselect.
		WithOptions(options).
		WithDefaultText("Select absent students (empty = all present)").
		Show()
	if err != nil {
		return nil, errors.Wrap(err, "selection aborted")
	}

	ids := make([]string, 0, len(selected))
	for _, label := range selected {
		ids = append(ids, byLabel[label])
	}
	return ids, nil
}

// classSection resolves the target class/section, falling back to the
// teacher's own class assignment from the stored profile.
func classSection(cfg *config.GlobalConfig, class, section string) (string, string) {
	if class != "" && section != "" {
		return class, section
	}
	snap := cfg.Session.Snapshot()
	if len(snap.User) == 0 {
		return class, section
	}
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
	markCmd.Flags().StringVar(&markClass, "class", "", "Class name (default: your class assignment)")
	markCmd.Flags().StringVar(&markSection, "section", "", "Section (default: your class assignment)")
	markCmd.Flags().StringVar(&markDate, "date", "", "Date (YYYY-MM-DD, default today)")
	markCmd.Flags().StringSliceVar(&markAbsent, "absent", nil, "Student IDs to mark absent")
	markCmd.Flags().StringSliceVar(&markLate, "late", nil, "Student IDs to mark late")
	markCmd.Flags().StringSliceVar(&markLeave, "leave", nil, "Student IDs to mark on leave")
}
