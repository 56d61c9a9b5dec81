// Package exam covers exam scheduling for a class/section.
package exam

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

// ExamCmd is the parent command for exam operations.
var ExamCmd = &cobra.Command{
	Use:   "exam",
	Short: "Manage exams",
}

func init() {
	ExamCmd.AddCommand(listCmd)
	ExamCmd.AddCommand(createCmd)
	ExamCmd.AddCommand(updateCmd)
	ExamCmd.AddCommand(deleteCmd)
}

// parseSubjectSpecs expands name[:date] pairs into exam subjects. Dates
// default to defaultDate; marks are uniform across subjects.
func parseSubjectSpecs(specs []string, defaultDate string, total, passing int) ([]sdk.ExamSubject, error) {
	subjects := make([]sdk.ExamSubject, 0, len(specs))
	for _, raw := range specs {
		name, date := raw, defaultDate
		if idx := strings.IndexByte(raw, ':'); idx >= 0 {
			name, date = raw[:idx], raw[idx+1:]
		}
		if name == "" {
			return nil, errors.Errorf("empty subject name in %q", raw)
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, errors.Errorf("invalid date %q for subject %s", date, name)
		}
		subjects = append(subjects, sdk.ExamSubject{
			Name:         name,
			Date:         date,
			TotalMarks:   total,
			PassingMarks: passing,
		})
	}
	return subjects, nil
}

// classSection resolves the target class/section, preferring flags and
// falling back to the teacher's class assignment.
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
