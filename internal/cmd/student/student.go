// Package student covers the class roster: listing students and editing
// their profiles.
package student

import (
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

// StudentCmd is the parent command for student operations.
var StudentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage students",
}

func init() {
	StudentCmd.AddCommand(listCmd)
	StudentCmd.AddCommand(updateCmd)
}

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
