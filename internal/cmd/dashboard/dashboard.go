// Package dashboard renders the role landing view, the CLI counterpart of
// the mobile client's dashboard screen.
package dashboard

import (
	"context"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

// DashboardCmd shows a summary for the logged-in user. Teachers additionally
// get today's clock-in/out state; failures there degrade to a notice rather
// than failing the command.
var DashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		snap := cfg.Session.Snapshot()

		var profile *sdk.Profile
		if len(snap.User) > 0 {
			profile, _ = sdk.DecodeProfile(snap.User)
		}

		title := "Welcome"
		if profile != nil && profile.Name != "" {
			title = "Welcome, " + profile.Name
		}
		pterm.DefaultHeader.Println(title)
		pterm.Info.Printf("Role: %s\n", snap.Role)
		if profile != nil && profile.Email != "" {
			pterm.Info.Printf("Email: %s\n", profile.Email)
		}

		if role, _ := sdk.ParseRole(snap.Role); role == sdk.RoleTeacher {
			showTodayAttendance(cmd.Context(), cfg)
		}
		return nil
	},
}

func showTodayAttendance(ctx context.Context, cfg *config.GlobalConfig) {
	client, err := cfg.ClientProvider.SDKClient()
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status, err := client.AttendanceStatus(ctx)
	if err != nil {
		pterm.Debug.Printf("attendance status unavailable: %v\n", err)
		return
	}

	pterm.DefaultSection.Println("Today")
	switch {
	case status.ClockedIn && status.ClockOutTime == "":
		pterm.Success.Printf("Clocked in at %s\n", status.ClockInTime)
	case status.ClockOutTime != "":
		pterm.Info.Printf("Clocked in %s, out %s\n", status.ClockInTime, status.ClockOutTime)
	default:
		pterm.Warning.Println("Not clocked in yet")
	}
}
