package attendance

import (
	"context"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's clock-in/out state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		status, err := client.AttendanceStatus(ctx)
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println("Attendance Today")
		switch {
		case status.ClockedIn && status.ClockOutTime == "":
			pterm.Success.Printf("Clocked in at %s\n", status.ClockInTime)
		case status.ClockOutTime != "":
			pterm.Info.Printf("Clocked in at %s, out at %s\n", status.ClockInTime, status.ClockOutTime)
		default:
			pterm.Warning.Println("Not clocked in yet")
		}
		if status.Status != "" {
			pterm.Info.Printf("Status: %s\n", status.Status)
		}
		return nil
	},
}
