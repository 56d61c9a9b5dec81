// Package attendance hosts both halves of the attendance feature: the
// teacher's own clock-in/out (geolocated, enforced server-side) and roster
// attendance marking for a class.
package attendance

import (
	"github.com/spf13/cobra"
)

// AttendanceCmd is the parent command for attendance operations.
var AttendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Manage attendance",
	Long:  `Commands for your own clock-in/out and for marking class attendance.`,
}

func init() {
	AttendanceCmd.AddCommand(statusCmd)
	AttendanceCmd.AddCommand(clockInCmd)
	AttendanceCmd.AddCommand(clockOutCmd)
	AttendanceCmd.AddCommand(activityCmd)
	AttendanceCmd.AddCommand(markCmd)
	AttendanceCmd.AddCommand(monthCmd)
}
