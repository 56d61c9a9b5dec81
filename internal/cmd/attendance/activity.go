package attendance

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
)

var (
	activityDate   string
	activityStatus string
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show your attendance activity log",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		date := activityDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		entries, err := client.AttendanceActivity(ctx, date, activityStatus)
		if err != nil {
			return errors.Wrap(err, "failed to fetch activity")
		}
		if len(entries) == 0 {
			pterm.Info.Printf("No activity recorded for %s\n", date)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tSTATUS\tCLOCK_IN\tCLOCK_OUT\tHOURS")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				entry.Date, entry.Status, entry.ClockInTime, entry.ClockOutTime, entry.WorkingHours)
		}
		w.Flush()
		return nil
	},
}

func init() {
	activityCmd.Flags().StringVar(&activityDate, "date", "", "Date to inspect (YYYY-MM-DD, default today)")
	activityCmd.Flags().StringVar(&activityStatus, "status", "", "Filter by status (present, absent, late)")
}
