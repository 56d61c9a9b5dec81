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
	monthYear  int
	monthMonth int
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show recorded class attendance for a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		year, month := monthYear, monthMonth
		now := time.Now()
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = int(now.Month())
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		days, err := client.RosterAttendance(ctx, year, month)
		if err != nil {
			return errors.Wrap(err, "failed to fetch attendance")
		}
		if len(days) == 0 {
			pterm.Info.Printf("No attendance recorded for %d-%02d\n", year, month)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tPRESENT\tABSENT\tLATE\tLEAVE")
		for _, day := range days {
			counts := map[string]int{}
			for _, entry := range day.Entries {
				counts[entry.Status]++
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
				day.Date, counts["present"], counts["absent"], counts["late"], counts["leave"])
		}
		w.Flush()
		return nil
	},
}

func init() {
	monthCmd.Flags().IntVar(&monthYear, "year", 0, "Year (default current)")
	monthCmd.Flags().IntVar(&monthMonth, "month", 0, "Month 1-12 (default current)")
}
