package assignment

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

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List assignments",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		assignments, err := client.ListAssignments(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list assignments")
		}
		if len(assignments) == 0 {
			pterm.Info.Println("No assignments found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSUBJECT\tCLASS\tDUE\tFILE")
		// Newest first.
		for i := len(assignments) - 1; i >= 0; i-- {
			a := assignments[i]
			file := "-"
			if a.FileURL != "" {
				file = a.FileURL
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\t%s\t%s\n",
				a.ID, a.Title, a.Subject, a.ClassName, a.Section, a.DueDate, file)
		}
		w.Flush()
		return nil
	},
}
