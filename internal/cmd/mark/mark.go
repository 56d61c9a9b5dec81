// Package mark lists recorded exam marks.
package mark

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
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

var (
	listClass   string
	listSection string
)

// MarkCmd shows marks for a class/section.
var MarkCmd = &cobra.Command{
	Use:   "marks",
	Short: "Show recorded marks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		class, section := listClass, listSection
		if class == "" || section == "" {
			snap := cfg.Session.Snapshot()
			if profile, err := sdk.DecodeProfile(snap.User); err == nil && profile != nil {
				if class == "" {
					class = profile.ClassTeacher
				}
				if section == "" {
					section = profile.Section
				}
			}
		}
		if class == "" || section == "" {
			return errors.New("--class and --section are required")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		marks, err := client.ListMarks(ctx, class, section)
		if err != nil {
			return errors.Wrap(err, "failed to fetch marks")
		}
		if len(marks) == 0 {
			pterm.Info.Printf("No marks recorded for %s %s\n", class, section)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STUDENT\tEXAM\tSUBJECT\tMARKS\tGRADE")
		for _, record := range marks {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%s\n",
				record.StudentName, record.ExamName, record.Subject,
				record.Obtained, record.Total, record.Grade)
		}
		w.Flush()
		return nil
	},
}

func init() {
	MarkCmd.Flags().StringVar(&listClass, "class", "", "Class name (default: your class assignment)")
	MarkCmd.Flags().StringVar(&listSection, "section", "", "Section (default: your class assignment)")
}
