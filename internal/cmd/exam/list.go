package exam

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
)

var (
	listClass   string
	listSection string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List exams for a class",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		class, section := classSection(cfg, listClass, listSection)
		if class == "" || section == "" {
			return errors.New("--class and --section are required")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		exams, err := client.ListExams(ctx, class, section)
		if err != nil {
			return errors.Wrap(err, "failed to list exams")
		}
		if len(exams) == 0 {
			pterm.Info.Printf("No exams scheduled for %s %s\n", class, section)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTART\tEND\tSUBJECTS")
		for _, exam := range exams {
			names := make([]string, 0, len(exam.Subjects))
			for _, subject := range exam.Subjects {
				names = append(names, subject.Name)
			}
			subjects := "-"
			if len(names) > 0 {
				subjects = strings.Join(names, ", ")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", exam.ID, exam.Name, exam.StartDate, exam.EndDate, subjects)
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listClass, "class", "", "Class name (default: your class assignment)")
	listCmd.Flags().StringVar(&listSection, "section", "", "Section (default: your class assignment)")
}
