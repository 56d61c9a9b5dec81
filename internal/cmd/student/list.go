package student

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
	listClass   string
	listSection string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active students in a class",
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

		students, err := client.ListStudents(ctx, class, section)
		if err != nil {
			return errors.Wrap(err, "failed to list students")
		}
		if len(students) == 0 {
			pterm.Info.Printf("No active students in %s %s\n", class, section)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tROLL\tNAME\tEMAIL\tGUARDIAN")
		for _, student := range students {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				student.ID, student.RollNo, student.Name, student.Email, student.GuardianN)
		}
		w.Flush()
		pterm.Info.Printf("%d students\n", len(students))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listClass, "class", "", "Class name (default: your class assignment)")
	listCmd.Flags().StringVar(&listSection, "section", "", "Section (default: your class assignment)")
}
