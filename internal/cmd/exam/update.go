package exam

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

var (
	updateName     string
	updateClass    string
	updateSection  string
	updateStart    string
	updateEnd      string
	updateSubjects []string
	updateTotal    int
	updatePassing  int
)

var updateCmd = &cobra.Command{
	Use:   "update <exam-id>",
	Short: "Update a scheduled exam",
	Long: `Replaces an exam definition. The server treats this as a full
replacement, so all fields must be supplied the same way as for create.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		if updateName == "" {
			return errors.New("--name is required")
		}
		class, section := classSection(cfg, updateClass, updateSection)
		if class == "" || section == "" {
			return errors.New("--class and --section are required")
		}
		if updateStart == "" || updateEnd == "" {
			return errors.New("--start and --end are required (YYYY-MM-DD)")
		}
		if len(updateSubjects) == 0 {
			return errors.New("at least one --subject is required")
		}

		subjects, err := parseSubjectSpecs(updateSubjects, updateStart, updateTotal, updatePassing)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		exam, err := client.UpdateExam(ctx, args[0], sdk.CreateExamInput{
			Name:      updateName,
			ClassName: class,
			Section:   section,
			StartDate: updateStart,
			EndDate:   updateEnd,
			Subjects:  subjects,
		})
		if err != nil {
			return errors.Wrap(err, "failed to update exam")
		}

		pterm.Success.Printf("Exam %q updated for %s %s\n", exam.Name, class, section)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "Exam name")
	updateCmd.Flags().StringVar(&updateClass, "class", "", "Class name (default: your class assignment)")
	updateCmd.Flags().StringVar(&updateSection, "section", "", "Section (default: your class assignment)")
	updateCmd.Flags().StringVar(&updateStart, "start", "", "Start date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateEnd, "end", "", "End date (YYYY-MM-DD)")
	updateCmd.Flags().StringArrayVar(&updateSubjects, "subject", nil, "Subject as name[:date]. Repeatable")
	updateCmd.Flags().IntVar(&updateTotal, "total", 100, "Total marks per subject")
	updateCmd.Flags().IntVar(&updatePassing, "passing", 33, "Passing marks per subject")
}
