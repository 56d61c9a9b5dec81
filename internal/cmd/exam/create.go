package exam

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

var (
	createName     string
	createClass    string
	createSection  string
	createStart    string
	createEnd      string
	createSubjects []string
	createTotal    int
	createPassing  int
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Schedule a new exam",
	Long: `Schedules an exam covering one or more subjects.

Subjects are given as name[:date] pairs; dates default to the exam start
date. Marks are uniform across subjects (--total/--passing).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		if createName == "" {
			return errors.New("--name is required")
		}
		class, section := classSection(cfg, createClass, createSection)
		if class == "" || section == "" {
			return errors.New("--class and --section are required")
		}
		if createStart == "" || createEnd == "" {
			return errors.New("--start and --end are required (YYYY-MM-DD)")
		}
		if len(createSubjects) == 0 {
			return errors.New("at least one --subject is required")
		}

		subjects, err := parseSubjectSpecs(createSubjects, createStart, createTotal, createPassing)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		exam, err := client.CreateExam(ctx, sdk.CreateExamInput{
			Name:      createName,
			ClassName: class,
			Section:   section,
			StartDate: createStart,
			EndDate:   createEnd,
			Subjects:  subjects,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create exam")
		}

		pterm.Success.Printf("Exam %q scheduled for %s %s (%s subjects)\n",
			exam.Name, class, section, strconv.Itoa(len(subjects)))
		fmt.Printf("ID: %s\n", exam.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Exam name (e.g. \"Half Yearly\")")
	createCmd.Flags().StringVar(&createClass, "class", "", "Class name (default: your class assignment)")
	createCmd.Flags().StringVar(&createSection, "section", "", "Section (default: your class assignment)")
	createCmd.Flags().StringVar(&createStart, "start", "", "Start date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&createEnd, "end", "", "End date (YYYY-MM-DD)")
	createCmd.Flags().StringArrayVar(&createSubjects, "subject", nil, "Subject as name[:date]. Repeatable")
	createCmd.Flags().IntVar(&createTotal, "total", 100, "Total marks per subject")
	createCmd.Flags().IntVar(&createPassing, "passing", 33, "Passing marks per subject")
}
