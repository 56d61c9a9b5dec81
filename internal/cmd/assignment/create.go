package assignment

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

var (
	createTitle       string
	createDescription string
	createDueDate     string
	createClass       string
	createSection     string
	createSubject     string
	createFile        string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an assignment",
	Long: `Creates an assignment for your class, optionally attaching a file
(uploaded as multipart form data).

The subject can be picked interactively from the subjects taught to the
class when --subject is omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		if createTitle == "" || createDescription == "" {
			return errors.New("--title and --description are required")
		}

		class, section := createClass, createSection
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
			return errors.New("--class and --section are required (no class assignment on your profile)")
		}

		dueDate := createDueDate
		if dueDate == "" {
			dueDate = time.Now().AddDate(0, 0, 7).Format("2006-01-02")
		}

		subject := createSubject
		if subject == "" {
			if cfg.NonInteractive {
				return errors.New("--subject is required in non-interactive mode")
			}
			subject, err = pickSubject(cmd.Context(), cfg, class, section)
			if err != nil {
				return err
			}
		}

		input := sdk.CreateAssignmentInput{
			Title:       createTitle,
			Description: createDescription,
			DueDate:     dueDate,
			ClassName:   class,
			Section:     section,
			Subject:     subject,
		}

		if createFile != "" {
			file, err := os.Open(createFile)
			if err != nil {
				return errors.Wrap(err, "failed to open attachment")
			}
			defer file.Close()
			input.Attachment = file
			input.AttachmentName = filepath.Base(createFile)
			input.AttachmentMIME = mime.TypeByExtension(filepath.Ext(createFile))
		}

		spinner, _ := pterm.DefaultSpinner.Start("Creating assignment...")
		created, err := client.CreateAssignment(cmd.Context(), input)
		if err != nil {
			spinner.Fail(err.Error())
			return err
		}
		spinner.Success("Assignment created")
		if created.ID != "" {
			pterm.Info.Printf("ID: %s\n", created.ID)
		}
		return nil
	},
}

func pickSubject(ctx context.Context, cfg *config.GlobalConfig, class, section string) (string, error) {
	client, err := cfg.ClientProvider.SDKClient()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	subjects, err := client.ListSubjects(ctx, class, section)
	if err != nil {
		return "", errors.Wrap(err, "could not load subjects")
	}
	if len(subjects) == 0 {
		return "", errors.Errorf("no subjects configured for %s %s", class, section)
	}

	options := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		options = append(options, subject.Name)
	}
	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText("Subject").
		Show()
	if err != nil {
		return "", errors.Wrap(err, "subject selection aborted")
	}
	return selected, nil
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Assignment title")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Instructions for students")
	createCmd.Flags().StringVar(&createDueDate, "due", "", "Due date (YYYY-MM-DD, default one week out)")
	createCmd.Flags().StringVar(&createClass, "class", "", "Class name (default: your class assignment)")
	createCmd.Flags().StringVar(&createSection, "section", "", "Section (default: your class assignment)")
	createCmd.Flags().StringVar(&createSubject, "subject", "", "Subject (picked interactively when omitted)")
	createCmd.Flags().StringVar(&createFile, "file", "", "File to attach (PDF)")
}
