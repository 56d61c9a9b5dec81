package student

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
)

var updateFields []string

var updateCmd = &cobra.Command{
	Use:   "update <student-id>",
	Short: "Update a student profile",
	Long: `Updates fields on a student profile.

Fields are key=value pairs understood by the server (e.g. name, email,
phone, guardianName); only the given keys are modified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		if len(updateFields) == 0 {
			return errors.New("at least one --set key=value is required")
		}
		fields := make(map[string]any, len(updateFields))
		for _, pair := range updateFields {
			idx := strings.IndexByte(pair, '=')
			if idx <= 0 {
				return errors.Errorf("invalid --set %q, expected key=value", pair)
			}
			fields[pair[:idx]] = pair[idx+1:]
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := client.UpdateStudent(ctx, args[0], fields); err != nil {
			return errors.Wrap(err, "failed to update student")
		}
		pterm.Success.Printf("Student %s updated (%d fields)\n", args[0], len(fields))
		return nil
	},
}

func init() {
	updateCmd.Flags().StringArrayVar(&updateFields, "set", nil, "Field to set as key=value. Repeatable")
}
