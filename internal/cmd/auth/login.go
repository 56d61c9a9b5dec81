package auth

import (
	"context"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

var (
	loginRole     string
	loginEmail    string
	loginPassword string
	loginSession  string
)

// LoginCmd authenticates against the school ERP server and persists the
// session. Role selection and credential entry are prompted interactively
// unless supplied via flags.
var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the school ERP",
	Long: `Authenticates with the school ERP server.

Interactively this walks the same flow as the mobile client: pick a role,
enter credentials, submit. All inputs can also be passed as flags for
scripted use (--role, --email, --password, --session).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		role := loginRole
		if role == "" {
			if cfg.NonInteractive {
				return errors.New("--role is required in non-interactive mode")
			}
			options := make([]string, 0, len(sdk.Roles()))
			for _, r := range sdk.Roles() {
				options = append(options, string(r))
			}
			selected, err := pterm.DefaultInteractiveSelect.
				WithOptions(options).
				WithDefaultText("Log in as").
				Show()
			if err != nil {
				return errors.Wrap(err, "role selection aborted")
			}
			role = selected
		}

		email := loginEmail
		if email == "" {
			if cfg.NonInteractive {
				return errors.New("--email is required in non-interactive mode")
			}
			value, err := promptEmail()
			if err != nil {
				return err
			}
			email = value
		}

		password := loginPassword
		if password == "" {
			if cfg.NonInteractive {
				return errors.New("--password is required in non-interactive mode")
			}
			value, err := promptPassword()
			if err != nil {
				return err
			}
			password = value
		}

		spinner, _ := pterm.DefaultSpinner.Start("Signing in...")
		result := cfg.Session.Login(cmd.Context(), role, email, password, loginSession)
		if !result.Success {
			spinner.Fail(result.Message)
			return errors.New(result.Message)
		}
		spinner.Success("Login successful")

		grantedRole := cfg.Session.Role()
		pterm.Info.Printf("Logged in as %s (%s)\n", email, grantedRole)
		if _, ok := sdk.ParseRole(grantedRole); !ok {
			pterm.Warning.Printf("Unrecognized role %q; a limited command set will be available.\n", grantedRole)
		}

		registerDevice(cmd.Context(), cfg)
		return nil
	},
}

func promptEmail() (string, error) {
	prompt := promptui.Prompt{
		Label: "Email",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("email is required")
			}
			return nil
		},
	}
	value, err := prompt.Run()
	if err != nil {
		return "", errors.Wrap(err, "email entry aborted")
	}
	return value, nil
}

func promptPassword() (string, error) {
	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '•',
		Validate: func(input string) error {
			if input == "" {
				return errors.New("password is required")
			}
			return nil
		},
	}
	value, err := prompt.Run()
	if err != nil {
		return "", errors.Wrap(err, "password entry aborted")
	}
	return value, nil
}

// registerDevice registers this terminal for push notifications.
// Fire and forget: a failure never blocks or fails the login.
func registerDevice(ctx context.Context, cfg *config.GlobalConfig) {
	client, err := cfg.ClientProvider.SDKClient()
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.RegisterDevice(ctx, cfg.DeviceToken()); err != nil {
		pterm.Debug.Printf("device registration skipped: %v\n", err)
	}
}

func init() {
	LoginCmd.Flags().StringVar(&loginRole, "role", "", "Role to log in as (admin, teacher, student, parent, accountant, receptionist, thirdparty)")
	LoginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	LoginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	LoginCmd.Flags().StringVar(&loginSession, "session", "", "Session label for roles that require one (e.g. academic year)")
}
