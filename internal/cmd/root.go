// Package cmd assembles the dvsctl command tree. Which subcommands exist for
// an invocation is decided by the navigator from the restored session state,
// so an unauthenticated user sees the login flow and an authenticated one
// sees their role's commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/client"
	"github.com/dvsdigi/dvsapp/internal/config"
	"github.com/dvsdigi/dvsapp/internal/navigator"
	"github.com/dvsdigi/dvsapp/internal/session"
	"github.com/dvsdigi/dvsapp/internal/store"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
	"github.com/dvsdigi/dvsapp/pkg/sdk/geo"
)

var (
	serverURL      string
	nonInteractive bool
	bearerToken    string
	verbose        bool

	settings  *config.Settings
	authority *session.Authority
	provider  *client.Provider
)

var rootCmd = &cobra.Command{
	Use:   "dvsctl",
	Short: "School ERP client",
	Long: `dvsctl is the terminal client for the DVS school management system.
Log in with a role (teacher, admin, student, ...) to get that role's
commands: attendance, assignments, exams, students, timetables and marks.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if os.Getenv("DVSAPP_NON_INTERACTIVE") == "1" {
			nonInteractive = true
		}
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
			pterm.EnableDebugMessages()
		}

		if serverURL == "" {
			serverURL = settings.ServerURL
		}
		provider.SetServerURL(serverURL)
		if bearerToken != "" {
			provider.SetBearerToken(bearerToken)
		}

		cfg := &config.GlobalConfig{
			Settings:       settings,
			NonInteractive: nonInteractive,
			Session:        authority,
			ClientProvider: provider,
			Geo:            &geo.Static{Pos: settings.Location},
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
	},
}

// Execute restores the session, mounts the navigation tree for the resulting
// state, and runs the command.
func Execute() {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	var err error
	settings, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	var credStore sdk.CredentialStore
	fileStore, err := store.NewFileStore()
	if err != nil {
		// Storage unavailable is not fatal: the session just will not
		// survive this process.
		log.WithError(err).Warn("session store unavailable, using in-memory session")
		credStore = &store.Memory{}
	} else {
		credStore = fileStore
	}

	provider = client.NewProvider(credStore, log)
	provider.SetOnUnauthorized(func() {
		pterm.Warning.Println("The server rejected your credentials (401). Run `dvsctl login` to sign in again.")
	})
	authority = session.New(credStore, provider.SDKClient, log)

	authority.Bootstrap(context.Background())

	tree := navigator.Resolve(authority.Snapshot())
	rootCmd.AddCommand(tree.Commands()...)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "ERP API server URL (default from config, http://localhost:4000)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via DVSAPP_NON_INTERACTIVE=1)")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "token", "", "Ephemeral bearer token bypassing the stored session (for testing)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
}
