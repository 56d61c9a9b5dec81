package auth

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

// StatusCmd displays the current session: role, identity and token expiry.
var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		snap := cfg.Session.Snapshot()

		pterm.DefaultSection.Println("Authentication Status")
		if !snap.Authenticated() {
			pterm.Info.Println("Not logged in. Run `dvsctl login` to sign in.")
			return nil
		}

		var profile *sdk.Profile
		if len(snap.User) > 0 {
			profile, _ = sdk.DecodeProfile(snap.User)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ROLE\t%s\n", snap.Role)
		if profile != nil {
			if profile.Name != "" {
				fmt.Fprintf(w, "NAME\t%s\n", profile.Name)
			}
			if profile.Email != "" {
				fmt.Fprintf(w, "EMAIL\t%s\n", profile.Email)
			}
			if profile.ClassTeacher != "" {
				fmt.Fprintf(w, "CLASS\t%s %s\n", profile.ClassTeacher, profile.Section)
			}
		}
		w.Flush()

		creds := &sdk.Credentials{Token: snap.Token}
		if expiresAt, ok := creds.ExpiresAt(); ok {
			if time.Now().After(expiresAt) {
				pterm.Warning.Printf("Token expired at %s; please log in again.\n", expiresAt.Format(time.RFC1123))
			} else {
				pterm.Info.Printf("Token expires at %s\n", expiresAt.Format(time.RFC1123))
			}
		}
		return nil
	},
}
