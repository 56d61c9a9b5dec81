package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
)

// LogoutCmd clears the session. The in-memory state goes first, then the
// persisted record; there is no server-side invalidation (tokens are
// stateless) and logout always succeeds from the user's perspective.
var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		cfg.Session.Logout(cmd.Context())
		pterm.Success.Println("Logged out successfully")
		return nil
	},
}
