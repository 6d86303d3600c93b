package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session token",
		Long:  "Expires and removes the locally stored session token.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout() error {
	sessions, database, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer closeDB(database)

	if _, ok := sessions.Token(); !ok {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := sessions.Destroy(); err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}
	if err := sessions.Cleanup(); err != nil {
		return fmt.Errorf("cleaning up sessions: %w", err)
	}

	notify("Logged out.")
	return nil
}
