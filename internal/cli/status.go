package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aluranae/hbnb-cli/internal/client"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection and session status",
		Long:  "Tests the connection to the API server and reports whether a valid session token is stored.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	fmt.Printf("Server:  %s\n", getServerURL())

	sessions, database, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer closeDB(database)

	token, ok := sessions.Token()
	if !ok {
		fmt.Println("Session: none")
	} else if cookie, ok := sessions.Cookie(); ok {
		fmt.Printf("Session: active (expires %s)\n", cookie.Expires.Format("2006-01-02 15:04"))
	}

	c := newAPIClient()
	_, err = c.ListListings(token)
	switch {
	case err == nil && token != "":
		fmt.Println("Status:  ✓ connected and authenticated")
	case err == nil:
		fmt.Println("Status:  ✓ connected (anonymous)")
		fmt.Println("\nRun 'hbnb login' to authenticate.")
	case client.IsKind(err, client.KindAuth):
		fmt.Println("Status:  ✗ session rejected by server")
		fmt.Println("\nRun 'hbnb login' to re-authenticate.")
	default:
		fmt.Printf("Status:  ✗ cannot reach server (%v)\n", err)
	}

	return nil
}
