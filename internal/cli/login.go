package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aluranae/hbnb-cli/internal/session"
)

func newLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store a session token",
		Long:  "Authenticates against the API with email and password and stores the session token locally.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (prompted if omitted)")

	return cmd
}

func runLogin(email string) error {
	reader := bufio.NewReader(os.Stdin)

	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	fmt.Print("Password: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	password := strings.TrimSpace(line)
	if password == "" {
		return fmt.Errorf("no password provided")
	}

	c := newAPIClient()
	token, err := c.Login(email, password)
	if err != nil {
		return surface("login failed", err)
	}

	sessions, database, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer closeDB(database)

	if err := sessions.Create(token, session.DefaultTTL); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	if err := sessions.Cleanup(); err != nil {
		return fmt.Errorf("cleaning up sessions: %w", err)
	}

	notify("Logged in.")
	fmt.Println("Run 'hbnb listings' to browse places.")
	return nil
}

// validateEmail checks that the address is plausible before calling the API.
func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("no email provided")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}
