// Package cli defines the cobra command tree for the hbnb client.
package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aluranae/hbnb-cli/internal/client"
	"github.com/Aluranae/hbnb-cli/internal/db"
	"github.com/Aluranae/hbnb-cli/internal/logging"
	"github.com/Aluranae/hbnb-cli/internal/session"
	"github.com/Aluranae/hbnb-cli/internal/view"
)

var (
	flagFormat string
	flagDebug  bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hbnb",
		Short:         "Browse and review HBnB rental listings",
		Long:          "A client for an HBnB rental API. Log in, browse listings, filter by price, and write reviews.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(flagDebug)
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newListingsCmd(),
		newShowCmd(),
		newReviewCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an HTTP client for the configured API server.
func newAPIClient() *client.Client {
	return client.New(getServerURL())
}

// openSessionStore opens the session store scoped to the configured API
// host. The caller must close the returned database.
func openSessionStore() (*session.Store, *sql.DB, error) {
	path, err := getSessionDBPath()
	if err != nil {
		return nil, nil, err
	}

	database, err := db.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return session.NewStore(database, serverHost()), database, nil
}

// serverHost extracts the host (host:port) from the configured server URL.
func serverHost() string {
	u, err := url.Parse(getServerURL())
	if err != nil || u.Host == "" {
		return "localhost"
	}
	return u.Host
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		slog.Warn("closing session database", "error", err)
	}
}

// surface logs the full failure for diagnostics and returns the short
// human-readable message that the entry point prints as the notice.
func surface(action string, err error) error {
	slog.Error(action, "error", err)

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return errors.New(client.UserMessage(err))
	}
	return err
}

// notify prints a transient success notice.
func notify(text string) {
	if err := view.RenderNotice(os.Stdout, view.Notice{Level: "info", Text: text}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}
