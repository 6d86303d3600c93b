package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aluranae/hbnb-cli/internal/view"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show listing details",
		Long:  "Shows full details for a listing: price, description, amenities, host, and reviews.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	sessions, database, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	token, loggedIn := sessions.Token()
	closeDB(database)

	c := newAPIClient()
	l, err := c.GetListing(token, id)
	if err != nil {
		return surface("fetching listing detail", err)
	}

	if isJSON() {
		return view.PrintJSON(os.Stdout, l)
	}

	if err := view.RenderDetail(os.Stdout, view.DetailFrom(l)); err != nil {
		return err
	}

	// The review affordance is only offered to authenticated users.
	if loggedIn {
		fmt.Printf("\nRun 'hbnb review %s --text ... --rating ...' to add a review.\n", id)
	}
	return nil
}
