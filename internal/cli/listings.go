package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aluranae/hbnb-cli/internal/view"
)

func newListingsCmd() *cobra.Command {
	var maxPrice string

	cmd := &cobra.Command{
		Use:   "listings",
		Short: "List rental listings",
		Long:  "Fetches all listings from the API. Works without logging in; a stored session token is attached when present.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListings(maxPrice)
		},
	}

	cmd.Flags().StringVar(&maxPrice, "max-price", view.FilterAll,
		fmt.Sprintf("price ceiling (%s)", strings.Join(view.FilterOptions(), "|")))

	return cmd
}

func runListings(maxPrice string) error {
	sessions, database, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	token, _ := sessions.Token() // anonymous browsing is allowed
	closeDB(database)

	c := newAPIClient()
	listings, err := c.ListListings(token)
	if err != nil {
		return surface("fetching listings", err)
	}

	if isJSON() {
		return view.PrintJSON(os.Stdout, listings)
	}

	cards, err := view.Cards(listings)
	if err != nil {
		return err
	}
	if err := view.ApplyPriceFilter(cards, maxPrice); err != nil {
		return err
	}

	return view.RenderCards(os.Stdout, cards)
}
