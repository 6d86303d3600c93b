package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aluranae/hbnb-cli/internal/view"
)

func newReviewCmd() *cobra.Command {
	var (
		text   string
		rating string
	)

	cmd := &cobra.Command{
		Use:   "review <id>",
		Short: "Write a review for a listing",
		Long:  "Submits a review for a listing. Requires a stored session token.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(args[0], text, rating)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "review text (required)")
	cmd.Flags().StringVar(&rating, "rating", "", "rating from 1 to 5 (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("text"))
	cobra.CheckErr(cmd.MarkFlagRequired("rating"))

	return cmd
}

func runReview(placeID, text, rating string) error {
	sessions, database, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	token, _ := sessions.Token()
	closeDB(database)

	c := newAPIClient()
	refreshed, err := c.SubmitReview(token, placeID, text, rating)
	if err != nil {
		return surface("submitting review", err)
	}

	notify("Review submitted.")

	if refreshed == nil {
		// The write succeeded but the refresh did not.
		fmt.Printf("Run 'hbnb show %s' to see the updated listing.\n", placeID)
		return nil
	}

	if isJSON() {
		return view.PrintJSON(os.Stdout, refreshed)
	}
	return view.RenderDetail(os.Stdout, view.DetailFrom(refreshed))
}
