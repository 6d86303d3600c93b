package view

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// NoticeTTL is how long a transient notice should stay on screen in UIs
// that can dismiss output. The terminal adapter just prints it.
const NoticeTTL = 5 * time.Second

// Notice is a short transient message for the user.
type Notice struct {
	Level string // "info" or "error"
	Text  string
}

// RenderNotice writes a notice line.
func RenderNotice(w io.Writer, n Notice) error {
	prefix := "✓"
	if n.Level == "error" {
		prefix = "✗"
	}
	if _, err := fmt.Fprintf(w, "%s %s\n", prefix, n.Text); err != nil {
		return fmt.Errorf("writing notice: %w", err)
	}
	return nil
}

// RenderCards writes the listing overview as a table, skipping hidden cards.
func RenderCards(w io.Writer, cards []Card) error {
	visible := 0
	for _, c := range cards {
		if !c.Hidden {
			visible++
		}
	}
	if visible == 0 {
		if _, err := fmt.Fprintln(w, "No listings to show."); err != nil {
			return fmt.Errorf("writing empty message: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tDESCRIPTION"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "--\t-----\t-----\t-----------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, c := range cards {
		if c.Hidden {
			continue
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			c.ID, truncate(c.Title, 30), c.PriceText, truncate(c.Description, 50)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	if _, err := fmt.Fprintf(w, "\nShowing %d of %d listings\n", visible, len(cards)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// RenderDetail writes a single listing's detail view.
func RenderDetail(w io.Writer, d Detail) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", d.Title)
	fmt.Fprintf(&b, "  Price:  %s\n", d.PriceText)
	fmt.Fprintf(&b, "  Image:  %s\n", d.ImageURL)
	fmt.Fprintf(&b, "  About:  %s\n", d.Description)

	fmt.Fprintf(&b, "\nAmenities (%d):\n", len(d.Amenities))
	for _, a := range d.Amenities {
		fmt.Fprintf(&b, "  - %s\n", a)
	}

	fmt.Fprintf(&b, "\nHost: %s\n", d.OwnerName)
	fmt.Fprintf(&b, "  Photo: %s\n", d.OwnerPhoto)

	if len(d.Reviews) == 0 {
		fmt.Fprintf(&b, "\nNo reviews yet.\n")
	} else {
		fmt.Fprintf(&b, "\nReviews (%d):\n", len(d.Reviews))
		for _, r := range d.Reviews {
			fmt.Fprintf(&b, "  %s %s\n    %s\n", formatRating(r.Rating), r.Author, r.Text)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing detail: %w", err)
	}
	return nil
}

// PrintJSON marshals v as indented JSON and writes it to w.
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatRating returns a star representation of a rating (1-5).
func formatRating(rating int) string {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
