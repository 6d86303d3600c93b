// Package view turns listing data into view models and renders them.
//
// Builders are pure functions from domain data to plain structs; the
// Render* adapters in render.go do the actual output. Display fallbacks
// are applied here, once, so renderers never invent defaults inline.
package view

import (
	"fmt"

	"github.com/Aluranae/hbnb-cli/internal/listing"
)

// Display fallbacks for absent listing fields.
const (
	placeholderImage   = "images/placeholder.jpg"
	fallbackTitle      = "untitled"
	fallbackPrice      = "not provided"
	fallbackText       = "no description"
	fallbackAuthor     = "author"
	fallbackReviewText = "no review"
)

// RenderError reports a renderer contract violation: the caller handed the
// view layer input it promised never to produce. It is a programmer error,
// not something shown to users.
type RenderError struct {
	Reason string
}

func (e *RenderError) Error() string {
	return "render: " + e.Reason
}

// Card is one listing in the overview, ready for display.
type Card struct {
	ID          string
	Title       string
	PriceText   string
	Description string
	ImageURL    string

	// Hidden is toggled by the price filter; renderers skip hidden cards.
	Hidden bool
}

// Detail is a single listing with everything the detail view shows.
type Detail struct {
	Title       string
	PriceText   string
	Description string
	ImageURL    string
	Amenities   []string
	OwnerName   string
	OwnerPhoto  string
	Reviews     []ReviewLine
}

// ReviewLine is one rendered review entry.
type ReviewLine struct {
	Author string
	Text   string
	Rating int
}

// Cards builds the card view models for the listing overview, in input
// order. A nil collection is a contract violation upstream and returns a
// RenderError; an empty one renders as no cards.
func Cards(listings []listing.Listing) ([]Card, error) {
	if listings == nil {
		return nil, &RenderError{Reason: "listing collection is nil"}
	}

	cards := make([]Card, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, Card{
			ID:          l.ID,
			Title:       orElse(l.Title, fallbackTitle),
			PriceText:   priceText(l.Price),
			Description: orElse(l.Description, fallbackText),
			ImageURL:    orElse(l.ImageURL, placeholderImage),
		})
	}
	return cards, nil
}

// DetailFrom builds the detail view model for one listing.
func DetailFrom(l *listing.Listing) Detail {
	d := Detail{
		Title:       orElse(l.Title, fallbackTitle),
		PriceText:   priceText(l.Price),
		Description: orElse(l.Description, fallbackText),
		ImageURL:    orElse(l.ImageURL, placeholderImage),
		Amenities:   []string{},
		OwnerName:   l.Owner.Name(),
		OwnerPhoto:  orElse(l.Owner.ProfilePic, placeholderImage),
	}

	for _, a := range l.Amenities {
		d.Amenities = append(d.Amenities, a.Name)
	}

	for _, r := range l.Reviews {
		d.Reviews = append(d.Reviews, ReviewLine{
			Author: orElse(r.Author, fallbackAuthor),
			Text:   orElse(r.Text, fallbackReviewText),
			Rating: r.Rating,
		})
	}

	return d
}

// priceText formats a nightly price, falling back when absent.
func priceText(price *float64) string {
	if price == nil {
		return fallbackPrice
	}
	return fmt.Sprintf("$%g per night", *price)
}

func orElse(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
