package view

import (
	"errors"
	"testing"

	"github.com/Aluranae/hbnb-cli/internal/listing"
)

func price(v float64) *float64 { return &v }

func TestCards(t *testing.T) {
	listings := []listing.Listing{
		{ID: "p-1", Title: "Beach House", Price: price(120), Description: "Nice", ImageURL: "p1.jpg"},
		{ID: "p-2"},
	}

	cards, err := Cards(listings)
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}

	if cards[0].Title != "Beach House" || cards[0].PriceText != "$120 per night" {
		t.Errorf("first card = %+v", cards[0])
	}

	bare := cards[1]
	if bare.Title != "untitled" {
		t.Errorf("title fallback = %q, want untitled", bare.Title)
	}
	if bare.PriceText != "not provided" {
		t.Errorf("price fallback = %q, want not provided", bare.PriceText)
	}
	if bare.Description != "no description" {
		t.Errorf("description fallback = %q", bare.Description)
	}
	if bare.ImageURL != "images/placeholder.jpg" {
		t.Errorf("image fallback = %q", bare.ImageURL)
	}
	if bare.Hidden {
		t.Error("new cards should be visible")
	}
}

func TestCardsNilInput(t *testing.T) {
	_, err := Cards(nil)
	if err == nil {
		t.Fatal("expected error for nil input")
	}

	var renderErr *RenderError
	if !errors.As(err, &renderErr) {
		t.Errorf("err = %T, want *RenderError", err)
	}
}

func TestCardsEmptyInput(t *testing.T) {
	cards, err := Cards([]listing.Listing{})
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("got %d cards, want 0", len(cards))
	}
}

func TestDetailFrom(t *testing.T) {
	l := &listing.Listing{
		Title:       "Villa",
		Price:       price(80.5),
		Description: "Roomy",
		Amenities:   []listing.Amenity{{Name: "WiFi"}, {Name: "Pool"}},
		Owner:       listing.Owner{FirstName: "Ada", ProfilePic: "ada.jpg"},
		Reviews: []listing.Review{
			{Text: "Loved it", Rating: 5, Author: "Bob"},
			{Rating: 2},
		},
	}

	d := DetailFrom(l)

	if d.Title != "Villa" || d.PriceText != "$80.5 per night" {
		t.Errorf("detail = %+v", d)
	}
	if len(d.Amenities) != 2 || d.Amenities[1] != "Pool" {
		t.Errorf("amenities = %v", d.Amenities)
	}
	if d.OwnerName != "Ada" {
		t.Errorf("owner = %q", d.OwnerName)
	}
	if d.OwnerPhoto != "ada.jpg" {
		t.Errorf("owner photo = %q", d.OwnerPhoto)
	}

	if len(d.Reviews) != 2 {
		t.Fatalf("reviews = %d", len(d.Reviews))
	}
	if d.Reviews[0].Author != "Bob" || d.Reviews[0].Text != "Loved it" {
		t.Errorf("first review = %+v", d.Reviews[0])
	}
	if d.Reviews[1].Author != "author" {
		t.Errorf("author fallback = %q", d.Reviews[1].Author)
	}
	if d.Reviews[1].Text != "no review" {
		t.Errorf("text fallback = %q", d.Reviews[1].Text)
	}
}

func TestDetailFromEmptyAmenities(t *testing.T) {
	d := DetailFrom(&listing.Listing{Title: "Bare"})

	if d.Amenities == nil {
		t.Error("amenities should be an empty list, not nil")
	}
	if len(d.Amenities) != 0 {
		t.Errorf("amenities = %v", d.Amenities)
	}
	if d.OwnerName != "" {
		t.Errorf("owner = %q, want empty", d.OwnerName)
	}
	if d.OwnerPhoto != "images/placeholder.jpg" {
		t.Errorf("owner photo = %q", d.OwnerPhoto)
	}
	if len(d.Reviews) != 0 {
		t.Errorf("reviews = %v", d.Reviews)
	}
}
