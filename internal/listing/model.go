// Package listing provides the typed domain model for rental listings.
//
// The API grew across server releases, so several fields arrive under more
// than one wire name (title/name, image_url/picture). Aliases are resolved
// once here, at decode time; nothing downstream re-reads the raw JSON.
package listing

import (
	"encoding/json"
	"strings"
)

// Listing is a rentable property record. The remote API is the source of
// truth; this client treats listings as read-only and re-fetches per view.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       *float64  `json:"price,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Amenities   []Amenity `json:"amenities,omitempty"`
	Owner       Owner     `json:"owner"`
	Reviews     []Review  `json:"reviews,omitempty"`
}

// Amenity is a named feature of a listing.
type Amenity struct {
	Name string `json:"name"`
}

// Owner identifies the user who listed the property.
type Owner struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

// Name returns the owner's display name, tolerating missing parts.
func (o Owner) Name() string {
	return strings.TrimSpace(strings.TrimSpace(o.FirstName) + " " + strings.TrimSpace(o.LastName))
}

// Review is a user review attached to a listing.
type Review struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	Author string `json:"author,omitempty"`
}

// wireID accepts both string and numeric listing identifiers.
type wireID string

func (id *wireID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = wireID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = wireID(n.String())
	return nil
}

type wireListing struct {
	ID          wireID       `json:"id"`
	Title       string       `json:"title"`
	Name        string       `json:"name"`
	Price       *float64     `json:"price"`
	Description string       `json:"description"`
	ImageURL    string       `json:"image_url"`
	Picture     string       `json:"picture"`
	Amenities   []Amenity    `json:"amenities"`
	Owner       Owner        `json:"owner"`
	Reviews     []wireReview `json:"reviews"`
}

type wireReview struct {
	Text     string `json:"text"`
	Comment  string `json:"comment"`
	Rating   int    `json:"rating"`
	UserName string `json:"user_name"`
	User     *struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	} `json:"user"`
}

// UnmarshalJSON decodes a listing from its wire form, resolving field
// aliases from older server releases.
func (l *Listing) UnmarshalJSON(data []byte) error {
	var w wireListing
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	l.ID = string(w.ID)
	l.Title = w.Title
	if l.Title == "" {
		l.Title = w.Name
	}
	l.Price = w.Price
	l.Description = w.Description
	l.ImageURL = w.ImageURL
	if l.ImageURL == "" {
		l.ImageURL = w.Picture
	}
	l.Amenities = w.Amenities
	l.Owner = w.Owner

	l.Reviews = nil
	for _, r := range w.Reviews {
		l.Reviews = append(l.Reviews, r.resolve())
	}

	return nil
}

func (r wireReview) resolve() Review {
	text := r.Text
	if text == "" {
		text = r.Comment
	}

	author := r.UserName
	if r.User != nil {
		name := Owner{FirstName: r.User.FirstName, LastName: r.User.LastName}.Name()
		if name != "" {
			author = name
		}
	}

	return Review{Text: text, Rating: r.Rating, Author: author}
}
