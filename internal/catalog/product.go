// Package catalog defines the product model and the pure filter engine
// that derives the visible subset of a catalog from the user's criteria.
package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Product is a single catalog entry as returned by the products API.
// Products are immutable once loaded.
type Product struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Images      ImageList `json:"images"`
	Description string    `json:"description,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Stock       int       `json:"stock,omitempty"`
}

// FormatPrice renders a price with the fewest digits that represent it
// exactly, so 999 renders as "999" and 9.99 as "9.99".
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// ImageURL returns the URL shown on the product card: the first image,
// or the thumbnail when the product carries no images.
func (p Product) ImageURL() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.Thumbnail
}

// ImageList holds product image URLs. It decodes from either a JSON array
// of strings or a single string.
type ImageList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *ImageList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = ImageList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("images: expected string or array of strings: %w", err)
	}
	*l = many
	return nil
}
