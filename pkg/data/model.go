package data

import (
	"fmt"
	"strconv"
	"strings"
)

// Recipe is the canonical internal representation of a dish, normalized
// from the Forkify API's wire format.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Publisher   string       `json:"publisher"`
	SourceURL   string       `json:"sourceUrl"`
	ImageURL    string       `json:"imageUrl"`
	CookingTime int          `json:"cookingTime"`
	Servings    int          `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
	Bookmarked  bool         `json:"bookmarked,omitempty"`
	UserKey     string       `json:"key,omitempty"`
}

// Ingredient is a single line of a recipe. Quantity is nil for
// quantity-less lines ("salt to taste").
type Ingredient struct {
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
}

// Label renders the ingredient as a single human-readable line.
func (i Ingredient) Label() string {
	parts := make([]string, 0, 3)
	if i.Quantity != nil {
		parts = append(parts, FormatQuantity(*i.Quantity))
	}
	if i.Unit != "" {
		parts = append(parts, i.Unit)
	}
	if i.Description != "" {
		parts = append(parts, i.Description)
	}
	return strings.Join(parts, " ")
}

// FormatQuantity renders a quantity with at most two decimals, trimming
// trailing zeros.
func FormatQuantity(q float64) string {
	s := strconv.FormatFloat(q, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// SearchResult is the reduced recipe projection used in list views. It is
// never promoted to a full Recipe without a dedicated fetch.
type SearchResult struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	ImageURL  string `json:"imageUrl"`
	UserKey   string `json:"key,omitempty"`
}

// Rescale linearly adjusts every ingredient quantity for a new serving
// count, using the current serving count as the divisor. Ingredients
// without a quantity are left untouched.
func (r *Recipe) Rescale(servings int) error {
	if r.Servings == 0 {
		return fmt.Errorf("recipe %q has no serving count to scale from", r.ID)
	}
	for i := range r.Ingredients {
		if q := r.Ingredients[i].Quantity; q != nil {
			scaled := *q * float64(servings) / float64(r.Servings)
			r.Ingredients[i].Quantity = &scaled
		}
	}
	r.Servings = servings
	return nil
}
