// Package recipe defines the domain types shared by the client library:
// the remote Record shape, the cache projection used by the recency and
// favorites lists, and the draft collected before submission.
package recipe

import (
	"fmt"
	"strings"
)

// Category is the closed set of recipe types the remote service routes on.
type Category string

const (
	Hot  Category = "hot"
	Iced Category = "iced"
)

// Categories returns the known categories in a stable order.
func Categories() []Category {
	return []Category{Hot, Iced}
}

// ParseCategory normalizes s into a known Category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case Hot:
		return Hot, nil
	case Iced:
		return Iced, nil
	}
	return "", fmt.Errorf("unknown category %q (want hot or iced)", s)
}

// Record is one recipe as the remote service serves it. ID is assigned
// by the service on creation; drafts have none.
type Record struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Image       string   `json:"image"`
	Category    Category `json:"type"`
	Tasted      bool     `json:"isTasted"`
}

// CacheEntry is the minimal projection of a Record kept in the
// recently-viewed and favorites lists. Identity is ID.
type CacheEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// EntryOf projects a Record into its cache form.
func EntryOf(r Record) CacheEntry {
	return CacheEntry{ID: r.ID, Title: r.Title, Image: r.Image}
}

// Draft is the transient input of one create-record operation. It is
// never persisted; Ingredients holds the raw free text as typed.
type Draft struct {
	Title       string
	Description string
	Ingredients string
	LocalImage  string
	Category    Category
	Tasted      bool
	Favorite    bool
}

// NormalizeIngredients splits free text on commas, trims each element,
// and drops empties. The result is never nil so an empty input encodes
// as a JSON [] rather than null.
func NormalizeIngredients(free string) []string {
	parts := strings.Split(free, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
