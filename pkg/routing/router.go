// Package routing maps a recipe category onto its remote resource
// endpoint. The mapping is a pure function of the configured base URL;
// anything outside the closed category set is rejected.
package routing

import (
	"fmt"
	"strings"

	"github.com/brewlog/brew/pkg/recipe"
)

// ErrUnknownCategory reports a category outside the closed set.
var ErrUnknownCategory = fmt.Errorf("unknown category")

// Router resolves categories against one service base URL.
type Router struct {
	base string
}

// New returns a Router for the given base URL, with any trailing slash
// stripped.
func New(base string) Router {
	return Router{base: strings.TrimRight(base, "/")}
}

// Base returns the configured service base URL.
func (r Router) Base() string { return r.base }

// Resolve returns the collection endpoint for a known category.
func (r Router) Resolve(cat recipe.Category) (string, error) {
	if _, err := recipe.ParseCategory(string(cat)); err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	return fmt.Sprintf("%s/%s", r.base, cat), nil
}

// Item returns the endpoint of a single record within a category.
func (r Router) Item(cat recipe.Category, id string) (string, error) {
	base, err := r.Resolve(cat)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", base, id), nil
}
