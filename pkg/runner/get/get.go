// Package get lists recipes from the remote service.
package get

import (
	"context"
	"errors"

	"github.com/brewlog/brew/pkg/printers"
	"github.com/brewlog/brew/pkg/recipe"
)

// Lister is the slice of the API client this runner needs.
type Lister interface {
	List(ctx context.Context, cat recipe.Category) ([]recipe.Record, error)
}

type Get struct {
	Category recipe.Category
	All      bool
	ShowID   bool

	Client Lister
}

func (n *Get) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not get, no client")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	categories := []recipe.Category{n.Category}
	if n.All {
		categories = recipe.Categories()
	}

	for _, cat := range categories {
		records, err := n.Client.List(ctx, cat)
		if err != nil {
			return err
		}
		pp.TitleWithCount(string(cat), len(records))
		pp.Records(records...)
	}
	return nil
}
