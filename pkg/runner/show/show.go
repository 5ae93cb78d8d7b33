// Package show fetches one recipe's detail and registers the view in
// the recently-viewed list.
package show

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/brewlog/brew/pkg/printers"
	"github.com/brewlog/brew/pkg/recency"
	"github.com/brewlog/brew/pkg/recipe"
)

// Getter is the slice of the API client this runner needs.
type Getter interface {
	Get(ctx context.Context, cat recipe.Category, id string) (recipe.Record, error)
}

type Show struct {
	Category recipe.Category
	ID       string
	ShowID   bool

	Client  Getter
	Recents *recency.List[recipe.CacheEntry]
}

func (n *Show) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not show, no client")
	}

	rec, err := n.Client.Get(ctx, n.Category, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Record(rec)

	// A failed cache write should not hide a successfully fetched
	// recipe; report it and move on.
	if n.Recents != nil {
		if err := n.Recents.Record(recipe.EntryOf(rec)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record view: %v\n", err)
		}
	}
	return nil
}
