// Package fav manages the favorites list.
package fav

import (
	"context"
	"errors"

	"github.com/brewlog/brew/pkg/printers"
	"github.com/brewlog/brew/pkg/recency"
	"github.com/brewlog/brew/pkg/recipe"
)

// Getter fetches the record being favorited so the cache entry carries
// its title and image.
type Getter interface {
	Get(ctx context.Context, cat recipe.Category, id string) (recipe.Record, error)
}

type Fav struct {
	// Add favorites the record with this id (Category required).
	Add      string
	Category recipe.Category
	// Remove unfavorites by id.
	Remove string
	Clear  bool
	ShowID bool

	Client    Getter
	Favorites *recency.List[recipe.CacheEntry]
}

func (n *Fav) Do(ctx context.Context) error {
	if n.Favorites == nil {
		return errors.New("can not manage favorites, no list")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	switch {
	case n.Clear:
		if err := n.Favorites.Clear(); err != nil {
			return err
		}
	case n.Remove != "":
		if _, err := n.Favorites.Remove(n.Remove); err != nil {
			return err
		}
	case n.Add != "":
		if n.Client == nil {
			return errors.New("can not favorite, no client")
		}
		rec, err := n.Client.Get(ctx, n.Category, n.Add)
		if err != nil {
			return err
		}
		if err := n.Favorites.Record(recipe.EntryOf(rec)); err != nil {
			return err
		}
	}

	entries, err := n.Favorites.All()
	if err != nil {
		return err
	}
	pp.TitleWithCount("favorites", len(entries))
	pp.Entries(entries...)
	return nil
}
