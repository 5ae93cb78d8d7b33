// Package recent shows the recently-viewed list, optionally following
// mutations as they happen.
package recent

import (
	"context"
	"errors"

	"github.com/brewlog/brew/pkg/printers"
	"github.com/brewlog/brew/pkg/recency"
	"github.com/brewlog/brew/pkg/recipe"
)

type Recent struct {
	Clear  bool
	Follow bool
	ShowID bool

	Recents *recency.List[recipe.CacheEntry]
}

func (n *Recent) Do(ctx context.Context) error {
	if n.Recents == nil {
		return errors.New("can not show recents, no list")
	}

	if n.Clear {
		if err := n.Recents.Clear(); err != nil {
			return err
		}
	}

	if err := n.print(); err != nil {
		return err
	}
	if !n.Follow {
		return nil
	}

	// Re-render on every mutation notification until cancelled; the
	// watch replaces any need to re-poll the store.
	ch, err := n.Recents.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			if err := n.print(); err != nil {
				return err
			}
		}
	}
}

func (n *Recent) print() error {
	entries, err := n.Recents.All()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("recently viewed", len(entries))
	pp.Entries(entries...)
	return nil
}
