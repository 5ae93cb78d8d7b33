// Package share exports a tasting summary as a plain text file.
package share

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brewlog/brew/pkg/printers"
	"github.com/brewlog/brew/pkg/recipe"
)

// Lister is the slice of the API client this runner needs.
type Lister interface {
	List(ctx context.Context, cat recipe.Category) ([]recipe.Record, error)
}

type Share struct {
	// Out is the destination file; empty means a file in the OS temp
	// directory.
	Out string

	Client Lister
}

func (n *Share) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not share, no client")
	}

	total, tasted := 0, 0
	for _, cat := range recipe.Categories() {
		records, err := n.Client.List(ctx, cat)
		if err != nil {
			return err
		}
		total += len(records)
		for _, r := range records {
			if r.Tasted {
				tasted++
			}
		}
	}

	out := n.Out
	if out == "" {
		out = filepath.Join(os.TempDir(), "coffee.txt")
	}
	summary := fmt.Sprintf("%d coffees tasted: %d", total, tasted)
	if err := os.WriteFile(out, []byte(summary), 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	pp := printers.PrettyPrint{}
	pp.Title(summary)
	fmt.Printf("written to %s\n", out)
	return nil
}
