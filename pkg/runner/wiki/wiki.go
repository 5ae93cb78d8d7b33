// Package wiki resolves a recipe title to its external reference
// document and optionally opens it.
package wiki

import (
	"context"
	"errors"

	"github.com/pkg/browser"

	"github.com/brewlog/brew/pkg/printers"
	"github.com/brewlog/brew/pkg/resolve"
)

type Wiki struct {
	Title string
	// Open hands the resolved URL to the system browser. Opening is
	// fire-and-forget: no confirmation comes back, so resolution for
	// this path only requires that a URL could be constructed.
	Open bool

	Resolver *resolve.Resolver
}

func (n *Wiki) Do(ctx context.Context) error {
	if n.Resolver == nil {
		return errors.New("can not resolve, no resolver")
	}

	url, err := n.Resolver.Resolve(ctx, n.Title, resolve.ReferenceChain())
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Link(url)

	if n.Open {
		return browser.OpenURL(url)
	}
	return nil
}
