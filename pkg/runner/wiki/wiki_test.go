package wiki

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlog/brew/pkg/resolve"
)

func TestWikiResolvesWithoutOpening(t *testing.T) {
	n := &Wiki{
		Title:    "Flat White",
		Resolver: resolve.New(resolve.NopProbe(), nil),
	}
	require.NoError(t, n.Do(context.Background()))
}

func TestWikiSurfacesExhaustion(t *testing.T) {
	probe := func(context.Context, string) error { return errors.New("unreachable") }
	n := &Wiki{
		Title:    "Flat White",
		Resolver: resolve.New(probe, nil),
	}
	err := n.Do(context.Background())
	assert.ErrorIs(t, err, resolve.ErrExhausted)
}

func TestWikiNoResolver(t *testing.T) {
	n := &Wiki{}
	assert.Error(t, n.Do(context.Background()))
}
