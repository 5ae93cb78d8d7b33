package recent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlog/brew/pkg/recency"
	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/store"
)

func TestRecentClear(t *testing.T) {
	s := store.NewMemory()
	list := recency.RecentlyViewed(s, 3)
	require.NoError(t, list.Record(recipe.CacheEntry{ID: "1", Title: "a"}))

	n := &Recent{Clear: true, Recents: list}
	require.NoError(t, n.Do(context.Background()))

	entries, err := list.All()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecentPrintsWithoutMutating(t *testing.T) {
	s := store.NewMemory()
	list := recency.RecentlyViewed(s, 3)
	require.NoError(t, list.Record(recipe.CacheEntry{ID: "1", Title: "a"}))

	n := &Recent{Recents: list}
	require.NoError(t, n.Do(context.Background()))

	entries, err := list.All()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRecentNoList(t *testing.T) {
	n := &Recent{}
	assert.Error(t, n.Do(context.Background()))
}
