package fav

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlog/brew/pkg/recency"
	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/store"
)

type fakeGetter struct {
	calls int
	rec   recipe.Record
	err   error
}

func (f *fakeGetter) Get(_ context.Context, cat recipe.Category, id string) (recipe.Record, error) {
	f.calls++
	if f.err != nil {
		return recipe.Record{}, f.err
	}
	r := f.rec
	r.ID = id
	r.Category = cat
	return r, nil
}

func TestFavAdd(t *testing.T) {
	s := store.NewMemory()
	g := &fakeGetter{rec: recipe.Record{Title: "Mocha"}}

	n := &Fav{
		Add:       "12",
		Category:  recipe.Hot,
		Client:    g,
		Favorites: recency.Favorites(s, 3),
	}
	require.NoError(t, n.Do(context.Background()))
	assert.Equal(t, 1, g.calls)

	favs, err := recency.Favorites(s, 3).All()
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "12", favs[0].ID)
	assert.Equal(t, "Mocha", favs[0].Title)
}

func TestFavRemoveAndClear(t *testing.T) {
	s := store.NewMemory()
	list := recency.Favorites(s, 3)
	require.NoError(t, list.Record(recipe.CacheEntry{ID: "1", Title: "a"}))
	require.NoError(t, list.Record(recipe.CacheEntry{ID: "2", Title: "b"}))

	n := &Fav{Remove: "1", Favorites: list}
	require.NoError(t, n.Do(context.Background()))
	favs, err := list.All()
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "2", favs[0].ID)

	n = &Fav{Clear: true, Favorites: list}
	require.NoError(t, n.Do(context.Background()))
	favs, err = list.All()
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestFavListOnlyDoesNotFetch(t *testing.T) {
	g := &fakeGetter{}
	n := &Fav{Client: g, Favorites: recency.Favorites(store.NewMemory(), 3)}
	require.NoError(t, n.Do(context.Background()))
	assert.Zero(t, g.calls)
}

func TestFavNoList(t *testing.T) {
	n := &Fav{}
	assert.Error(t, n.Do(context.Background()))
}
