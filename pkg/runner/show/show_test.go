package show

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlog/brew/pkg/recency"
	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/store"
)

type fakeGetter struct {
	rec recipe.Record
	err error
}

func (f *fakeGetter) Get(_ context.Context, cat recipe.Category, id string) (recipe.Record, error) {
	if f.err != nil {
		return recipe.Record{}, f.err
	}
	r := f.rec
	r.ID = id
	r.Category = cat
	return r, nil
}

func TestShowRecordsView(t *testing.T) {
	s := store.NewMemory()
	n := &Show{
		Category: recipe.Hot,
		ID:       "12",
		Client:   &fakeGetter{rec: recipe.Record{Title: "Mocha", Image: "u"}},
		Recents:  recency.RecentlyViewed(s, 3),
	}
	require.NoError(t, n.Do(context.Background()))

	entries, err := recency.RecentlyViewed(s, 3).All()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "12", entries[0].ID)
	assert.Equal(t, "Mocha", entries[0].Title)
}

func TestShowFetchFailureLeavesRecentsUntouched(t *testing.T) {
	s := store.NewMemory()
	n := &Show{
		Category: recipe.Hot,
		ID:       "12",
		Client:   &fakeGetter{err: errors.New("boom")},
		Recents:  recency.RecentlyViewed(s, 3),
	}
	require.Error(t, n.Do(context.Background()))

	entries, err := recency.RecentlyViewed(s, 3).All()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestShowNoClient(t *testing.T) {
	n := &Show{}
	assert.Error(t, n.Do(context.Background()))
}
