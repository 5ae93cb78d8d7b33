package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlog/brew/pkg/recipe"
)

func TestResolveKnownCategories(t *testing.T) {
	r := New("https://sampleapis.assimilate.be/coffee/")

	hot, err := r.Resolve(recipe.Hot)
	require.NoError(t, err)
	assert.Equal(t, "https://sampleapis.assimilate.be/coffee/hot", hot)

	iced, err := r.Resolve(recipe.Iced)
	require.NoError(t, err)
	assert.Equal(t, "https://sampleapis.assimilate.be/coffee/iced", iced)
}

func TestResolveUnknownCategory(t *testing.T) {
	r := New("https://sampleapis.assimilate.be/coffee")

	_, err := r.Resolve(recipe.Category("lukewarm"))
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = r.Item(recipe.Category(""), "7")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestItem(t *testing.T) {
	r := New("https://sampleapis.assimilate.be/coffee")
	url, err := r.Item(recipe.Iced, "12")
	require.NoError(t, err)
	assert.Equal(t, "https://sampleapis.assimilate.be/coffee/iced/12", url)
}
