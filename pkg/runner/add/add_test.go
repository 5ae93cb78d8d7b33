package add

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlog/brew/pkg/api"
	"github.com/brewlog/brew/pkg/image"
	"github.com/brewlog/brew/pkg/recency"
	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/routing"
	"github.com/brewlog/brew/pkg/store"
	"github.com/brewlog/brew/pkg/submit"
)

type fakeCreator struct {
	payload api.CreatePayload
}

func (f *fakeCreator) Create(_ context.Context, cat recipe.Category, payload api.CreatePayload) (recipe.Record, error) {
	f.payload = payload
	return recipe.Record{ID: "9", Title: payload.Title, Category: cat, Image: payload.Image}, nil
}

type fakeUploader struct {
	calls int
}

func (f *fakeUploader) Upload(context.Context, string) (string, error) {
	f.calls++
	return "https://img.example/9.jpg", nil
}

type fixedSource struct {
	acq image.Acquisition
}

func (s *fixedSource) Acquire(context.Context) (image.Acquisition, error) {
	return s.acq, nil
}

func newPipeline(creator *fakeCreator, uploader *fakeUploader) *submit.Pipeline {
	return &submit.Pipeline{
		Creator:  creator,
		Uploader: uploader,
		Router:   routing.New("https://sampleapis.assimilate.be/coffee"),
		Recents:  recency.RecentlyViewed(store.NewMemory(), 3),
	}
}

func TestAddWithAcquiredImage(t *testing.T) {
	creator := &fakeCreator{}
	uploader := &fakeUploader{}
	n := &Add{
		Draft:    recipe.Draft{Title: "Mocha", Category: recipe.Hot},
		Source:   &fixedSource{acq: image.Acquisition{Ref: "/tmp/m.jpg", Outcome: image.OutcomeAcquired}},
		Pipeline: newPipeline(creator, uploader),
	}
	require.NoError(t, n.Do(context.Background()))
	assert.Equal(t, 1, uploader.calls)
	assert.Equal(t, "https://img.example/9.jpg", creator.payload.Image)
}

func TestAddDeniedImageSubmitsWithoutOne(t *testing.T) {
	creator := &fakeCreator{}
	uploader := &fakeUploader{}
	n := &Add{
		Draft:    recipe.Draft{Title: "Mocha", Category: recipe.Hot},
		Source:   &fixedSource{acq: image.Acquisition{Outcome: image.OutcomeDenied}},
		Pipeline: newPipeline(creator, uploader),
	}
	require.NoError(t, n.Do(context.Background()))
	assert.Zero(t, uploader.calls)
	assert.Empty(t, creator.payload.Image)
}

func TestAddCancelledImageSubmitsWithoutOne(t *testing.T) {
	creator := &fakeCreator{}
	uploader := &fakeUploader{}
	n := &Add{
		Draft:    recipe.Draft{Title: "Mocha", Category: recipe.Iced},
		Source:   &fixedSource{acq: image.Acquisition{Outcome: image.OutcomeCancelled}},
		Pipeline: newPipeline(creator, uploader),
	}
	require.NoError(t, n.Do(context.Background()))
	assert.Zero(t, uploader.calls)
}

func TestAddNoPipeline(t *testing.T) {
	n := &Add{}
	assert.Error(t, n.Do(context.Background()))
}
