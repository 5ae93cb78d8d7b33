// Package submit orchestrates the create-record pipeline: validate the
// draft, upload its image if one is attached, route the endpoint,
// submit, and commit the local caches. Each step runs strictly after
// the previous one; any failure stops the pipeline in a Failed state
// with previously committed local state untouched.
package submit

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brewlog/brew/pkg/api"
	"github.com/brewlog/brew/pkg/recency"
	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/routing"
)

// State names the pipeline's progress. Failed is reachable from any
// non-terminal state.
type State string

const (
	StateDraft         State = "draft"
	StateValidated     State = "validated"
	StateImagePending  State = "image-pending"
	StateImageUploaded State = "image-uploaded"
	StateRouted        State = "routed"
	StateSubmitted     State = "submitted"
	StateCommitted     State = "committed"
	StateFailed        State = "failed"
)

// ValidationError reports bad draft input. It never reaches the
// network: no remote call happens before validation passes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submit: invalid %s: %s", e.Field, e.Reason)
}

// Creator submits one assembled record to the remote service.
type Creator interface {
	Create(ctx context.Context, cat recipe.Category, payload api.CreatePayload) (recipe.Record, error)
}

// Uploader transfers one local image and returns its durable URL.
type Uploader interface {
	Upload(ctx context.Context, localRef string) (string, error)
}

// Result reports where the pipeline stopped and, when committed, the
// finalized record with its server-assigned id.
type Result struct {
	State  State
	Record recipe.Record
}

// Pipeline wires the submission collaborators. Recents and Favorites
// may be nil when the caller keeps no caches.
type Pipeline struct {
	Creator   Creator
	Uploader  Uploader
	Router    routing.Router
	Recents   *recency.List[recipe.CacheEntry]
	Favorites *recency.List[recipe.CacheEntry]
	Logger    *zap.Logger
}

// Submit drives one draft through the pipeline. Committed is reached
// only on a remote acknowledgment carrying a non-empty id; only then
// do the recency and favorites caches mutate.
func (p *Pipeline) Submit(ctx context.Context, draft recipe.Draft) (Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("submission", uuid.NewString()))

	// Draft -> Validated. Nothing leaves the process before this passes.
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return Result{State: StateFailed}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	cat, err := recipe.ParseCategory(string(draft.Category))
	if err != nil {
		return Result{State: StateFailed}, &ValidationError{Field: "type", Reason: err.Error()}
	}
	state := StateValidated
	logState := func() {
		logger.Debug("pipeline state", zap.String("state", string(state)))
	}
	logState()

	payload := api.CreatePayload{
		Title:       title,
		Description: strings.TrimSpace(draft.Description),
		Ingredients: recipe.NormalizeIngredients(draft.Ingredients),
		Category:    cat,
	}

	// Validated -> ImagePending -> ImageUploaded, only when an image is
	// attached. A record is never submitted with a local-only reference.
	if draft.LocalImage != "" {
		state = StateImagePending
		logState()
		link, err := p.Uploader.Upload(ctx, draft.LocalImage)
		if err != nil {
			logger.Warn("image upload failed", zap.Error(err))
			return Result{State: StateFailed}, err
		}
		payload.Image = link
		state = StateImageUploaded
		logState()
	}

	// -> Routed. An unroutable category is fatal.
	endpoint, err := p.Router.Resolve(cat)
	if err != nil {
		return Result{State: StateFailed}, err
	}
	state = StateRouted
	logState()
	logger.Debug("routed submission", zap.String("endpoint", endpoint))

	// Routed -> Submitted. One attempt; retry is the caller's decision.
	created, err := p.Creator.Create(ctx, cat, payload)
	if err != nil {
		logger.Warn("create request failed", zap.Error(err))
		return Result{State: StateFailed}, err
	}
	state = StateSubmitted
	logState()

	// Submitted -> Committed. Identifier presence is the sole success
	// criterion; the transport layer's opinion is not enough.
	if created.ID == "" {
		return Result{State: StateFailed},
			fmt.Errorf("submit: response carried no assigned id")
	}
	created.Tasted = draft.Tasted
	state = StateCommitted
	logState()
	logger.Info("record committed", zap.String("id", created.ID), zap.String("title", created.Title))

	if err := p.commitCaches(created, draft.Favorite); err != nil {
		// The remote record exists; surface the local inconsistency
		// without pretending the submission failed.
		return Result{State: state, Record: created},
			fmt.Errorf("submit: record %s committed but cache update failed: %w", created.ID, err)
	}
	return Result{State: state, Record: created}, nil
}

func (p *Pipeline) commitCaches(created recipe.Record, favorite bool) error {
	entry := recipe.EntryOf(created)
	if p.Recents != nil {
		if err := p.Recents.Record(entry); err != nil {
			return err
		}
	}
	if favorite && p.Favorites != nil {
		if err := p.Favorites.Record(entry); err != nil {
			return err
		}
	}
	return nil
}
