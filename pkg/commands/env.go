package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/brewlog/brew/pkg/api"
	"github.com/brewlog/brew/pkg/httpclient"
	"github.com/brewlog/brew/pkg/recency"
	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/routing"
	"github.com/brewlog/brew/pkg/store"
)

// env assembles the collaborators every command draws from: config,
// the persisted store, the router, and the API client.
type env struct {
	cfg         store.Config
	persistence store.Interface
	router      routing.Router
	client      *api.Client
	logger      *zap.Logger
}

func newEnv() (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	persistence, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("building logger: %w", err)
		}
	}

	router := routing.New(cfg.APIBase())
	client := api.NewClient(router, httpclient.New(nil), logger)

	return &env{
		cfg:         cfg,
		persistence: persistence,
		router:      router,
		client:      client,
		logger:      logger,
	}, nil
}

func (e *env) recents() *recency.List[recipe.CacheEntry] {
	return recency.RecentlyViewed(e.persistence, e.cfg.Capacity())
}

func (e *env) favorites() *recency.List[recipe.CacheEntry] {
	return recency.Favorites(e.persistence, e.cfg.Capacity())
}
