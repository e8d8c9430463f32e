package api

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/hypermindz/lbarserve/internal/catalog"
	"github.com/hypermindz/lbarserve/internal/config"
	"github.com/hypermindz/lbarserve/internal/identity"
	"github.com/hypermindz/lbarserve/internal/logic/selectors"
	"github.com/hypermindz/lbarserve/internal/observability"
	"github.com/hypermindz/lbarserve/internal/tracking"
)

// ServerVersion is reported by the info endpoint.
const ServerVersion = "1.0.0"

// Server groups dependencies for HTTP handlers.
type Server struct {
	Logger   *zap.Logger
	Catalog  *catalog.Store
	Selector selectors.Selector
	Random   *selectors.RandomSelector
	Resolver *identity.Resolver
	Tracker  *tracking.Store
	Metrics  observability.MetricsRegistry
	Config   config.Config
}

// NewServer constructs a Server. Pass a nil selector to get the default
// contextual selector over the catalog; Tracker may be nil, in which case ad
// events are counted in metrics only.
func NewServer(logger *zap.Logger, cat *catalog.Store, selector selectors.Selector,
	resolver *identity.Resolver, tracker *tracking.Store,
	metrics observability.MetricsRegistry, cfg config.Config) *Server {
	rng := rand.New(rand.NewSource(seedFrom(cfg)))
	if selector == nil {
		selector = selectors.NewContextualSelector(cat, rand.New(rand.NewSource(seedFrom(cfg))), logger)
	}
	return &Server{
		Logger:   logger,
		Catalog:  cat,
		Selector: selector,
		Random:   selectors.NewRandomSelector(cat, rng),
		Resolver: resolver,
		Tracker:  tracker,
		Metrics:  metrics,
		Config:   cfg,
	}
}

func seedFrom(cfg config.Config) int64 {
	if cfg.RandomSeed != 0 {
		return cfg.RandomSeed
	}
	return time.Now().UnixNano()
}
