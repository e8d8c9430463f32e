package selectors

import (
	"math/rand"
	"sync"

	"github.com/hypermindz/lbarserve/internal/catalog"
	"github.com/hypermindz/lbarserve/internal/models"
)

// RandomSelector serves the legacy non-contextual request path: a uniform
// pick from the catalog, optionally constrained by orientation and asset
// type, with no scoring. Used by callers that have no household data.
type RandomSelector struct {
	catalog *catalog.Store

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSelector constructs a RandomSelector around the given catalog and
// random source.
func NewRandomSelector(store *catalog.Store, rng *rand.Rand) *RandomSelector {
	return &RandomSelector{catalog: store, rng: rng}
}

// Pick returns a uniformly-random ad satisfying the filters, falling back to
// the whole catalog when nothing matches.
func (s *RandomSelector) Pick(filters models.SelectionFilters) *models.LBarAd {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Random(filters, s.rng)
}

// SelectContextualAd satisfies the Selector interface by ignoring the event
// and segments entirely and reporting the pick as a fallback.
func (s *RandomSelector) SelectContextualAd(event models.EventType, householdSegments []string,
	filters models.SelectionFilters) models.SelectionResult {
	return models.SelectionResult{
		Ad: s.Pick(filters),
		Targeting: models.Targeting{
			Method:          models.MethodFallback,
			MatchedSegments: []string{},
		},
	}
}
