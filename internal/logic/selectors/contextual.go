package selectors

import (
	"math/rand"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/hypermindz/lbarserve/internal/catalog"
	"github.com/hypermindz/lbarserve/internal/models"
)

// Score weighting: event context dominates over audience fit 60/40. These are
// fixed design constants, not tunables.
const (
	eventWeight   = 0.6
	segmentWeight = 0.4
	// rankDecay is subtracted from the event sub-score for each position an
	// ad sits below the top of its event ranking list.
	rankDecay = 0.2
)

// scoredCandidate is the per-request working state for one catalog ad. It is
// created and discarded within a single selection call.
type scoredCandidate struct {
	ad              *models.LBarAd
	eventScore      float64
	segmentScore    float64
	totalScore      float64
	matchedSegments []string
}

// ContextualSelector picks the best-matching ad for a live event and a
// household's audience segments using a three-tier strategy: direct event
// mapping, weighted scoring over the filtered pool, then randomized fallback.
//
// The selector is stateless apart from its PRNG; the catalog and affinity
// tables it reads are immutable, so concurrent calls are safe. The PRNG is
// guarded by a mutex because math/rand.Rand is not goroutine safe.
type ContextualSelector struct {
	catalog *catalog.Store
	logger  *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewContextualSelector constructs a ContextualSelector. The rng is used only
// on the fallback path; tests inject a fixed-seed source to make fallback
// picks deterministic. A nil logger disables selection logging.
func NewContextualSelector(store *catalog.Store, rng *rand.Rand, logger *zap.Logger) *ContextualSelector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContextualSelector{catalog: store, logger: logger, rng: rng}
}

// SelectContextualAd implements the selection algorithm. It never returns a
// nil ad: the fallback chain guarantees a result for any non-empty catalog,
// and an empty catalog is rejected at load time.
func (s *ContextualSelector) SelectContextualAd(event models.EventType, householdSegments []string,
	filters models.SelectionFilters) models.SelectionResult {

	segments := dedupeSegments(householdSegments)

	// Tier 1: sponsored direct mapping. Wins even over orientation and asset
	// type constraints; sponsorship guarantees override targeting.
	if ad, ok := s.catalog.DirectMapping(event); ok {
		s.logger.Debug("direct mapping hit",
			zap.String("event_type", string(event)),
			zap.String("ad_id", ad.ID))
		return models.SelectionResult{
			Ad: ad,
			Targeting: models.Targeting{
				Method:           models.MethodDirectMapping,
				Score:            1.0,
				MatchedSegments:  segments,
				EventRelevance:   1.0,
				SegmentRelevance: 0,
			},
		}
	}

	// Tier 2: score the filtered pool.
	pool := s.catalog.Filter(filters)
	if len(pool) > 0 {
		best := s.scorePool(pool, event, segments)
		return models.SelectionResult{
			Ad: best.ad,
			Targeting: models.Targeting{
				Method:           models.MethodContextual,
				Score:            best.totalScore,
				MatchedSegments:  best.matchedSegments,
				EventRelevance:   best.eventScore,
				SegmentRelevance: best.segmentScore,
			},
		}
	}

	// Tier 3: the filters eliminated every ad. Pick uniformly at random,
	// first from the filtered catalog, then from the whole catalog.
	s.mu.Lock()
	ad := s.catalog.Random(filters, s.rng)
	s.mu.Unlock()
	s.logger.Debug("fallback selection",
		zap.String("event_type", string(event)),
		zap.String("ad_id", ad.ID))
	return models.SelectionResult{
		Ad: ad,
		Targeting: models.Targeting{
			Method:          models.MethodFallback,
			MatchedSegments: []string{},
		},
	}
}

// scorePool scores every candidate and returns the highest ranked one. Ties
// keep catalog insertion order: the pool arrives in that order and the sort
// is stable.
func (s *ContextualSelector) scorePool(pool []*models.LBarAd, event models.EventType, segments []string) scoredCandidate {
	ranking := s.catalog.EventRanking(event)

	candidates := make([]scoredCandidate, 0, len(pool))
	for _, ad := range pool {
		c := scoredCandidate{ad: ad, matchedSegments: []string{}}
		c.eventScore = eventScoreFor(ad.ID, ranking)
		c.segmentScore, c.matchedSegments = segmentScoreFor(s.catalog.SegmentWeights(ad.ID), segments)
		c.totalScore = eventWeight*c.eventScore + segmentWeight*c.segmentScore
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].totalScore > candidates[j].totalScore
	})
	return candidates[0]
}

// eventScoreFor returns the rank-decayed event sub-score: position 0 scores
// 1.0, each following position loses 0.2, clamped at 0. An ad absent from the
// ranking scores 0.
func eventScoreFor(adID string, ranking []string) float64 {
	for i, id := range ranking {
		if id == adID {
			score := 1.0 - float64(i)*rankDecay
			if score < 0 {
				return 0
			}
			return score
		}
	}
	return 0
}

// segmentScoreFor averages the affinity weights of the household segments the
// ad has an entry for. Averaging (not summing) keeps the sub-score in [0,1]
// and keeps a single strong match competitive with several weak ones.
func segmentScoreFor(weights map[string]float64, segments []string) (float64, []string) {
	matched := []string{}
	var sum float64
	for _, seg := range segments {
		if w, ok := weights[seg]; ok {
			sum += w
			matched = append(matched, seg)
		}
	}
	if len(matched) == 0 {
		return 0, matched
	}
	return sum / float64(len(matched)), matched
}

// dedupeSegments drops duplicate labels while preserving first-seen order.
// Duplicate segments in the input must not double-count in the average.
func dedupeSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	seen := make(map[string]struct{}, len(segments))
	for _, seg := range segments {
		if _, ok := seen[seg]; ok {
			continue
		}
		seen[seg] = struct{}{}
		out = append(out, seg)
	}
	return out
}
