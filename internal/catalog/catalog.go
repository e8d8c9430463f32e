// Package catalog holds the immutable L-Bar ad inventory and the static
// affinity configuration the selector scores against. Everything here is
// loaded once at startup and read-only afterwards, so a single Store may be
// shared by any number of concurrent selection calls without locking.
package catalog

import (
	"fmt"
	"math/rand"

	"github.com/hypermindz/lbarserve/internal/models"
)

// Affinity bundles the static targeting configuration.
type Affinity struct {
	// SegmentWeights maps ad id -> segment label -> weight in [0,1],
	// expressing how well the ad performs for that audience segment.
	SegmentWeights map[string]map[string]float64
	// EventRankings maps an event type to an ordered best-first list of ad
	// ids. The GENERIC entry doubles as the default list for events without
	// their own entry.
	EventRankings map[models.EventType][]string
	// DirectMappings force specific events to one specific ad, bypassing
	// scoring and filters entirely. Sponsorship guarantees live here.
	DirectMappings map[models.EventType]string
}

// Store is the read-only ad catalog plus its affinity tables.
type Store struct {
	ads      []models.LBarAd
	byID     map[string]*models.LBarAd
	affinity Affinity
}

// New validates the catalog and builds the id index. An empty catalog or a
// duplicate ad id is a configuration error; the process must not start with
// either, because the selector's no-empty-result guarantee depends on at
// least one ad existing.
func New(ads []models.LBarAd, affinity Affinity) (*Store, error) {
	if len(ads) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one ad")
	}

	s := &Store{
		ads:      ads,
		byID:     make(map[string]*models.LBarAd, len(ads)),
		affinity: affinity,
	}
	for i := range s.ads {
		ad := &s.ads[i]
		if ad.ID == "" {
			return nil, fmt.Errorf("catalog ad at index %d has no id", i)
		}
		if _, dup := s.byID[ad.ID]; dup {
			return nil, fmt.Errorf("duplicate ad id %q in catalog", ad.ID)
		}
		s.byID[ad.ID] = ad
	}
	return s, nil
}

// Count returns the number of ads in the catalog.
func (s *Store) Count() int { return len(s.ads) }

// All returns every ad in catalog insertion order. Callers must not mutate
// the returned slice elements.
func (s *Store) All() []*models.LBarAd {
	out := make([]*models.LBarAd, len(s.ads))
	for i := range s.ads {
		out[i] = &s.ads[i]
	}
	return out
}

// ByID looks up an ad by its id.
func (s *Store) ByID(id string) (*models.LBarAd, bool) {
	ad, ok := s.byID[id]
	return ad, ok
}

// ByOrientation returns all ads with the given orientation.
func (s *Store) ByOrientation(o models.Orientation) []*models.LBarAd {
	return s.Filter(models.SelectionFilters{Orientation: o})
}

// ByAssetType returns all ads with the given asset type.
func (s *Store) ByAssetType(t models.AssetType) []*models.LBarAd {
	return s.Filter(models.SelectionFilters{AssetType: t})
}

// Filter returns the ads satisfying the given filters, in catalog insertion
// order. Zero-valued filters match everything.
func (s *Store) Filter(f models.SelectionFilters) []*models.LBarAd {
	var out []*models.LBarAd
	for i := range s.ads {
		if f.Matches(&s.ads[i]) {
			out = append(out, &s.ads[i])
		}
	}
	return out
}

// Random picks a uniformly-random ad satisfying the filters, falling back to
// the whole catalog when the filtered pool is empty. It returns nil only for
// an empty catalog, which New rejects.
func (s *Store) Random(f models.SelectionFilters, rng *rand.Rand) *models.LBarAd {
	pool := s.Filter(f)
	if len(pool) == 0 {
		pool = s.All()
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[rng.Intn(len(pool))]
}

// SegmentWeights returns the segment weight map for an ad, or nil when the ad
// has no segment affinities.
func (s *Store) SegmentWeights(adID string) map[string]float64 {
	return s.affinity.SegmentWeights[adID]
}

// EventRanking returns the ordered ad-id list for an event, falling back to
// the GENERIC list when the event has no entry of its own.
func (s *Store) EventRanking(event models.EventType) []string {
	if ids, ok := s.affinity.EventRankings[event]; ok {
		return ids
	}
	return s.affinity.EventRankings[models.EventGeneric]
}

// DirectMapping returns the sponsored ad for an event, when one exists and
// the referenced ad is actually in the catalog.
func (s *Store) DirectMapping(event models.EventType) (*models.LBarAd, bool) {
	id, ok := s.affinity.DirectMappings[event]
	if !ok {
		return nil, false
	}
	ad, ok := s.byID[id]
	return ad, ok
}
