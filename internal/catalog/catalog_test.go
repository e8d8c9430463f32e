package catalog

import (
	"math/rand"
	"testing"

	"github.com/hypermindz/lbarserve/internal/models"
)

func TestNewRejectsEmptyCatalog(t *testing.T) {
	if _, err := New(nil, Affinity{}); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	ads := []models.LBarAd{
		{ID: "dup", Orientation: models.OrientationTopRight},
		{ID: "dup", Orientation: models.OrientationLeftBottom},
	}
	if _, err := New(ads, Affinity{}); err == nil {
		t.Fatal("expected error for duplicate ad id")
	}
}

func TestNewRejectsMissingID(t *testing.T) {
	ads := []models.LBarAd{{Orientation: models.OrientationTopRight}}
	if _, err := New(ads, Affinity{}); err == nil {
		t.Fatal("expected error for ad without id")
	}
}

func TestDefaultCatalogQueries(t *testing.T) {
	s := NewDefault()

	if s.Count() == 0 {
		t.Fatal("default catalog is empty")
	}
	if len(s.All()) != s.Count() {
		t.Errorf("All returned %d ads, want %d", len(s.All()), s.Count())
	}

	ad, ok := s.ByID("draftkings-sportsbook")
	if !ok {
		t.Fatal("draftkings-sportsbook missing from default catalog")
	}
	if ad.Orientation != models.OrientationTopRight {
		t.Errorf("draftkings-sportsbook orientation = %q, want top-right", ad.Orientation)
	}

	if _, ok := s.ByID("no-such-ad"); ok {
		t.Error("ByID returned ok for unknown id")
	}

	for _, got := range s.ByOrientation(models.OrientationLeftBottom) {
		if got.Orientation != models.OrientationLeftBottom {
			t.Errorf("ByOrientation returned ad %q with orientation %q", got.ID, got.Orientation)
		}
	}

	videos := s.ByAssetType(models.AssetTypeVideo)
	if len(videos) == 0 {
		t.Fatal("default catalog has no video ads")
	}
	for _, got := range videos {
		if got.Assets.Type != models.AssetTypeVideo {
			t.Errorf("ByAssetType returned ad %q with type %q", got.ID, got.Assets.Type)
		}
	}
}

func TestDefaultCatalogCoversAllOrientations(t *testing.T) {
	s := NewDefault()
	for _, o := range []models.Orientation{
		models.OrientationTopRight,
		models.OrientationLeftBottom,
		models.OrientationTopLeft,
		models.OrientationRightBottom,
	} {
		if len(s.ByOrientation(o)) == 0 {
			t.Errorf("no default ad with orientation %q", o)
		}
	}
}

func TestRandomRespectsFiltersAndFallsBack(t *testing.T) {
	s := NewDefault()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		ad := s.Random(models.SelectionFilters{Orientation: models.OrientationTopRight}, rng)
		if ad == nil {
			t.Fatal("Random returned nil for non-empty pool")
		}
		if ad.Orientation != models.OrientationTopRight {
			t.Fatalf("Random returned %q with orientation %q", ad.ID, ad.Orientation)
		}
	}

	// A filter combination matching nothing falls back to the whole catalog.
	ad := s.Random(models.SelectionFilters{
		Orientation: models.OrientationRightBottom,
		AssetType:   models.AssetTypeImage,
	}, rng)
	if ad == nil {
		t.Fatal("Random must fall back to the unfiltered catalog")
	}
}

func TestRandomIsDeterministicForFixedSeed(t *testing.T) {
	s := NewDefault()
	a := s.Random(models.SelectionFilters{}, rand.New(rand.NewSource(42)))
	b := s.Random(models.SelectionFilters{}, rand.New(rand.NewSource(42)))
	if a.ID != b.ID {
		t.Errorf("same seed produced different picks: %q vs %q", a.ID, b.ID)
	}
}

func TestEventRankingFallsBackToGeneric(t *testing.T) {
	s := NewDefault()

	generic := s.EventRanking(models.EventGeneric)
	want := []string{"ubereats-delivery", "draftkings-sportsbook", "dazn-boxing", "daznbet-livebetting"}
	if len(generic) != len(want) {
		t.Fatalf("GENERIC ranking = %v, want %v", generic, want)
	}
	for i := range want {
		if generic[i] != want[i] {
			t.Fatalf("GENERIC ranking = %v, want %v", generic, want)
		}
	}

	// PENALTY_KICK has no entry of its own and must use the GENERIC list.
	pk := s.EventRanking(models.EventPenaltyKick)
	for i := range want {
		if pk[i] != want[i] {
			t.Fatalf("unmapped event ranking = %v, want GENERIC list %v", pk, want)
		}
	}
}

func TestDirectMapping(t *testing.T) {
	s := NewDefault()

	ad, ok := s.DirectMapping(models.EventTouchdown)
	if !ok || ad.ID != "draftkings-sportsbook" {
		t.Fatalf("TOUCHDOWN direct mapping = %v, %v; want draftkings-sportsbook", ad, ok)
	}
	if _, ok := s.DirectMapping(models.EventStrikeout); ok {
		t.Error("STRIKEOUT should have no direct mapping")
	}
}

func TestDirectMappingIgnoresUnknownAdID(t *testing.T) {
	ads := []models.LBarAd{{ID: "only-ad", Orientation: models.OrientationTopRight}}
	aff := Affinity{DirectMappings: map[models.EventType]string{models.EventTouchdown: "ghost-ad"}}
	s, err := New(ads, aff)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.DirectMapping(models.EventTouchdown); ok {
		t.Error("direct mapping to an ad missing from the catalog must report no match")
	}
}

func TestAffinityReferencesResolveToCatalogAds(t *testing.T) {
	s := NewDefault()
	for event, ids := range defaultAffinity.EventRankings {
		for _, id := range ids {
			if _, ok := s.ByID(id); !ok {
				t.Errorf("event %s ranking references unknown ad %q", event, id)
			}
		}
	}
	for id := range defaultAffinity.SegmentWeights {
		if _, ok := s.ByID(id); !ok {
			t.Errorf("segment weights reference unknown ad %q", id)
		}
	}
	for event, id := range defaultAffinity.DirectMappings {
		if _, ok := s.ByID(id); !ok {
			t.Errorf("direct mapping for %s references unknown ad %q", event, id)
		}
	}
}
