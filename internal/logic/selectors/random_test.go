package selectors

import (
	"math/rand"
	"testing"

	"github.com/hypermindz/lbarserve/internal/catalog"
	"github.com/hypermindz/lbarserve/internal/models"
)

func TestRandomSelectorPickHonorsFilters(t *testing.T) {
	s := NewRandomSelector(catalog.NewDefault(), rand.New(rand.NewSource(7)))

	for i := 0; i < 25; i++ {
		ad := s.Pick(models.SelectionFilters{Orientation: models.OrientationLeftBottom})
		if ad == nil {
			t.Fatal("Pick returned nil")
		}
		if ad.Orientation != models.OrientationLeftBottom {
			t.Fatalf("pick %q has orientation %q", ad.ID, ad.Orientation)
		}
	}
}

func TestRandomSelectorReportsFallback(t *testing.T) {
	s := NewRandomSelector(catalog.NewDefault(), rand.New(rand.NewSource(7)))

	res := s.SelectContextualAd(models.EventTouchdown, []string{"sports-bettors"}, models.SelectionFilters{})
	if res.Ad == nil {
		t.Fatal("expected an ad")
	}
	if res.Targeting.Method != models.MethodFallback {
		t.Errorf("method = %q, want fallback", res.Targeting.Method)
	}
	if res.Targeting.Score != 0 || len(res.Targeting.MatchedSegments) != 0 {
		t.Errorf("random selection must carry zero score and no matched segments, got %+v", res.Targeting)
	}
}
