package main

import (
	"context"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/hypermindz/lbarserve/internal/catalog"
	"github.com/hypermindz/lbarserve/internal/identity"
	"github.com/hypermindz/lbarserve/internal/logic/selectors"
)

func newTestLBarServer() *LBarServer {
	cat := catalog.NewDefault()
	rng := rand.New(rand.NewSource(1))
	return &LBarServer{
		catalog:  cat,
		selector: selectors.NewContextualSelector(cat, rng, zap.NewNop()),
		resolver: identity.NewMock(nil, nil),
		logger:   zap.NewNop(),
	}
}

func TestResolveIdentityTool(t *testing.T) {
	s := newTestLBarServer()

	_, res, err := s.ResolveIdentity(context.Background(), nil, ResolveIdentityInput{
		DeviceID: "skreens-venue-42-screen-1",
	})
	if err != nil {
		t.Fatalf("ResolveIdentity: %v", err)
	}
	if res.HouseholdID != "hh_001" {
		t.Errorf("household_id = %q, want hh_001", res.HouseholdID)
	}

	if _, _, err := s.ResolveIdentity(context.Background(), nil, ResolveIdentityInput{}); err == nil {
		t.Error("expected error for missing device_id")
	}
}

func TestGetContextualAdTool(t *testing.T) {
	s := newTestLBarServer()

	_, out, err := s.GetContextualAd(context.Background(), nil, GetContextualAdInput{
		EventType:   "TOUCHDOWN",
		HouseholdID: "hh_001",
	})
	if err != nil {
		t.Fatalf("GetContextualAd: %v", err)
	}
	if !out.Success || out.Ad == nil {
		t.Fatalf("expected an ad, got %+v", out)
	}
	if out.Ad.ID != "draftkings-sportsbook" {
		t.Errorf("ad id = %q, want draftkings-sportsbook", out.Ad.ID)
	}

	if _, _, err := s.GetContextualAd(context.Background(), nil, GetContextualAdInput{
		EventType: "NOT_AN_EVENT",
	}); err == nil {
		t.Error("expected error for unknown event type")
	}
}

func TestListLBarAdsTool(t *testing.T) {
	s := newTestLBarServer()

	_, out, err := s.ListLBarAds(context.Background(), nil, ListLBarAdsInput{})
	if err != nil {
		t.Fatalf("ListLBarAds: %v", err)
	}
	if out.Count != s.catalog.Count() {
		t.Errorf("count = %d, want %d", out.Count, s.catalog.Count())
	}
	if len(out.Ads) != out.Count {
		t.Errorf("ads length = %d, want %d", len(out.Ads), out.Count)
	}
}
