package identity

import (
	"sort"
	"testing"
)

func TestResolveDeviceGraphMatch(t *testing.T) {
	r := NewMock(nil, nil)

	res := r.Resolve("skreens-venue-42-screen-1", "", "")
	if !res.Success {
		t.Fatal("expected resolution to succeed")
	}
	if res.HouseholdID != "hh_001" {
		t.Errorf("household = %q, want hh_001", res.HouseholdID)
	}
	if res.Resolution.Method != "deterministic" {
		t.Errorf("method = %q, want deterministic", res.Resolution.Method)
	}
	if res.Resolution.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", res.Resolution.Confidence)
	}
	if len(res.Resolution.DataSources) != 1 || res.Resolution.DataSources[0] != "device-graph" {
		t.Errorf("data sources = %v, want [device-graph]", res.Resolution.DataSources)
	}
	if res.Profile == nil || res.Profile.HouseholdID != "hh_001" {
		t.Errorf("profile not attached: %+v", res.Profile)
	}
}

func TestResolveDeviceBeatsIP(t *testing.T) {
	r := NewMock(nil, nil)

	// Device maps to hh_002, IP maps to hh_003. Device graph wins.
	res := r.Resolve("skreens-gym-sf-lobby", "10.0.0.50", "")
	if res.HouseholdID != "hh_002" {
		t.Errorf("household = %q, want hh_002", res.HouseholdID)
	}
	if res.Resolution.Method != "deterministic" {
		t.Errorf("method = %q, want deterministic", res.Resolution.Method)
	}
}

func TestResolveIPIntelligence(t *testing.T) {
	r := NewMock(nil, nil)

	res := r.Resolve("unknown-device", "172.16.0.25", "")
	if res.HouseholdID != "hh_004" {
		t.Errorf("household = %q, want hh_004", res.HouseholdID)
	}
	if res.Resolution.Method != "probabilistic" {
		t.Errorf("method = %q, want probabilistic", res.Resolution.Method)
	}
	if res.Resolution.Confidence != 0.72 {
		t.Errorf("confidence = %v, want 0.72", res.Resolution.Confidence)
	}
	if len(res.Resolution.DataSources) != 1 || res.Resolution.DataSources[0] != "ip-intelligence" {
		t.Errorf("data sources = %v, want [ip-intelligence]", res.Resolution.DataSources)
	}
}

func TestResolveHashedFallback(t *testing.T) {
	r := NewMock(nil, nil)

	first := r.Resolve("never-seen-before-device", "203.0.113.9", "")
	if !first.Success {
		t.Fatal("fallback resolution must still succeed")
	}
	if first.Resolution.Method != "fallback" {
		t.Errorf("method = %q, want fallback", first.Resolution.Method)
	}
	if first.Resolution.Confidence != 0.45 {
		t.Errorf("confidence = %v, want 0.45", first.Resolution.Confidence)
	}
	if _, ok := r.Profile(first.HouseholdID); !ok {
		t.Errorf("fallback household %q not in database", first.HouseholdID)
	}

	// Same device id lands on the same household every time.
	for i := 0; i < 10; i++ {
		again := r.Resolve("never-seen-before-device", "", "")
		if again.HouseholdID != first.HouseholdID {
			t.Fatalf("fallback not stable: got %q then %q", first.HouseholdID, again.HouseholdID)
		}
	}
}

func TestResolveFallbackSpreadsAcrossHouseholds(t *testing.T) {
	r := NewMock(nil, nil)

	seen := make(map[string]bool)
	for _, id := range []string{"dev-a", "dev-b", "dev-c", "dev-d", "dev-e", "dev-f", "dev-g"} {
		res := r.Resolve(id, "", "")
		seen[res.HouseholdID] = true
	}
	if len(seen) < 2 {
		t.Errorf("hashed fallback assigned every device to the same household: %v", seen)
	}
}

func TestProfileLookup(t *testing.T) {
	r := NewMock(nil, nil)

	profile, ok := r.Profile("hh_003")
	if !ok {
		t.Fatal("hh_003 should exist")
	}
	if profile.ConfidenceScore != 0.85 {
		t.Errorf("confidence score = %v, want 0.85", profile.ConfidenceScore)
	}
	if _, ok := r.Profile("hh_999"); ok {
		t.Error("hh_999 should not exist")
	}
}

func TestAvailableSegmentsSortedUnion(t *testing.T) {
	r := NewMock(nil, nil)

	segments := r.AvailableSegments()
	if len(segments) == 0 {
		t.Fatal("expected segments")
	}
	if !sort.StringsAreSorted(segments) {
		t.Errorf("segments not sorted: %v", segments)
	}
	seen := make(map[string]bool)
	for _, s := range segments {
		if seen[s] {
			t.Errorf("duplicate segment %q", s)
		}
		seen[s] = true
	}
	for _, want := range []string{"sports-bettors", "sports-enthusiasts", "young-professionals"} {
		if !seen[want] {
			t.Errorf("missing segment %q", want)
		}
	}
}

func TestClassifyDevice(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		wantType  string
	}{
		{"empty", "", ""},
		{"desktop chrome", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", "desktop"},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1", "mobile"},
		{"signage player", "Skreens/3.2.1", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyDevice(tt.userAgent)
			if got.Type != tt.wantType {
				t.Errorf("type = %q, want %q", got.Type, tt.wantType)
			}
		})
	}
}

func TestHashIndexInRange(t *testing.T) {
	// "polygenelubricants" hashes to exactly math.MinInt32 under the 31-based
	// recurrence, the one input where an int32 absolute value stays negative.
	for _, s := range []string{"", "a", "skreens-venue-42-screen-1", "some-long-device-identifier-string", "polygenelubricants"} {
		idx := hashIndex(s, 5)
		if idx < 0 || idx >= 5 {
			t.Errorf("hashIndex(%q, 5) = %d, out of range", s, idx)
		}
	}
}

func TestResolveFallbackHandlesMinInt32Hash(t *testing.T) {
	r := NewMock(nil, nil)

	res := r.Resolve("polygenelubricants", "", "")
	if !res.Success {
		t.Fatal("expected resolution to succeed")
	}
	if res.Resolution.Method != "fallback" {
		t.Errorf("method = %q, want fallback", res.Resolution.Method)
	}
	if res.HouseholdID == "" {
		t.Error("expected a household id from the hashed fallback")
	}
}
