package models

import "testing"

func TestNormalizeEventType(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   EventType
		wantOK bool
	}{
		{"already normalized", "TOUCHDOWN", EventTouchdown, true},
		{"lower case", "generic", EventGeneric, true},
		{"mixed case with spaces", "  HalfTime ", EventHalftime, true},
		{"unknown token", "LLAMA_STAMPEDE", "LLAMA_STAMPEDE", false},
		{"empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeEventType(tc.raw)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("NormalizeEventType(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestSelectionFiltersMatches(t *testing.T) {
	ad := &LBarAd{
		ID:          "test-ad",
		Orientation: OrientationTopRight,
		Assets:      Assets{Type: AssetTypeImage},
	}

	if !(SelectionFilters{}).Matches(ad) {
		t.Error("empty filters should match any ad")
	}
	if !(SelectionFilters{Orientation: OrientationTopRight}).Matches(ad) {
		t.Error("matching orientation filter should pass")
	}
	if (SelectionFilters{Orientation: OrientationLeftBottom}).Matches(ad) {
		t.Error("mismatched orientation filter should fail")
	}
	if (SelectionFilters{Orientation: OrientationTopRight, AssetType: AssetTypeVideo}).Matches(ad) {
		t.Error("filters are ANDed; one mismatch should fail")
	}
}
