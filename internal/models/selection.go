package models

// Targeting methods reported in a selection result.
const (
	MethodDirectMapping = "direct_mapping"
	MethodContextual    = "contextual"
	MethodFallback      = "fallback"
)

// Targeting explains why an ad was chosen. Scores are on a 0.0-1.0 scale.
// EventRelevance and SegmentRelevance are the two sub-scores combined into
// Score with a fixed 0.6/0.4 weighting; for direct mappings Score is pinned
// to 1.0 and for fallbacks to 0.
type Targeting struct {
	Method           string   `json:"method"`
	Score            float64  `json:"score"`
	MatchedSegments  []string `json:"matched_segments"`
	EventRelevance   float64  `json:"event_relevance"`
	SegmentRelevance float64  `json:"segment_relevance"`
}

// SelectionResult pairs a chosen ad with its targeting explanation. Ad is
// never nil as long as the catalog is non-empty; the fallback chain
// guarantees a result.
type SelectionResult struct {
	Ad        *LBarAd   `json:"ad"`
	Targeting Targeting `json:"targeting"`
}
