package models

// Demographics holds the inferred household attributes carried on a profile.
// Selection never reads these; they are informational payload for buyers.
type Demographics struct {
	IncomeBracket      string `json:"income_bracket,omitempty"`
	HouseholdSize      int    `json:"household_size,omitempty"`
	PresenceOfChildren bool   `json:"presence_of_children"`
	HomeOwnership      string `json:"home_ownership,omitempty"`
}

// HouseholdProfile is the identity graph's view of a resolved household.
// The selector consumes only the Segments slice.
type HouseholdProfile struct {
	HouseholdID      string       `json:"household_id"`
	Segments         []string     `json:"segments"`
	Demographics     Demographics `json:"demographics"`
	Interests        []string     `json:"interests"`
	SportsAffinities []string     `json:"sports_affinities"`
	ConfidenceScore  float64      `json:"confidence_score"`
}

// Resolution methods, in decreasing order of confidence.
const (
	ResolutionDeterministic = "deterministic"
	ResolutionProbabilistic = "probabilistic"
	ResolutionFallback      = "fallback"
)

// ResolutionInfo explains how a device was matched to a household.
type ResolutionInfo struct {
	Method      string   `json:"method"`
	Confidence  float64  `json:"confidence"`
	DataSources []string `json:"data_sources"`
}

// DeviceInfo is derived from the caller-supplied User-Agent string.
type DeviceInfo struct {
	Type  string `json:"type,omitempty"`
	OS    string `json:"os,omitempty"`
	IsBot bool   `json:"is_bot,omitempty"`
}

// GeoInfo is derived from the caller-supplied IP address.
type GeoInfo struct {
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
}

// IdentityResult is the full resolver output returned to transport callers.
type IdentityResult struct {
	Success     bool              `json:"success"`
	HouseholdID string            `json:"household_id"`
	Profile     *HouseholdProfile `json:"profile"`
	Resolution  ResolutionInfo    `json:"resolution"`
	Device      DeviceInfo        `json:"device,omitempty"`
	Geo         GeoInfo           `json:"geo,omitempty"`
}
