// Package identity maps signage device identifiers to household profiles for
// targeted ad delivery. This is a mock of a real identity graph: the
// household database and device/IP indexes are fixed in-memory tables, but
// the resolution chain, confidences, and result shape follow the production
// contract.
package identity

import (
	"net"
	"sort"

	"github.com/avct/uasurfer"
	"go.uber.org/zap"

	"github.com/hypermindz/lbarserve/internal/geoip"
	"github.com/hypermindz/lbarserve/internal/models"
)

// Match confidences per resolution strategy.
const (
	deterministicConfidence = 0.95
	probabilisticConfidence = 0.72
	fallbackConfidence      = 0.45
)

// Resolver resolves device identifiers to household profiles. It is
// read-only after construction and safe for concurrent use.
type Resolver struct {
	households map[string]models.HouseholdProfile
	// orderedIDs keeps household ids sorted so the hashed fallback is
	// deterministic across processes regardless of map iteration order.
	orderedIDs  []string
	deviceIndex map[string]string
	ipIndex     map[string]string
	geo         *geoip.GeoIP
	logger      *zap.Logger
}

// New constructs a Resolver over the given household set and indexes. geo may
// be nil, in which case results carry no location data.
func New(households map[string]models.HouseholdProfile, deviceIndex, ipIndex map[string]string,
	geo *geoip.GeoIP, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	ids := make([]string, 0, len(households))
	for id := range households {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &Resolver{
		households:  households,
		orderedIDs:  ids,
		deviceIndex: deviceIndex,
		ipIndex:     ipIndex,
		geo:         geo,
		logger:      logger,
	}
}

// NewMock constructs a Resolver over the built-in demo household database.
func NewMock(geo *geoip.GeoIP, logger *zap.Logger) *Resolver {
	return New(mockHouseholds, mockDeviceIndex, mockIPIndex, geo, logger)
}

// Resolve maps a device id and optional IP to a household. Resolution
// priority: exact device-graph match, IP-based inference, then a hashed
// fallback over the household set so repeat requests from an unknown device
// land on a stable profile. userAgent is optional and only enriches the
// result with device classification.
func (r *Resolver) Resolve(deviceID, ip, userAgent string) models.IdentityResult {
	device := classifyDevice(userAgent)
	geo := r.locate(ip)

	if hhID, ok := r.deviceIndex[deviceID]; ok {
		if profile, ok := r.households[hhID]; ok {
			r.logger.Debug("identity resolved via device graph",
				zap.String("device_id", deviceID),
				zap.String("household_id", hhID))
			return models.IdentityResult{
				Success:     true,
				HouseholdID: hhID,
				Profile:     &profile,
				Resolution: models.ResolutionInfo{
					Method:      models.ResolutionDeterministic,
					Confidence:  deterministicConfidence,
					DataSources: []string{"device-graph"},
				},
				Device: device,
				Geo:    geo,
			}
		}
	}

	if ip != "" {
		if hhID, ok := r.ipIndex[ip]; ok {
			if profile, ok := r.households[hhID]; ok {
				r.logger.Debug("identity resolved via ip intelligence",
					zap.String("device_id", deviceID),
					zap.String("household_id", hhID))
				return models.IdentityResult{
					Success:     true,
					HouseholdID: hhID,
					Profile:     &profile,
					Resolution: models.ResolutionInfo{
						Method:      models.ResolutionProbabilistic,
						Confidence:  probabilisticConfidence,
						DataSources: []string{"ip-intelligence"},
					},
					Device: device,
					Geo:    geo,
				}
			}
		}
	}

	hhID := r.orderedIDs[hashIndex(deviceID, len(r.orderedIDs))]
	profile := r.households[hhID]
	r.logger.Debug("identity resolved via hashed fallback",
		zap.String("device_id", deviceID),
		zap.String("household_id", hhID))
	return models.IdentityResult{
		Success:     true,
		HouseholdID: hhID,
		Profile:     &profile,
		Resolution: models.ResolutionInfo{
			Method:      models.ResolutionFallback,
			Confidence:  fallbackConfidence,
			DataSources: []string{"fallback-inference"},
		},
		Device: device,
		Geo:    geo,
	}
}

// Profile looks up a household profile by id.
func (r *Resolver) Profile(householdID string) (*models.HouseholdProfile, bool) {
	profile, ok := r.households[householdID]
	if !ok {
		return nil, false
	}
	return &profile, true
}

// AvailableSegments returns the sorted union of all segment labels across the
// household database, for server info responses.
func (r *Resolver) AvailableSegments() []string {
	set := make(map[string]struct{})
	for _, hh := range r.households {
		for _, seg := range hh.Segments {
			set[seg] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for seg := range set {
		out = append(out, seg)
	}
	sort.Strings(out)
	return out
}

// locate derives coarse location data from the caller IP.
func (r *Resolver) locate(ip string) models.GeoInfo {
	if r.geo == nil || ip == "" {
		return models.GeoInfo{}
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return models.GeoInfo{}
	}
	return models.GeoInfo{
		Country: r.geo.Country(parsed),
		Region:  r.geo.Region(parsed),
	}
}

// classifyDevice parses the raw User-Agent into the device fields carried on
// the result. Signage players send strings like "Skreens/3.2.1"; uasurfer
// classifies anything it cannot identify as "other".
func classifyDevice(userAgent string) models.DeviceInfo {
	if userAgent == "" {
		return models.DeviceInfo{}
	}
	u := uasurfer.Parse(userAgent)

	var deviceType string
	switch u.DeviceType {
	case uasurfer.DeviceComputer:
		deviceType = "desktop"
	case uasurfer.DevicePhone:
		deviceType = "mobile"
	case uasurfer.DeviceTablet:
		deviceType = "tablet"
	case uasurfer.DeviceTV:
		deviceType = "tv"
	default:
		deviceType = "other"
	}

	return models.DeviceInfo{
		Type:  deviceType,
		OS:    u.OS.Name.String(),
		IsBot: u.IsBot(),
	}
}

// hashIndex folds a device id into [0, n) with a plain 32-bit string hash so
// demo devices keep landing on the same households. The absolute value is taken
// in 64 bits: negating math.MinInt32 in int32 would stay negative.
func hashIndex(s string, n int) int {
	var hash int32
	for _, c := range s {
		hash = (hash << 5) - hash + int32(c)
	}
	v := int64(hash)
	if v < 0 {
		v = -v
	}
	return int(v % int64(n))
}
