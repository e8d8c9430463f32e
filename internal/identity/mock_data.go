package identity

import "github.com/hypermindz/lbarserve/internal/models"

// Mock household database. A production deployment queries the identity
// graph and its data providers; the demo ships five representative
// households.
var mockHouseholds = map[string]models.HouseholdProfile{
	"hh_001": {
		HouseholdID: "hh_001",
		Segments:    []string{"sports-enthusiasts", "premium-auto-intenders", "beer-drinkers"},
		Demographics: models.Demographics{
			IncomeBracket:      "100k-150k",
			HouseholdSize:      3,
			PresenceOfChildren: true,
			HomeOwnership:      "owner",
		},
		Interests:        []string{"football", "trucks", "grilling", "home-improvement"},
		SportsAffinities: []string{"NFL", "Dallas Cowboys", "College Football"},
		ConfidenceScore:  0.92,
	},
	"hh_002": {
		HouseholdID: "hh_002",
		Segments:    []string{"health-conscious", "electric-vehicle-intenders", "coffee-lovers"},
		Demographics: models.Demographics{
			IncomeBracket: "150k+",
			HouseholdSize: 2,
			HomeOwnership: "owner",
		},
		Interests:        []string{"basketball", "fitness", "technology", "travel"},
		SportsAffinities: []string{"NBA", "Golden State Warriors"},
		ConfidenceScore:  0.88,
	},
	"hh_003": {
		HouseholdID: "hh_003",
		Segments:    []string{"value-seekers", "fast-food-frequenters", "sports-bettors"},
		Demographics: models.Demographics{
			IncomeBracket:      "50k-75k",
			HouseholdSize:      4,
			PresenceOfChildren: true,
			HomeOwnership:      "renter",
		},
		Interests:        []string{"football", "baseball", "gaming", "movies"},
		SportsAffinities: []string{"NFL", "MLB", "Chicago Bears"},
		ConfidenceScore:  0.85,
	},
	"hh_004": {
		HouseholdID: "hh_004",
		Segments:    []string{"luxury-shoppers", "fine-dining", "wine-enthusiasts"},
		Demographics: models.Demographics{
			IncomeBracket: "200k+",
			HouseholdSize: 2,
			HomeOwnership: "owner",
		},
		Interests:        []string{"golf", "tennis", "luxury-travel", "fine-arts"},
		SportsAffinities: []string{"PGA", "Tennis", "Formula 1"},
		ConfidenceScore:  0.91,
	},
	"hh_005": {
		HouseholdID: "hh_005",
		Segments:    []string{"young-professionals", "streaming-subscribers", "delivery-users"},
		Demographics: models.Demographics{
			IncomeBracket: "75k-100k",
			HouseholdSize: 1,
			HomeOwnership: "renter",
		},
		Interests:        []string{"soccer", "esports", "craft-beer", "startups"},
		SportsAffinities: []string{"MLS", "Premier League", "Esports"},
		ConfidenceScore:  0.78,
	},
}

// Mock device graph: known signage device ids to households.
var mockDeviceIndex = map[string]string{
	"skreens-venue-42-screen-1":   "hh_001",
	"skreens-venue-42-screen-2":   "hh_002",
	"skreens-airport-lax-gate-12": "hh_003",
	"skreens-bar-chicago-main":    "hh_003",
	"skreens-gym-sf-lobby":        "hh_002",
	"skreens-hotel-nyc-bar":       "hh_004",
}

// Mock IP intelligence: venue egress IPs to households.
var mockIPIndex = map[string]string{
	"192.168.1.100": "hh_001",
	"192.168.1.101": "hh_002",
	"10.0.0.50":     "hh_003",
	"172.16.0.25":   "hh_004",
	"192.168.86.1":  "hh_005",
}
