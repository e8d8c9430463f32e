package catalog

import "github.com/hypermindz/lbarserve/internal/models"

// defaultAds is the built-in demo inventory. Order matters: the selector
// breaks score ties by catalog insertion order, and tests depend on it.
var defaultAds = []models.LBarAd{
	{
		ID:          "ubereats-delivery",
		Advertiser:  "Uber Eats",
		Campaign:    "Get Almost Anything",
		Orientation: models.OrientationTopRight,
		Dimensions:  models.Dimensions{TopBarHeight: 80, RightBarWidth: 320},
		DurationMS:  15000,
		Assets: models.Assets{
			Type:            models.AssetTypeImage,
			ImageURL:        "/ads/ubereats-lbar.png",
			Headline:        "GET ALMOST ANYTHING. DELIVERED.",
			CTA:             "ORDER NOW",
			LogoURL:         "/ads/ubereats-logo.png",
			BackgroundColor: "#FFFFFF",
			TextColor:       "#000000",
			AccentColor:     "#06C167",
			QRCodeURL:       "/ads/qr-ubereats.png",
			QRDestination:   "https://ubereats.com/game-day",
		},
		ContentArea: models.ContentArea{Position: "bottom-left", WidthPercent: 83.3, HeightPercent: 92.6},
		Tracking: models.TrackingURLs{
			ImpressionURL: "/api/track/impression?ad=ubereats-delivery",
			ClickURL:      "/api/track/click?ad=ubereats-delivery",
		},
	},
	{
		ID:          "draftkings-sportsbook",
		Advertiser:  "DraftKings",
		Campaign:    "Sportsbook Live Odds",
		Orientation: models.OrientationTopRight,
		Dimensions:  models.Dimensions{TopBarHeight: 80, RightBarWidth: 300},
		DurationMS:  10000,
		Assets: models.Assets{
			Type:            models.AssetTypeImage,
			ImageURL:        "/ads/draftkings-lbar.png",
			Headline:        "LIVE ODDS NOW!",
			Subheadline:     "Bet the next play",
			CTA:             "GET $200 BONUS",
			LogoURL:         "/ads/draftkings-logo.png",
			BackgroundColor: "#0D0D0D",
			TextColor:       "#FFFFFF",
			AccentColor:     "#53D337",
			QRCodeURL:       "/ads/qr-draftkings.png",
			QRDestination:   "https://draftkings.com/promo",
		},
		ContentArea: models.ContentArea{Position: "bottom-left", WidthPercent: 84.4, HeightPercent: 92.6},
		Tracking: models.TrackingURLs{
			ImpressionURL: "/api/track/impression?ad=draftkings-sportsbook",
			ClickURL:      "/api/track/click?ad=draftkings-sportsbook",
		},
	},
	{
		ID:          "dazn-boxing",
		Advertiser:  "DAZN",
		Campaign:    "Fight Night",
		Orientation: models.OrientationRightBottom,
		Dimensions:  models.Dimensions{RightBarWidth: 300, BottomBarHeight: 90},
		DurationMS:  20000,
		Assets: models.Assets{
			Type:            models.AssetTypeVideo,
			VideoURL:        "/ads/dazn-boxing.mp4",
			PosterURL:       "/ads/dazn-boxing-poster.jpg",
			Headline:        "FIGHT NIGHT LIVE",
			Subheadline:     "Every punch. Every round.",
			CTA:             "WATCH NOW",
			LogoURL:         "/ads/dazn-logo.png",
			BackgroundColor: "#0B0B0F",
			TextColor:       "#FFFFFF",
			AccentColor:     "#F8FF01",
			QRCodeURL:       "/ads/qr-dazn.png",
			QRDestination:   "https://dazn.com/boxing",
		},
		ContentArea: models.ContentArea{Position: "top-left", WidthPercent: 84.4, HeightPercent: 91.7},
		Tracking: models.TrackingURLs{
			ImpressionURL: "/api/track/impression?ad=dazn-boxing",
			ClickURL:      "/api/track/click?ad=dazn-boxing",
		},
	},
	{
		ID:          "daznbet-livebetting",
		Advertiser:  "DAZN Bet",
		Campaign:    "In-Play Betting",
		Orientation: models.OrientationLeftBottom,
		Dimensions:  models.Dimensions{LeftBarWidth: 300, BottomBarHeight: 80},
		DurationMS:  12000,
		Assets: models.Assets{
			Type:            models.AssetTypeImage,
			ImageURL:        "/ads/daznbet-lbar.png",
			Headline:        "BET IN-PLAY",
			Subheadline:     "Odds shift with every play",
			CTA:             "BET NOW",
			LogoURL:         "/ads/daznbet-logo.png",
			BackgroundColor: "#101820",
			TextColor:       "#FFFFFF",
			AccentColor:     "#00C2A8",
			QRCodeURL:       "/ads/qr-daznbet.png",
			QRDestination:   "https://daznbet.com/live",
		},
		ContentArea: models.ContentArea{Position: "top-right", WidthPercent: 84.4, HeightPercent: 92.6},
		Tracking: models.TrackingURLs{
			ImpressionURL: "/api/track/impression?ad=daznbet-livebetting",
			ClickURL:      "/api/track/click?ad=daznbet-livebetting",
		},
	},
	{
		ID:          "ford-f150-touchdown",
		Advertiser:  "Ford Motor Company",
		Campaign:    "F-150 Game Day",
		Orientation: models.OrientationTopRight,
		Dimensions:  models.Dimensions{TopBarHeight: 80, RightBarWidth: 300},
		DurationMS:  15000,
		Assets: models.Assets{
			Type:            models.AssetTypeImage,
			ImageURL:        "/ads/ford-f150-lbar.png",
			Headline:        "TOUCHDOWN DEAL!",
			Subheadline:     "$5,000 off F-150",
			CTA:             "SCAN FOR OFFER",
			LogoURL:         "/ads/ford-logo.png",
			BackgroundColor: "#00274D",
			TextColor:       "#FFFFFF",
			AccentColor:     "#F5B400",
			QRCodeURL:       "/ads/qr-ford.png",
			QRDestination:   "https://ford.com/f150-promo",
		},
		ContentArea: models.ContentArea{Position: "bottom-left", WidthPercent: 84.4, HeightPercent: 92.6},
		Tracking: models.TrackingURLs{
			ImpressionURL: "/api/track/impression?ad=ford-f150-touchdown",
			ClickURL:      "/api/track/click?ad=ford-f150-touchdown",
		},
	},
	{
		ID:          "budweiser-celebration",
		Advertiser:  "Anheuser-Busch",
		Campaign:    "Budweiser Big Moments",
		Orientation: models.OrientationLeftBottom,
		Dimensions:  models.Dimensions{LeftBarWidth: 300, BottomBarHeight: 80},
		DurationMS:  12000,
		Assets: models.Assets{
			Type:            models.AssetTypeImage,
			ImageURL:        "/ads/budweiser-lbar.png",
			Headline:        "THIS BUD'S FOR YOU",
			Subheadline:     "Celebrate the moment",
			CTA:             "FIND NEAR YOU",
			LogoURL:         "/ads/budweiser-logo.png",
			BackgroundColor: "#8B0000",
			TextColor:       "#FFFFFF",
			AccentColor:     "#FFD700",
			QRCodeURL:       "/ads/qr-budweiser.png",
			QRDestination:   "https://budweiser.com/find",
		},
		ContentArea: models.ContentArea{Position: "top-right", WidthPercent: 84.4, HeightPercent: 92.6},
		Tracking: models.TrackingURLs{
			ImpressionURL: "/api/track/impression?ad=budweiser-celebration",
			ClickURL:      "/api/track/click?ad=budweiser-celebration",
		},
	},
	{
		ID:          "toyota-halftime",
		Advertiser:  "Toyota",
		Campaign:    "Tundra Halftime",
		Orientation: models.OrientationLeftBottom,
		Dimensions:  models.Dimensions{LeftBarWidth: 300, BottomBarHeight: 80},
		DurationMS:  20000,
		Assets: models.Assets{
			Type:            models.AssetTypeVideo,
			VideoURL:        "/ads/toyota-tundra.mp4",
			PosterURL:       "/ads/toyota-tundra-poster.jpg",
			Headline:        "HALFTIME DEAL",
			Subheadline:     "0% APR on 2025 Tundra",
			CTA:             "BUILD YOURS",
			LogoURL:         "/ads/toyota-logo.png",
			BackgroundColor: "#EB0A1E",
			TextColor:       "#FFFFFF",
			AccentColor:     "#FFFFFF",
			QRCodeURL:       "/ads/qr-toyota.png",
			QRDestination:   "https://toyota.com/tundra",
		},
		ContentArea: models.ContentArea{Position: "top-right", WidthPercent: 84.4, HeightPercent: 92.6},
		Tracking: models.TrackingURLs{
			ImpressionURL: "/api/track/impression?ad=toyota-halftime",
			ClickURL:      "/api/track/click?ad=toyota-halftime",
		},
	},
	{
		ID:          "pepsi-zero-refresh",
		Advertiser:  "PepsiCo",
		Campaign:    "Pepsi Zero Sugar",
		Orientation: models.OrientationTopLeft,
		Dimensions:  models.Dimensions{TopBarHeight: 80, LeftBarWidth: 300},
		DurationMS:  15000,
		Assets: models.Assets{
			Type:            models.AssetTypeImage,
			ImageURL:        "/ads/pepsi-lbar.png",
			Headline:        "ZERO SUGAR. MAX TASTE.",
			Subheadline:     "The official drink of game day",
			CTA:             "FIND YOURS",
			LogoURL:         "/ads/pepsi-logo.png",
			BackgroundColor: "#004B93",
			TextColor:       "#FFFFFF",
			AccentColor:     "#E32934",
			QRCodeURL:       "/ads/qr-pepsi.png",
			QRDestination:   "https://pepsi.com/zerosugar",
		},
		ContentArea: models.ContentArea{Position: "bottom-right", WidthPercent: 84.4, HeightPercent: 92.6},
		Tracking: models.TrackingURLs{
			ImpressionURL: "/api/track/impression?ad=pepsi-zero-refresh",
			ClickURL:      "/api/track/click?ad=pepsi-zero-refresh",
		},
	},
	{
		ID:          "lavazza-tabli",
		Advertiser:  "Lavazza",
		Campaign:    "Tablì Espresso",
		Orientation: models.OrientationLeftBottom,
		Dimensions:  models.Dimensions{LeftBarWidth: 280, BottomBarHeight: 100},
		DurationMS:  18000,
		Assets: models.Assets{
			Type:            models.AssetTypeImage,
			ImageURL:        "/ads/lavazza-lbar.png",
			Headline:        "LAVAZZA TABLÌ",
			Subheadline:     "Entra nel mondo",
			CTA:             "SCAN QR",
			LogoURL:         "/ads/lavazza-logo.png",
			BackgroundColor: "#F5F0E8",
			TextColor:       "#4A3728",
			AccentColor:     "#8B4513",
			QRCodeURL:       "/ads/qr-lavazza.png",
			QRDestination:   "https://lavazza.com/tabli",
		},
		ContentArea: models.ContentArea{Position: "top-right", WidthPercent: 85.4, HeightPercent: 90.7},
		Tracking: models.TrackingURLs{
			ImpressionURL: "/api/track/impression?ad=lavazza-tabli",
			ClickURL:      "/api/track/click?ad=lavazza-tabli",
		},
	},
}

// defaultAffinity is the built-in targeting configuration matching the demo
// inventory above.
var defaultAffinity = Affinity{
	SegmentWeights: map[string]map[string]float64{
		"ubereats-delivery": {
			"delivery-users":        1.0,
			"fast-food-frequenters": 0.8,
			"young-professionals":   0.7,
			"value-seekers":         0.5,
		},
		"draftkings-sportsbook": {
			"sports-bettors":      1.0,
			"sports-enthusiasts":  0.8,
			"young-professionals": 0.5,
		},
		"dazn-boxing": {
			"sports-enthusiasts":    0.9,
			"streaming-subscribers": 0.8,
			"young-professionals":   0.6,
		},
		"daznbet-livebetting": {
			"sports-bettors":        0.9,
			"sports-enthusiasts":    0.7,
			"streaming-subscribers": 0.6,
		},
		"ford-f150-touchdown": {
			"premium-auto-intenders": 1.0,
			"sports-enthusiasts":     0.6,
		},
		"budweiser-celebration": {
			"beer-drinkers":      1.0,
			"sports-enthusiasts": 0.7,
			"value-seekers":      0.4,
		},
		"toyota-halftime": {
			"premium-auto-intenders":     0.9,
			"electric-vehicle-intenders": 0.6,
			"sports-enthusiasts":         0.5,
		},
		"pepsi-zero-refresh": {
			"health-conscious":      0.8,
			"value-seekers":         0.6,
			"fast-food-frequenters": 0.5,
		},
		"lavazza-tabli": {
			"coffee-lovers":   1.0,
			"fine-dining":     0.8,
			"luxury-shoppers": 0.6,
		},
	},
	EventRankings: map[models.EventType][]string{
		models.EventTouchdown:       {"draftkings-sportsbook", "ford-f150-touchdown", "budweiser-celebration", "ubereats-delivery"},
		models.EventFieldGoal:       {"draftkings-sportsbook", "daznbet-livebetting", "budweiser-celebration"},
		models.EventInterception:    {"draftkings-sportsbook", "daznbet-livebetting", "ford-f150-touchdown"},
		models.EventThreePointer:    {"daznbet-livebetting", "draftkings-sportsbook", "pepsi-zero-refresh"},
		models.EventSlamDunk:        {"pepsi-zero-refresh", "daznbet-livebetting", "ubereats-delivery"},
		models.EventBuzzerBeater:    {"draftkings-sportsbook", "pepsi-zero-refresh", "budweiser-celebration"},
		models.EventGoal:            {"daznbet-livebetting", "dazn-boxing", "budweiser-celebration"},
		models.EventSoccerGoal:      {"daznbet-livebetting", "dazn-boxing", "ubereats-delivery"},
		models.EventHomeRun:         {"budweiser-celebration", "draftkings-sportsbook", "ford-f150-touchdown"},
		models.EventGrandSlam:       {"budweiser-celebration", "ford-f150-touchdown", "draftkings-sportsbook"},
		models.EventHalftime:        {"toyota-halftime", "ubereats-delivery", "pepsi-zero-refresh", "lavazza-tabli"},
		models.EventTimeout:         {"ubereats-delivery", "pepsi-zero-refresh", "lavazza-tabli"},
		models.EventCommercialBreak: {"ubereats-delivery", "lavazza-tabli", "pepsi-zero-refresh"},
		models.EventGameStart:       {"ford-f150-touchdown", "ubereats-delivery", "draftkings-sportsbook"},
		models.EventGameEnd:         {"toyota-halftime", "ford-f150-touchdown", "ubereats-delivery"},
		models.EventGeneric:         {"ubereats-delivery", "draftkings-sportsbook", "dazn-boxing", "daznbet-livebetting"},
	},
	DirectMappings: map[models.EventType]string{
		models.EventTouchdown: "draftkings-sportsbook",
		models.EventHalftime:  "toyota-halftime",
		models.EventGoal:      "daznbet-livebetting",
	},
}

// NewDefault builds the Store from the built-in demo inventory. It panics on
// a seed-data defect since that is a programming error, not a runtime
// condition.
func NewDefault() *Store {
	s, err := New(defaultAds, defaultAffinity)
	if err != nil {
		panic("catalog seed data invalid: " + err.Error())
	}
	return s
}
