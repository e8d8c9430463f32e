package models

// Orientation describes which two screen edges an L-Bar ad occupies. The
// remaining rectangular region stays available for the primary content feed.
type Orientation string

const (
	OrientationTopRight    Orientation = "top-right"
	OrientationLeftBottom  Orientation = "left-bottom"
	OrientationTopLeft     Orientation = "top-left"
	OrientationRightBottom Orientation = "right-bottom"
)

// ParseOrientation normalizes a raw orientation string into the closed
// enumeration. The empty string is valid and means "no constraint".
func ParseOrientation(s string) (Orientation, bool) {
	switch Orientation(s) {
	case "", OrientationTopRight, OrientationLeftBottom, OrientationTopLeft, OrientationRightBottom:
		return Orientation(s), true
	}
	return "", false
}

// AssetType is the creative format of an L-Bar ad.
type AssetType string

const (
	AssetTypeImage AssetType = "image"
	AssetTypeVideo AssetType = "video"
)

// ParseAssetType normalizes a raw asset type string. The empty string is valid
// and means "no constraint".
func ParseAssetType(s string) (AssetType, bool) {
	switch AssetType(s) {
	case "", AssetTypeImage, AssetTypeVideo:
		return AssetType(s), true
	}
	return "", false
}

// Dimensions holds the pixel sizes of the bars an L-Bar creative renders.
// Only the fields matching the ad's orientation are populated. These values
// are opaque payload data for selection purposes; the client uses them to
// squeeze the content area.
type Dimensions struct {
	TopBarHeight    int `json:"top_bar_height,omitempty"`
	BottomBarHeight int `json:"bottom_bar_height,omitempty"`
	LeftBarWidth    int `json:"left_bar_width,omitempty"`
	RightBarWidth   int `json:"right_bar_width,omitempty"`
}

// Assets describes the visual payload of an L-Bar creative.
type Assets struct {
	Type            AssetType `json:"type"`
	ImageURL        string    `json:"image_url,omitempty"`
	VideoURL        string    `json:"video_url,omitempty"`
	PosterURL       string    `json:"poster_url,omitempty"`
	Headline        string    `json:"headline"`
	Subheadline     string    `json:"subheadline,omitempty"`
	CTA             string    `json:"cta"`
	LogoURL         string    `json:"logo_url"`
	BackgroundColor string    `json:"background_color"`
	TextColor       string    `json:"text_color"`
	AccentColor     string    `json:"accent_color"`
	QRCodeURL       string    `json:"qr_code_url,omitempty"`
	QRDestination   string    `json:"qr_destination,omitempty"`
}

// ContentArea describes where the primary content sits while the L-Bar shows,
// as percentages of the full screen.
type ContentArea struct {
	Position      string  `json:"position"`
	WidthPercent  float64 `json:"width_percent"`
	HeightPercent float64 `json:"height_percent"`
}

// TrackingURLs carry the beacon endpoints the display client fires.
type TrackingURLs struct {
	ImpressionURL string `json:"impression_url"`
	ClickURL      string `json:"click_url"`
}

// LBarAd is an immutable catalog entry. The catalog is populated once at
// process start and never mutated, so ads may be shared freely across
// concurrent selection calls.
type LBarAd struct {
	ID          string       `json:"id"`
	Advertiser  string       `json:"advertiser"`
	Campaign    string       `json:"campaign"`
	Orientation Orientation  `json:"orientation"`
	Dimensions  Dimensions   `json:"dimensions"`
	DurationMS  int          `json:"duration_ms"`
	Assets      Assets       `json:"assets"`
	ContentArea ContentArea  `json:"content_area"`
	Tracking    TrackingURLs `json:"tracking"`
}

// SelectionFilters restricts the candidate pool before scoring. Zero values
// mean no restriction on that axis; both filters are ANDed when set.
type SelectionFilters struct {
	Orientation Orientation
	AssetType   AssetType
}

// Matches reports whether the ad satisfies every set filter.
func (f SelectionFilters) Matches(ad *LBarAd) bool {
	if f.Orientation != "" && ad.Orientation != f.Orientation {
		return false
	}
	if f.AssetType != "" && ad.Assets.Type != f.AssetType {
		return false
	}
	return true
}
