package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/hypermindz/lbarserve/internal/catalog"
	"github.com/hypermindz/lbarserve/internal/identity"
	"github.com/hypermindz/lbarserve/internal/logic/selectors"
	"github.com/hypermindz/lbarserve/internal/models"
)

// Tool request/response types for agent integrations
type ResolveIdentityInput struct {
	DeviceID  string `json:"device_id"`
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

type GetContextualAdInput struct {
	EventType         string   `json:"event_type,omitempty"`
	HouseholdID       string   `json:"household_id,omitempty"`
	HouseholdSegments []string `json:"household_segments,omitempty"`
	Orientation       string   `json:"orientation,omitempty"`
	AssetType         string   `json:"asset_type,omitempty"`
}

type GetContextualAdOutput struct {
	Success   bool             `json:"success"`
	Ad        *models.LBarAd   `json:"ad"`
	Targeting models.Targeting `json:"targeting"`
}

type ListLBarAdsInput struct{}

type AdSummary struct {
	ID         string `json:"id"`
	Advertiser string `json:"advertiser"`
	Campaign   string `json:"campaign"`
	Headline   string `json:"headline"`
}

type ListLBarAdsOutput struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Ads     []AdSummary `json:"ads"`
}

// LBarServer holds our dependencies
type LBarServer struct {
	catalog  *catalog.Store
	selector selectors.Selector
	resolver *identity.Resolver
	logger   *zap.Logger
}

// ResolveIdentity implements the resolve_identity tool
func (s *LBarServer) ResolveIdentity(ctx context.Context, req *mcp.CallToolRequest, input ResolveIdentityInput) (*mcp.CallToolResult, models.IdentityResult, error) {
	if input.DeviceID == "" {
		return nil, models.IdentityResult{}, fmt.Errorf("device_id is required")
	}

	res := s.resolver.Resolve(input.DeviceID, input.IP, input.UserAgent)
	s.logger.Info("Resolved identity",
		zap.String("device_id", input.DeviceID),
		zap.String("household_id", res.HouseholdID),
		zap.String("resolution_method", res.Resolution.Method))
	return nil, res, nil
}

// GetContextualAd implements the get_contextual_ad tool
func (s *LBarServer) GetContextualAd(ctx context.Context, req *mcp.CallToolRequest, input GetContextualAdInput) (*mcp.CallToolResult, GetContextualAdOutput, error) {
	event := models.EventGeneric
	if strings.TrimSpace(input.EventType) != "" {
		var ok bool
		event, ok = models.NormalizeEventType(input.EventType)
		if !ok {
			return nil, GetContextualAdOutput{}, fmt.Errorf("unknown event_type: %s", input.EventType)
		}
	}

	orientation, ok := models.ParseOrientation(input.Orientation)
	if !ok {
		return nil, GetContextualAdOutput{}, fmt.Errorf("unknown orientation: %s", input.Orientation)
	}
	assetType, ok := models.ParseAssetType(input.AssetType)
	if !ok {
		return nil, GetContextualAdOutput{}, fmt.Errorf("unknown asset_type: %s", input.AssetType)
	}
	filters := models.SelectionFilters{Orientation: orientation, AssetType: assetType}

	segments := input.HouseholdSegments
	if input.HouseholdID != "" {
		profile, ok := s.resolver.Profile(input.HouseholdID)
		if !ok {
			return nil, GetContextualAdOutput{}, fmt.Errorf("unknown household_id: %s", input.HouseholdID)
		}
		segments = profile.Segments
	}

	sel := s.selector.SelectContextualAd(event, segments, filters)
	s.logger.Info("Selected contextual ad",
		zap.String("event_type", string(event)),
		zap.String("ad_id", sel.Ad.ID),
		zap.String("targeting_method", sel.Targeting.Method),
		zap.Float64("score", sel.Targeting.Score))

	return nil, GetContextualAdOutput{Success: true, Ad: sel.Ad, Targeting: sel.Targeting}, nil
}

// ListLBarAds implements the list_lbar_ads tool
func (s *LBarServer) ListLBarAds(ctx context.Context, req *mcp.CallToolRequest, input ListLBarAdsInput) (*mcp.CallToolResult, ListLBarAdsOutput, error) {
	ads := s.catalog.All()
	summaries := make([]AdSummary, 0, len(ads))
	for _, ad := range ads {
		summaries = append(summaries, AdSummary{
			ID:         ad.ID,
			Advertiser: ad.Advertiser,
			Campaign:   ad.Campaign,
			Headline:   ad.Assets.Headline,
		})
	}
	return nil, ListLBarAdsOutput{Success: true, Count: len(summaries), Ads: summaries}, nil
}

func main() {
	// Initialize logger for MCP server - use stderr to avoid stdio conflicts
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	cfg.OutputPaths = []string{"stderr"}      // Force stderr output
	cfg.ErrorOutputPaths = []string{"stderr"} // Force stderr for errors

	// Use same encoder config as observability package for consistency
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.NameKey = "logger"
	cfg.EncoderConfig.CallerKey = "caller"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.StacktraceKey = "stacktrace"

	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Add service name as a permanent field for consistency
	logger = logger.Named("lbarserve-mcp").With(zap.String("service", "lbarserve-mcp"))

	logger.Info("Starting HyperMindZ L-Bar MCP Server")

	cat := catalog.NewDefault()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	lbar := &LBarServer{
		catalog:  cat,
		selector: selectors.NewContextualSelector(cat, rng, logger),
		resolver: identity.NewMock(nil, logger),
		logger:   logger,
	}

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "hypermindz-lbar-mcp",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_identity",
		Description: "Resolve a signage device ID to a household profile with audience segments",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"device_id": map[string]interface{}{
					"type":        "string",
					"description": "Signage device identifier",
				},
				"ip": map[string]interface{}{
					"type":        "string",
					"description": "Venue egress IP address (optional)",
				},
				"user_agent": map[string]interface{}{
					"type":        "string",
					"description": "Device User-Agent string (optional)",
				},
			},
			"required": []string{"device_id"},
		},
	}, lbar.ResolveIdentity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_contextual_ad",
		Description: "Select the best L-Bar ad for a live event and household audience segments",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"event_type": map[string]interface{}{
					"type":        "string",
					"description": "Live event type, e.g. TOUCHDOWN or HALFTIME (optional, defaults to GENERIC)",
				},
				"household_id": map[string]interface{}{
					"type":        "string",
					"description": "Resolved household ID whose segments drive targeting (optional)",
				},
				"household_segments": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Audience segments to target directly (optional, ignored when household_id is set)",
				},
				"orientation": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"top-right", "left-bottom", "top-left", "right-bottom"},
					"description": "Restrict to a specific L-Bar orientation (optional)",
				},
				"asset_type": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"image", "video"},
					"description": "Restrict to a specific creative format (optional)",
				},
			},
		},
	}, lbar.GetContextualAd)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_lbar_ads",
		Description: "List all available L-Bar ad concepts",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	}, lbar.ListLBarAds)

	logger.Info("MCP Server running via stdio")

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
