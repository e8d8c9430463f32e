package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/hypermindz/lbarserve/internal/middleware"
	"github.com/hypermindz/lbarserve/internal/models"
	"github.com/hypermindz/lbarserve/internal/observability"
	"github.com/hypermindz/lbarserve/internal/tracking"
)

var tracer = otel.Tracer("lbarserve")

// rpcMethods lists the methods the endpoint dispatches, in the order
// advertised by the info handler.
var rpcMethods = []string{
	"resolve_identity",
	"get_contextual_ad",
	"get_lbar_ad",
	"list_lbar_ads",
	"post_ad_events",
}

// decodeRequest reads and unmarshals a JSON-RPC request body.
func decodeRequest(r *http.Request) (*Request, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	defer func() {
		_ = r.Body.Close()
	}()

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return &req, nil
}

// InfoHandler handles GET requests to the RPC endpoint with a capability
// summary, doubling as a liveness probe for integrating players.
func (s *Server) InfoHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const endpoint = "mcp"
	const method = "GET"

	var segments []string
	if s.Resolver != nil {
		segments = s.Resolver.AvailableSegments()
	}

	info := map[string]any{
		"name":               "hypermindz-lbar-mcp",
		"version":            ServerVersion,
		"description":        "HyperMindZ contextual L-Bar ad server",
		"protocol":           "JSON-RPC 2.0",
		"methods":            rpcMethods,
		"valid_event_types":  models.ValidEventTypes,
		"available_segments": segments,
		"total_ads":          s.Catalog.Count(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		s.Logger.Error("write info response", zap.Error(err))
	}

	s.Metrics.IncrementRequests(endpoint, method, "200")
	s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
}

// RPCHandler handles POST requests carrying JSON-RPC 2.0 envelopes.
func (s *Server) RPCHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "RPCHandler",
		trace.WithAttributes(
			attribute.String("http.method", "POST"),
			attribute.String("http.route", "/api/mcp"),
		))
	defer span.End()
	r = r.WithContext(ctx)

	// Get trace-aware logger from middleware
	logger := middleware.LoggerFromRequest(r, s.Logger)

	start := time.Now()
	const endpoint = "mcp"
	const method = "POST"

	req, err := decodeRequest(r)
	if err != nil {
		logger.Error("decode request", zap.Error(err))
		s.failRPC(w, nil, rpcError(CodeInvalidRequest, "Invalid Request: malformed JSON"))
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
		return
	}
	if req.Method == "" {
		s.failRPC(w, req.ID, rpcError(CodeInvalidRequest, "Invalid Request: method required"))
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
		return
	}

	span.SetAttributes(attribute.String("rpc.method", req.Method))

	var result any
	var rpcErr *RPCError
	switch req.Method {
	case "resolve_identity":
		result, rpcErr = s.resolveIdentity(logger, req.Params)
	case "get_contextual_ad":
		result, rpcErr = s.getContextualAd(logger, req.Params)
	case "get_lbar_ad":
		result, rpcErr = s.getLBarAd(logger, req.Params)
	case "list_lbar_ads":
		result, rpcErr = s.listLBarAds()
	case "post_ad_events":
		result, rpcErr = s.postAdEvents(logger, req.Params)
	default:
		rpcErr = rpcError(CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method))
	}

	if rpcErr != nil {
		s.failRPC(w, req.ID, rpcErr)
		s.Metrics.IncrementRequests(endpoint, method, fmt.Sprintf("%d", httpStatusFor(rpcErr.Code)))
		s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
		return
	}

	if err := writeResult(w, req.ID, result); err != nil {
		logger.Error("write rpc response", zap.Error(err), zap.String("rpc_method", req.Method))
	}
	s.Metrics.IncrementRequests(endpoint, method, "200")
	s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
}

// failRPC writes an error response and counts it.
func (s *Server) failRPC(w http.ResponseWriter, id any, rpcErr *RPCError) {
	s.Metrics.IncrementRPCErrors(rpcErr.Code)
	if err := writeError(w, id, rpcErr); err != nil {
		s.Logger.Error("write rpc error response", zap.Error(err))
	}
}

type resolveIdentityParams struct {
	DeviceID  string `json:"device_id"`
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
}

func (s *Server) resolveIdentity(logger *zap.Logger, raw json.RawMessage) (any, *RPCError) {
	var p resolveIdentityParams
	if err := unmarshalParams(raw, &p); err != nil {
		return nil, err
	}
	if p.DeviceID == "" {
		return nil, rpcError(CodeInvalidParams, "device_id required")
	}
	if s.Resolver == nil {
		return nil, rpcError(CodeInternalError, "identity resolution unavailable")
	}

	res := s.Resolver.Resolve(p.DeviceID, p.IP, p.UserAgent)
	s.Metrics.IncrementIdentityResolutions(res.Resolution.Method)
	if observability.ShouldSample(observability.GetSamplingRate()) {
		logger.Info("identity resolved",
			zap.String("device_id", p.DeviceID),
			zap.String("household_id", res.HouseholdID),
			zap.String("resolution_method", res.Resolution.Method))
	}
	return res, nil
}

type getContextualAdParams struct {
	EventType         string   `json:"event_type"`
	HouseholdID       string   `json:"household_id"`
	HouseholdSegments []string `json:"household_segments"`
	Orientation       string   `json:"orientation"`
	AssetType         string   `json:"asset_type"`
	DeviceID          string   `json:"device_id"`
	VenueID           string   `json:"venue_id"`
}

func (s *Server) getContextualAd(logger *zap.Logger, raw json.RawMessage) (any, *RPCError) {
	var p getContextualAdParams
	if err := unmarshalParams(raw, &p); err != nil {
		return nil, err
	}

	event := models.EventGeneric
	if strings.TrimSpace(p.EventType) != "" {
		var ok bool
		event, ok = models.NormalizeEventType(p.EventType)
		if !ok {
			return nil, rpcError(CodeInvalidParams, fmt.Sprintf("unknown event_type: %s", p.EventType))
		}
	}

	filters, rpcErr := parseFilters(p.Orientation, p.AssetType)
	if rpcErr != nil {
		return nil, rpcErr
	}

	segments := p.HouseholdSegments
	if p.HouseholdID != "" {
		if s.Resolver == nil {
			return nil, rpcError(CodeInternalError, "identity resolution unavailable")
		}
		profile, ok := s.Resolver.Profile(p.HouseholdID)
		if !ok {
			return nil, rpcError(CodeInvalidParams, fmt.Sprintf("unknown household_id: %s", p.HouseholdID))
		}
		segments = profile.Segments
	}

	sel := s.Selector.SelectContextualAd(event, segments, filters)
	if sel.Ad == nil {
		return nil, rpcError(CodeInternalError, "no ad available")
	}

	s.Metrics.IncrementSelections(sel.Targeting.Method)
	s.Metrics.RecordSelectionScore(sel.Targeting.Score)
	if sel.Targeting.Method == models.MethodFallback {
		s.Metrics.IncrementFallbacks()
	}
	if observability.ShouldSample(observability.GetSamplingRate()) {
		logger.Info("contextual ad selected",
			zap.String("event_type", string(event)),
			zap.String("ad_id", sel.Ad.ID),
			zap.String("targeting_method", sel.Targeting.Method),
			zap.Float64("score", sel.Targeting.Score))
	}

	return map[string]any{
		"success":   true,
		"ad":        sel.Ad,
		"targeting": sel.Targeting,
	}, nil
}

type getLBarAdParams struct {
	AdID        string `json:"ad_id"`
	EventType   string `json:"event_type"`
	DeviceID    string `json:"device_id"`
	VenueID     string `json:"venue_id"`
	Orientation string `json:"orientation"`
	AssetType   string `json:"asset_type"`
}

// getLBarAd serves the untargeted path: a specific ad by id, or a random one.
func (s *Server) getLBarAd(logger *zap.Logger, raw json.RawMessage) (any, *RPCError) {
	var p getLBarAdParams
	if err := unmarshalParams(raw, &p); err != nil {
		return nil, err
	}

	filters, rpcErr := parseFilters(p.Orientation, p.AssetType)
	if rpcErr != nil {
		return nil, rpcErr
	}

	var ad *models.LBarAd
	if p.AdID != "" {
		ad, _ = s.Catalog.ByID(p.AdID)
	}
	if ad == nil {
		ad = s.Random.Pick(filters)
	}
	if ad == nil {
		return nil, rpcError(CodeInternalError, "no ad available")
	}

	eventType := strings.TrimSpace(p.EventType)
	if eventType == "" {
		eventType = string(models.EventGeneric)
	}

	return map[string]any{
		"success": true,
		"ad":      ad,
		"request_context": map[string]any{
			"event_type": eventType,
			"device_id":  p.DeviceID,
			"venue_id":   p.VenueID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// adSummary is the compact catalog listing returned by list_lbar_ads.
type adSummary struct {
	ID         string `json:"id"`
	Advertiser string `json:"advertiser"`
	Campaign   string `json:"campaign"`
	Headline   string `json:"headline"`
}

func (s *Server) listLBarAds() (any, *RPCError) {
	ads := s.Catalog.All()
	summaries := make([]adSummary, 0, len(ads))
	for _, ad := range ads {
		summaries = append(summaries, adSummary{
			ID:         ad.ID,
			Advertiser: ad.Advertiser,
			Campaign:   ad.Campaign,
			Headline:   ad.Assets.Headline,
		})
	}
	return map[string]any{
		"success": true,
		"count":   len(summaries),
		"ads":     summaries,
	}, nil
}

type postAdEventsParams struct {
	AdID      string `json:"ad_id"`
	EventType string `json:"event_type"`
	DeviceID  string `json:"device_id"`
}

// postAdEvents records a delivery event (impression, click, qr_scan) for an
// ad. Persistence through the tracker is best-effort; metrics always count.
func (s *Server) postAdEvents(logger *zap.Logger, raw json.RawMessage) (any, *RPCError) {
	var p postAdEventsParams
	if err := unmarshalParams(raw, &p); err != nil {
		return nil, err
	}
	if p.AdID == "" {
		return nil, rpcError(CodeInvalidParams, "ad_id required")
	}
	if !tracking.AllowedEvent(p.EventType) {
		return nil, rpcError(CodeInvalidParams, fmt.Sprintf("unknown event_type: %s", p.EventType))
	}
	if _, ok := s.Catalog.ByID(p.AdID); !ok {
		return nil, rpcError(CodeInvalidParams, fmt.Sprintf("unknown ad_id: %s", p.AdID))
	}

	s.Metrics.IncrementAdEvents(p.EventType)

	var dayCount int64
	var totals map[string]int64
	recorded := false
	if s.Tracker != nil {
		n, err := s.Tracker.RecordEvent(p.AdID, p.EventType)
		if err != nil {
			logger.Error("record ad event", zap.Error(err),
				zap.String("ad_id", p.AdID), zap.String("ad_event_type", p.EventType))
			return nil, rpcError(CodeInternalError, "failed to record event")
		}
		dayCount = n
		recorded = true

		totals, err = s.Tracker.Totals(p.AdID)
		if err != nil {
			logger.Warn("read ad event totals", zap.Error(err), zap.String("ad_id", p.AdID))
			totals = nil
		}
	}

	return map[string]any{
		"success":   true,
		"event_id":  uuid.NewString(),
		"recorded":  recorded,
		"day_count": dayCount,
		"totals":    totals,
	}, nil
}

// unmarshalParams decodes the raw params object, tolerating absence.
func unmarshalParams(raw json.RawMessage, v any) *RPCError {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return rpcError(CodeInvalidParams, "invalid params")
	}
	return nil
}

// parseFilters validates the optional orientation and asset_type params.
func parseFilters(orientation, assetType string) (models.SelectionFilters, *RPCError) {
	var filters models.SelectionFilters
	o, ok := models.ParseOrientation(orientation)
	if !ok {
		return filters, rpcError(CodeInvalidParams, fmt.Sprintf("unknown orientation: %s", orientation))
	}
	t, ok := models.ParseAssetType(assetType)
	if !ok {
		return filters, rpcError(CodeInvalidParams, fmt.Sprintf("unknown asset_type: %s", assetType))
	}
	filters.Orientation = o
	filters.AssetType = t
	return filters, nil
}
