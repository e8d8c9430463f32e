// Command traffic_simulator drives synthetic JSON-RPC traffic against a
// running L-Bar ad server: it resolves device identities, requests contextual
// ads for random live events, and posts delivery events at configurable
// rates. Useful for demo warmup and for watching the metrics endpoint move.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hypermindz/lbarserve/internal/config"
	"github.com/hypermindz/lbarserve/internal/models"
	"github.com/hypermindz/lbarserve/internal/observability"
	"github.com/hypermindz/lbarserve/internal/tracking"
)

var (
	server    string
	totalReq  int
	conc      int
	duration  time.Duration
	rate      float64
	clickRate float64
	qrRate    float64
	stats     bool
	flush     bool
	redisAddr string
	debug     bool
	label     string
	apiKey    string
)

var logger *zap.Logger

// HTTP client with proper resource limits
var httpClient *http.Client

var (
	deviceIDs = []string{
		"skreens-venue-42-screen-1",
		"skreens-venue-42-screen-2",
		"skreens-airport-lax-gate-12",
		"skreens-bar-chicago-main",
		"skreens-gym-sf-lobby",
		"skreens-hotel-nyc-bar",
		// unknown devices exercise the hashed fallback path
		"skreens-popup-unknown-1",
		"skreens-popup-unknown-2",
	}
	venueIPs = []string{
		"192.168.1.100",
		"10.0.0.50",
		"203.0.113.1",
	}
	userAgents = []string{
		"Skreens/3.2.1",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		"Mozilla/5.0 (SMART-TV; Linux; Tizen 6.5) AppleWebKit/537.36 (KHTML, like Gecko) Version/6.5 TV Safari/537.36",
	}
)

const statsInterval = 5 * time.Second

var (
	countSent      uint64
	countSuccess   uint64
	countFallbacks uint64
	countErrors    uint64
	countEvents    uint64
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      string `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func main() {
	flag.StringVar(&server, "server", "http://localhost:8787", "ad server base URL")
	flag.IntVar(&totalReq, "requests", 1000, "total ad requests to send")
	flag.IntVar(&conc, "concurrency", 20, "concurrent requests")
	flag.DurationVar(&duration, "duration", 0, "how long to run traffic (0 to disable)")
	flag.Float64Var(&rate, "rate", 0, "requests per second (0 for unlimited)")
	flag.Float64Var(&clickRate, "click-rate", 0.05, "probability of a click per served ad")
	flag.Float64Var(&qrRate, "qr-rate", 0.02, "probability of a QR scan per served ad")
	flag.BoolVar(&stats, "stats", false, "print aggregated stats periodically")
	flag.BoolVar(&flush, "flush", false, "flush ad event counters from redis before sending traffic")
	flag.StringVar(&redisAddr, "redis", "", "redis address (defaults to REDIS_ADDR)")
	flag.BoolVar(&debug, "debug", false, "enable verbose debug logs")
	flag.StringVar(&label, "label", "", "label to identify this run")
	flag.StringVar(&apiKey, "api-key", "", "API key sent with each request")
	flag.Parse()

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	var err error
	logger, err = observability.InitLoggerWithLevel(level, "traffic-simulator")
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	httpClient = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			Dial: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).Dial,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			MaxConnsPerHost:       50,
			IdleConnTimeout:       90 * time.Second,
		},
	}

	if label == "" {
		label = time.Now().Format(time.RFC3339)
	}

	if flush {
		cfg := config.Load()
		addr := redisAddr
		if addr == "" {
			addr = cfg.RedisAddr
		}
		store, err := tracking.Init(addr)
		if err != nil {
			logger.Fatal("redis connect", zap.Error(err))
		}

		keys, err := store.Client.Keys(store.Ctx, "adevents:*").Result()
		if err != nil {
			logger.Error("failed to list ad event keys", zap.Error(err))
		} else if len(keys) > 0 {
			if err := store.Client.Del(store.Ctx, keys...).Err(); err != nil {
				logger.Error("failed to delete ad event keys", zap.Error(err))
			}
		}
		store.Close()
		logger.Info("ad event counters flushed", zap.String("addr", addr), zap.Int("keys_deleted", len(keys)))
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	var wg sync.WaitGroup
	sem := make(chan struct{}, conc)
	done := make(chan struct{})

	var baseInterval time.Duration
	if rate > 0 {
		baseInterval = time.Duration(float64(time.Second) / rate)
	} else if duration > 0 && totalReq > 0 {
		baseInterval = duration / time.Duration(totalReq)
	}

	start := time.Now()
	next := start

	if stats {
		go func() {
			ticker := time.NewTicker(statsInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					printStats()
				case <-done:
					printStats()
					return
				}
			}
		}()
	}

	for i := 0; ; i++ {
		if totalReq > 0 && i >= totalReq {
			break
		}
		if duration > 0 && time.Since(start) >= duration {
			break
		}
		if baseInterval > 0 {
			now := time.Now()
			if now.Before(next) {
				time.Sleep(next.Sub(now))
			}
			next = next.Add(baseInterval)
		}
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			simulateRequest(r)
		}()
	}
	wg.Wait()
	close(done)
	if !stats {
		printStats()
	}
}

// simulateRequest runs one full device flow: identity resolution, a
// contextual ad request for a random event, and probabilistic ad events.
func simulateRequest(r *rand.Rand) {
	atomic.AddUint64(&countSent, 1)

	deviceID := deviceIDs[r.Intn(len(deviceIDs))]
	ip := venueIPs[r.Intn(len(venueIPs))]
	ua := userAgents[r.Intn(len(userAgents))]
	event := models.ValidEventTypes[r.Intn(len(models.ValidEventTypes))]

	identity, err := call("resolve_identity", map[string]any{
		"device_id":  deviceID,
		"ip":         ip,
		"user_agent": ua,
	})
	if err != nil {
		atomic.AddUint64(&countErrors, 1)
		logger.Error("resolve identity", zap.Error(err), zap.String("device_id", deviceID))
		return
	}
	var resolved struct {
		HouseholdID string `json:"household_id"`
	}
	if err := json.Unmarshal(identity, &resolved); err != nil {
		atomic.AddUint64(&countErrors, 1)
		logger.Error("decode identity result", zap.Error(err))
		return
	}

	adResult, err := call("get_contextual_ad", map[string]any{
		"event_type":   string(event),
		"household_id": resolved.HouseholdID,
		"device_id":    deviceID,
	})
	if err != nil {
		atomic.AddUint64(&countErrors, 1)
		logger.Error("get contextual ad", zap.Error(err), zap.String("event_type", string(event)))
		return
	}
	var served struct {
		Ad struct {
			ID string `json:"id"`
		} `json:"ad"`
		Targeting struct {
			Method string  `json:"method"`
			Score  float64 `json:"score"`
		} `json:"targeting"`
	}
	if err := json.Unmarshal(adResult, &served); err != nil {
		atomic.AddUint64(&countErrors, 1)
		logger.Error("decode ad result", zap.Error(err))
		return
	}
	if served.Targeting.Method == "fallback" {
		atomic.AddUint64(&countFallbacks, 1)
	}

	postEvent(served.Ad.ID, "impression")
	if r.Float64() < clickRate {
		postEvent(served.Ad.ID, "click")
	}
	if r.Float64() < qrRate {
		postEvent(served.Ad.ID, "qr_scan")
	}

	atomic.AddUint64(&countSuccess, 1)
	logger.Debug("request",
		zap.String("device_id", deviceID),
		zap.String("household_id", resolved.HouseholdID),
		zap.String("event_type", string(event)),
		zap.String("ad_id", served.Ad.ID),
		zap.String("method", served.Targeting.Method),
		zap.Float64("score", served.Targeting.Score))
}

func postEvent(adID, eventType string) {
	if _, err := call("post_ad_events", map[string]any{
		"ad_id":      adID,
		"event_type": eventType,
	}); err != nil {
		logger.Error("post ad event", zap.Error(err), zap.String("ad_id", adID), zap.String("ad_event_type", eventType))
		return
	}
	atomic.AddUint64(&countEvents, 1)
}

// call posts a JSON-RPC request and returns the raw result.
func call(method string, params any) (json.RawMessage, error) {
	blob, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "POST", strings.TrimRight(server, "/")+"/api/mcp", bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("%s: rpc error %d: %s", method, rpcResp.Error.Code, rpcResp.Error.Message)
	}
	return rpcResp.Result, nil
}

func printStats() {
	sent := atomic.LoadUint64(&countSent)
	succ := atomic.LoadUint64(&countSuccess)
	fb := atomic.LoadUint64(&countFallbacks)
	errs := atomic.LoadUint64(&countErrors)
	events := atomic.LoadUint64(&countEvents)
	logger.Info("stats",
		zap.String("run", label),
		zap.Uint64("sent", sent),
		zap.Uint64("success", succ),
		zap.Uint64("fallbacks", fb),
		zap.Uint64("errors", errs),
		zap.Uint64("ad_events", events))
}
