// Package tracking persists ad delivery events (impressions, clicks, QR
// scans) to Redis. Counters are kept two ways: a per-day key with a TTL for
// recent-activity queries, and an untruncated running total per ad.
package tracking

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Ad event types accepted by the tracker.
const (
	EventImpression = "impression"
	EventClick      = "click"
	EventQRScan     = "qr_scan"
)

var allowedEvents = map[string]struct{}{
	EventImpression: {},
	EventClick:      {},
	EventQRScan:     {},
}

// AllowedEvent reports whether eventType is a recognized ad event.
func AllowedEvent(eventType string) bool {
	_, ok := allowedEvents[eventType]
	return ok
}

// dailyTTL bounds how long per-day counters are retained.
const dailyTTL = 48 * time.Hour

// Store wraps a redis client and context for tracking operations.
type Store struct {
	Client *redis.Client
	Ctx    context.Context
}

// Init initializes a Redis client and returns a Store.
func Init(addr string) (*Store, error) {
	s := &Store{
		Client: redis.NewClient(&redis.Options{Addr: addr}),
		Ctx:    context.Background(),
	}

	// Add OpenTelemetry instrumentation to the Redis client
	if err := redisotel.InstrumentTracing(s.Client); err != nil {
		return nil, fmt.Errorf("failed to instrument redis tracing: %w", err)
	}

	if err := s.Client.Ping(s.Ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	zap.L().Info("Connected to Redis", zap.String("addr", addr))
	return s, nil
}

// RecordEvent increments the daily counter for (eventType, adID) and the
// running total. The daily key gets its TTL on first increment. Returns the
// day's count so far.
func (s *Store) RecordEvent(adID, eventType string) (int64, error) {
	if !AllowedEvent(eventType) {
		return 0, fmt.Errorf("unknown ad event type %q", eventType)
	}
	key := fmt.Sprintf("adevents:%s:%s:%s", eventType, adID, time.Now().Format("2006-01-02"))
	val, err := s.Client.Incr(s.Ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if val == 1 {
		s.Client.Expire(s.Ctx, key, dailyTTL)
	}
	totalKey := fmt.Sprintf("adevents:total:%s:%s", eventType, adID)
	if err := s.Client.Incr(s.Ctx, totalKey).Err(); err != nil {
		return val, err
	}
	return val, nil
}

// Totals returns the running event counts for an ad, one entry per event
// type. Ads with no recorded activity report zero for every type.
func (s *Store) Totals(adID string) (map[string]int64, error) {
	out := make(map[string]int64, len(allowedEvents))
	for eventType := range allowedEvents {
		key := fmt.Sprintf("adevents:total:%s:%s", eventType, adID)
		n, err := s.Client.Get(s.Ctx, key).Int64()
		if err != nil && err != redis.Nil {
			return nil, err
		}
		out[eventType] = n
	}
	return out, nil
}

// Close shuts down the Redis client.
func (s *Store) Close() {
	if s != nil && s.Client != nil {
		if err := s.Client.Close(); err != nil {
			zap.L().Error("redis close", zap.Error(err))
		}
	}
}
