package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(func() { mr.Close() })

	s := &Store{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		Ctx:    context.Background(),
	}
	t.Cleanup(s.Close)
	return s, mr
}

func TestAllowedEvent(t *testing.T) {
	for _, e := range []string{EventImpression, EventClick, EventQRScan} {
		assert.True(t, AllowedEvent(e), "AllowedEvent(%q)", e)
	}
	for _, e := range []string{"", "view", "IMPRESSION"} {
		assert.False(t, AllowedEvent(e), "AllowedEvent(%q)", e)
	}
}

func TestRecordEventCounts(t *testing.T) {
	s, _ := newTestStore(t)

	for i := int64(1); i <= 3; i++ {
		n, err := s.RecordEvent("draftkings-sportsbook", EventImpression)
		require.NoError(t, err)
		assert.Equal(t, i, n, "daily count")
	}
	_, err := s.RecordEvent("draftkings-sportsbook", EventClick)
	require.NoError(t, err)

	totals, err := s.Totals("draftkings-sportsbook")
	require.NoError(t, err)
	assert.Equal(t, int64(3), totals[EventImpression])
	assert.Equal(t, int64(1), totals[EventClick])
	assert.Equal(t, int64(0), totals[EventQRScan])
}

func TestRecordEventRejectsUnknownType(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.RecordEvent("draftkings-sportsbook", "view")
	assert.Error(t, err)
}

func TestDailyKeyGetsTTL(t *testing.T) {
	s, mr := newTestStore(t)

	_, err := s.RecordEvent("pepsi-zero-refresh", EventQRScan)
	require.NoError(t, err)

	key := "adevents:qr_scan:pepsi-zero-refresh:" + time.Now().Format("2006-01-02")
	assert.Equal(t, dailyTTL, mr.TTL(key), "daily key ttl")

	// the running total must never expire
	assert.Equal(t, time.Duration(0), mr.TTL("adevents:total:qr_scan:pepsi-zero-refresh"))
}

func TestTotalsForUntrackedAd(t *testing.T) {
	s, _ := newTestStore(t)

	totals, err := s.Totals("never-seen")
	require.NoError(t, err)
	for eventType, n := range totals {
		assert.Equal(t, int64(0), n, "count for %s", eventType)
	}
}
