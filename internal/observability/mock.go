package observability

import (
	"sync"
	"time"
)

// MockMetricsRegistry is a MetricsRegistry for tests that records what was
// incremented so assertions can inspect it.
type MockMetricsRegistry struct {
	mu          sync.Mutex
	Selections  map[string]int
	Resolutions map[string]int
	AdEvents    map[string]int
	RPCErrors   map[int]int
	Fallbacks   int
}

// NewMockMetricsRegistry creates an empty MockMetricsRegistry.
func NewMockMetricsRegistry() *MockMetricsRegistry {
	return &MockMetricsRegistry{
		Selections:  make(map[string]int),
		Resolutions: make(map[string]int),
		AdEvents:    make(map[string]int),
		RPCErrors:   make(map[int]int),
	}
}

// HTTP Request metrics
func (m *MockMetricsRegistry) IncrementRequests(endpoint, method, status string)                    {}
func (m *MockMetricsRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {}

// Selection metrics
func (m *MockMetricsRegistry) IncrementSelections(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Selections[method]++
}

func (m *MockMetricsRegistry) RecordSelectionScore(score float64) {}

func (m *MockMetricsRegistry) IncrementFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fallbacks++
}

// Identity resolution metrics
func (m *MockMetricsRegistry) IncrementIdentityResolutions(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Resolutions[method]++
}

// Ad event tracking metrics
func (m *MockMetricsRegistry) IncrementAdEvents(eventType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AdEvents[eventType]++
}

// RPC error metrics
func (m *MockMetricsRegistry) IncrementRPCErrors(code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RPCErrors[code]++
}
