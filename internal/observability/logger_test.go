package observability

import (
	"testing"

	"go.uber.org/zap"
)

func TestShouldSampleBoundaryRates(t *testing.T) {
	if !ShouldSample(1.0) {
		t.Error("rate 1.0 should always sample")
	}
	if ShouldSample(0.0) {
		t.Error("rate 0.0 should never sample")
	}
}

func TestSamplingStatsAccumulateAndReset(t *testing.T) {
	ResetSamplingStats()

	for i := 0; i < 100; i++ {
		ShouldSample(0.5)
	}

	st, ok := GetSamplingStats()[0.5]
	if !ok {
		t.Fatal("expected stats recorded for rate 0.5")
	}
	if st.Total != 100 {
		t.Errorf("total = %d, want 100", st.Total)
	}
	if st.Sampled > st.Total {
		t.Errorf("sampled = %d exceeds total %d", st.Sampled, st.Total)
	}
	if st.Rate != 0.5 {
		t.Errorf("rate = %v, want 0.5", st.Rate)
	}

	LogSamplingStats(zap.NewNop())

	ResetSamplingStats()
	if got := GetSamplingStats(); len(got) != 0 {
		t.Errorf("stats after reset = %v, want empty", got)
	}
}
