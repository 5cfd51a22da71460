package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatsEmpty(t *testing.T) {
	s := Summary{Total: 3, Failed: 3}
	assert.Equal(t, Stats{}, s.ComputeStats())
}

func TestComputeStatsBasic(t *testing.T) {
	s := Summary{Successful: 5, Times: []float64{5, 1, 4, 2, 3}}
	stats := s.ComputeStats()

	assert.Equal(t, 3.0, stats.Avg)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 5.0, stats.Max)
	assert.Equal(t, 3.0, stats.P50)
	assert.False(t, stats.HasTail, "tail percentiles need %d samples", TailSampleCount)
	assert.Zero(t, stats.P95)
	assert.Zero(t, stats.P99)
}

func TestComputeStatsMedianEvenCount(t *testing.T) {
	s := Summary{Successful: 4, Times: []float64{4, 1, 3, 2}}
	assert.Equal(t, 2.5, s.ComputeStats().P50)
}

func TestComputeStatsTailPercentiles(t *testing.T) {
	// Latencies 1..25ms: p95 index = floor(0.95*25) = 23 -> 24ms,
	// p99 index = floor(0.99*25) = 24 -> 25ms.
	times := make([]float64, 25)
	for i := range times {
		times[i] = float64(i + 1)
	}
	s := Summary{Successful: 25, Times: times}
	stats := s.ComputeStats()

	require.True(t, stats.HasTail)
	assert.Equal(t, 24.0, stats.P95)
	assert.Equal(t, 25.0, stats.P99)
	assert.Equal(t, 13.0, stats.P50)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 25.0, stats.Max)
}

func TestComputeStatsTailThreshold(t *testing.T) {
	times := make([]float64, TailSampleCount-1)
	for i := range times {
		times[i] = float64(i)
	}
	s := Summary{Successful: len(times), Times: times}
	assert.False(t, s.ComputeStats().HasTail)

	s.Times = append(s.Times, float64(len(times)))
	s.Successful++
	assert.True(t, s.ComputeStats().HasTail)
}

func TestComputeStatsIgnoresCompletionOrder(t *testing.T) {
	forward := make([]float64, 30)
	backward := make([]float64, 30)
	for i := range forward {
		forward[i] = float64(i + 1)
		backward[len(backward)-1-i] = float64(i + 1)
	}

	a := Summary{Successful: 30, Times: forward}.ComputeStats()
	b := Summary{Successful: 30, Times: backward}.ComputeStats()
	assert.Equal(t, a, b)
}

func TestQPS(t *testing.T) {
	s := Summary{Successful: 50, TotalWallMs: 2000}
	assert.Equal(t, 25.0, s.QPS())

	assert.Zero(t, Summary{Successful: 10}.QPS())
}
