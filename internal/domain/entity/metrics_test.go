package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifySeverity_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want Severity
	}{
		{0, SeverityLow},
		{0.01, SeverityLow},
		{1.00, SeverityLow},
		{1.01, SeverityMedium},
		{10.00, SeverityMedium},
		{10.01, SeverityHigh},
		{100, SeverityHigh},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ClassifySeverity(tt.pct), "pct=%v", tt.pct)
	}
}

func TestClassifySeverity_Monotonic(t *testing.T) {
	rank := map[Severity]int{SeverityLow: 0, SeverityMedium: 1, SeverityHigh: 2}
	prev := rank[ClassifySeverity(0)]
	for p := 0.0; p <= 100; p += 0.05 {
		cur := rank[ClassifySeverity(p)]
		require.GreaterOrEqual(t, cur, prev, "pct=%v", p)
		prev = cur
	}
}

func TestCoveragePercent(t *testing.T) {
	require.Equal(t, 0.0, CoveragePercent(0, 0, 0.01))
	require.Equal(t, 0.01, CoveragePercent(0, 100, 0.01))
	require.InDelta(t, 25.0, CoveragePercent(25, 100, 0.01), 1e-9)
	require.InDelta(t, 100.0, CoveragePercent(100, 100, 0.01), 1e-9)
}

func TestNewMetrics(t *testing.T) {
	m := NewMetrics(LeafFeatures{DiseasePercentage: 12.5, WiltingScore: 3, AvgCircularity: 0.4})
	require.Equal(t, SeverityHigh, m.Severity)
	require.Equal(t, 3, m.WiltingScore)
	require.Equal(t, 0.4, m.AvgCircularity)
}
