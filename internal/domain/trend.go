package domain

// TrendDirection is the coarse direction of a measurement series.
type TrendDirection string

// Trend directions.
const (
	TrendUp     TrendDirection = "up"
	TrendStable TrendDirection = "stable"
	TrendDown   TrendDirection = "down"
)

// TrendStats summarises a time-ordered series of one metric.
type TrendStats struct {
	Average float64        `json:"average"`
	Max     float64        `json:"max"`
	Min     float64        `json:"min"`
	Trend   TrendDirection `json:"trend"`
}

// trendWindow is how many values each end of the series contributes to the
// direction comparison; fewer than twice this many values reads as stable.
const trendWindow = 3

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// AnalyzeTrend computes average/max/min and a coarse direction for a series
// of values ordered oldest to newest. Returns nil for an empty series. The
// direction compares the mean of the first three values against the mean of
// the last three; a shift beyond 5% of the overall mean counts as movement.
func AnalyzeTrend(values []float64) *TrendStats {
	if len(values) == 0 {
		return nil
	}

	stats := TrendStats{
		Average: mean(values),
		Max:     values[0],
		Min:     values[0],
		Trend:   TrendStable,
	}
	for _, v := range values[1:] {
		if v > stats.Max {
			stats.Max = v
		}
		if v < stats.Min {
			stats.Min = v
		}
	}

	if len(values) >= 2*trendWindow {
		firstAvg := mean(values[:trendWindow])
		lastAvg := mean(values[len(values)-trendWindow:])
		diff := lastAvg - firstAvg
		threshold := 0.05 * stats.Average
		if threshold < 0 {
			threshold = -threshold
		}
		if diff > threshold {
			stats.Trend = TrendUp
		} else if diff < -threshold {
			stats.Trend = TrendDown
		}
	}

	return &stats
}
