package app

import (
	"context"
	"errors"

	"healthlog/internal/domain"
)

// TrendService summarises a metric's history for charts and statistics.
type TrendService struct {
	records  domain.RecordRepository
	settings domain.SettingsRepository
}

// NewTrendService creates a TrendService backed by the given repositories.
func NewTrendService(records domain.RecordRepository, settings domain.SettingsRepository) *TrendService {
	return &TrendService{records: records, settings: settings}
}

// ChartPoint is one plotted value with its classification.
type ChartPoint struct {
	Timestamp string              `json:"timestamp"`
	Value     float64             `json:"value"`
	Status    domain.HealthStatus `json:"status"`
}

// MetricTrend is the chart series plus summary statistics for one metric over
// one period window.
type MetricTrend struct {
	Metric domain.Metric      `json:"metric"`
	Unit   string             `json:"unit"`
	Points []ChartPoint       `json:"points"`
	Stats  *domain.TrendStats `json:"stats"`
}

var validMetrics = map[domain.Metric]bool{
	domain.MetricWeight:        true,
	domain.MetricBMI:           true,
	domain.MetricBloodPressure: true,
	domain.MetricHeartRate:     true,
	domain.MetricTemperature:   true,
	domain.MetricBloodGlucose:  true,
}

// Analyze builds the oldest-to-newest chart series for a metric over the
// trailing period and computes its trend statistics. Records that do not
// carry the metric are skipped; Stats is nil when no values remain.
func (s *TrendService) Analyze(ctx context.Context, metric domain.Metric, days int) (*MetricTrend, error) {
	if !validMetrics[metric] {
		return nil, errors.New("unknown metric")
	}
	if days < 0 {
		return nil, errors.New("days must be >= 0")
	}

	records, err := s.records.ListByPeriod(ctx, days)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	// Records arrive newest first; charts and the trend comparison want
	// chronological order.
	var points []ChartPoint
	var values []float64
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		v := rec.Value(metric)
		if v == nil {
			continue
		}
		points = append(points, ChartPoint{
			Timestamp: rec.Timestamp.Format(timestampLayout),
			Value:     *v,
			Status:    pointStatus(rec, metric, settings),
		})
		values = append(values, *v)
	}

	return &MetricTrend{
		Metric: metric,
		Unit:   metric.Unit(),
		Points: points,
		Stats:  domain.AnalyzeTrend(values),
	}, nil
}

func pointStatus(rec domain.HealthRecord, metric domain.Metric, settings domain.UserSettings) domain.HealthStatus {
	switch metric {
	case domain.MetricWeight:
		return domain.EvaluateWeight(*rec.Weight, settings.Height).Status
	case domain.MetricBMI:
		return domain.EvaluateBMI(*rec.BMI).Status
	case domain.MetricBloodPressure:
		if rec.BloodPressureDiastolic == nil {
			// Half a reading cannot be classified.
			return domain.StatusNormal
		}
		return domain.EvaluateBloodPressure(*rec.BloodPressureSystolic, *rec.BloodPressureDiastolic).Status
	case domain.MetricHeartRate:
		return domain.EvaluateHeartRate(*rec.HeartRate).Status
	case domain.MetricTemperature:
		return domain.EvaluateTemperature(*rec.Temperature).Status
	case domain.MetricBloodGlucose:
		return domain.EvaluateBloodGlucose(*rec.BloodGlucose).Status
	}
	return domain.StatusNormal
}
