package app_test

import (
	"context"
	"testing"
	"time"

	"healthlog/internal/app"
	"healthlog/internal/domain"
)

// descRecords builds a newest-first collection with the given weights, one
// per day, matching the repository's ordering contract.
func descRecords(now time.Time, weights ...float64) []domain.HealthRecord {
	records := make([]domain.HealthRecord, len(weights))
	for i, w := range weights {
		v := w
		records[i] = domain.HealthRecord{
			Timestamp: now.AddDate(0, 0, -i),
			Weight:    &v,
		}
	}
	return records
}

func TestTrendAnalyze_UnknownMetric(t *testing.T) {
	svc := app.NewTrendService(&mockRecordRepo{}, &mockSettingsRepo{})
	if _, err := svc.Analyze(context.Background(), "steps", 7); err == nil {
		t.Fatal("expected error for unknown metric")
	}
}

func TestTrendAnalyze_ChronologicalPoints(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	// Newest first: 72 today, 71 yesterday, 70 the day before.
	records := &mockRecordRepo{
		listByFn: func(_ context.Context, _ int) ([]domain.HealthRecord, error) {
			return descRecords(now, 72, 71, 70), nil
		},
	}
	svc := app.NewTrendService(records, &mockSettingsRepo{})

	trend, err := svc.Analyze(context.Background(), domain.MetricWeight, 7)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(trend.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(trend.Points))
	}
	if trend.Points[0].Value != 70 || trend.Points[2].Value != 72 {
		t.Errorf("points not oldest-to-newest: %v, %v", trend.Points[0].Value, trend.Points[2].Value)
	}
	if trend.Unit != "kg" {
		t.Errorf("unit = %q; want kg", trend.Unit)
	}
}

func TestTrendAnalyze_SkipsRecordsWithoutMetric(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	records := &mockRecordRepo{
		listByFn: func(_ context.Context, _ int) ([]domain.HealthRecord, error) {
			hr := 65.0
			return []domain.HealthRecord{
				{Timestamp: now, Weight: f(70)},
				{Timestamp: now.AddDate(0, 0, -1), HeartRate: &hr},
			}, nil
		},
	}
	svc := app.NewTrendService(records, &mockSettingsRepo{})

	trend, err := svc.Analyze(context.Background(), domain.MetricWeight, 0)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(trend.Points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(trend.Points))
	}
}

func TestTrendAnalyze_NoData(t *testing.T) {
	svc := app.NewTrendService(&mockRecordRepo{}, &mockSettingsRepo{})
	trend, err := svc.Analyze(context.Background(), domain.MetricWeight, 7)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if trend.Stats != nil {
		t.Errorf("expected nil stats with no data, got %+v", trend.Stats)
	}
	if len(trend.Points) != 0 {
		t.Errorf("expected no points, got %d", len(trend.Points))
	}
}

func TestTrendAnalyze_Direction(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	// Newest first, so chronological order is 10,10,10,20,20,20.
	records := &mockRecordRepo{
		listByFn: func(_ context.Context, _ int) ([]domain.HealthRecord, error) {
			return descRecords(now, 20, 20, 20, 10, 10, 10), nil
		},
	}
	svc := app.NewTrendService(records, &mockSettingsRepo{})

	trend, err := svc.Analyze(context.Background(), domain.MetricWeight, 0)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if trend.Stats == nil || trend.Stats.Trend != domain.TrendUp {
		t.Fatalf("expected upward trend, got %+v", trend.Stats)
	}
	if trend.Stats.Average != 15 || trend.Stats.Max != 20 || trend.Stats.Min != 10 {
		t.Errorf("stats = %+v; want avg 15, max 20, min 10", trend.Stats)
	}
}

func TestTrendAnalyze_PointStatusUsesHeight(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	records := &mockRecordRepo{
		listByFn: func(_ context.Context, _ int) ([]domain.HealthRecord, error) {
			return descRecords(now, 100), nil
		},
	}
	settings := &mockSettingsRepo{
		getFn: func(_ context.Context) (domain.UserSettings, error) {
			return domain.UserSettings{Height: f(170)}, nil
		},
	}
	svc := app.NewTrendService(records, settings)

	trend, err := svc.Analyze(context.Background(), domain.MetricWeight, 0)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if trend.Points[0].Status != domain.StatusDanger {
		t.Errorf("status = %v; want danger for BMI %v", trend.Points[0].Status, domain.CalculateBMI(100, 170))
	}
}
