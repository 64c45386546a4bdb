package app

import (
	"context"

	"healthlog/internal/domain"
)

// MetricEvaluation pairs a metric with its classification.
type MetricEvaluation struct {
	Metric     domain.Metric           `json:"metric"`
	Evaluation domain.HealthEvaluation `json:"evaluation"`
}

// RecordEvaluation is the full classification of one record.
type RecordEvaluation struct {
	Timestamp   string              `json:"timestamp"`
	Evaluations []MetricEvaluation  `json:"evaluations"`
	Overall     domain.HealthStatus `json:"overall"`
}

// EvaluationService classifies records against the reference standards.
type EvaluationService struct {
	records  domain.RecordRepository
	settings domain.SettingsRepository
}

// NewEvaluationService creates an EvaluationService backed by the given
// repositories.
func NewEvaluationService(records domain.RecordRepository, settings domain.SettingsRepository) *EvaluationService {
	return &EvaluationService{records: records, settings: settings}
}

// EvaluateRecord classifies every populated metric of a record and reduces
// them to an overall severity. The stored height drives the weight/BMI
// evaluation; without it the weight degrades to a recorded-only result.
func EvaluateRecord(record domain.HealthRecord, settings domain.UserSettings) RecordEvaluation {
	var evals []MetricEvaluation

	if record.Weight != nil {
		evals = append(evals, MetricEvaluation{
			Metric:     domain.MetricWeight,
			Evaluation: domain.EvaluateWeight(*record.Weight, settings.Height),
		})
	}
	if record.BloodPressureSystolic != nil && record.BloodPressureDiastolic != nil {
		evals = append(evals, MetricEvaluation{
			Metric:     domain.MetricBloodPressure,
			Evaluation: domain.EvaluateBloodPressure(*record.BloodPressureSystolic, *record.BloodPressureDiastolic),
		})
	}
	if record.HeartRate != nil {
		evals = append(evals, MetricEvaluation{
			Metric:     domain.MetricHeartRate,
			Evaluation: domain.EvaluateHeartRate(*record.HeartRate),
		})
	}
	if record.Temperature != nil {
		evals = append(evals, MetricEvaluation{
			Metric:     domain.MetricTemperature,
			Evaluation: domain.EvaluateTemperature(*record.Temperature),
		})
	}
	if record.BloodGlucose != nil {
		evals = append(evals, MetricEvaluation{
			Metric:     domain.MetricBloodGlucose,
			Evaluation: domain.EvaluateBloodGlucose(*record.BloodGlucose),
		})
	}

	flat := make([]domain.HealthEvaluation, len(evals))
	for i, e := range evals {
		flat[i] = e.Evaluation
	}

	return RecordEvaluation{
		Timestamp:   record.Timestamp.Format(timestampLayout),
		Evaluations: evals,
		Overall:     domain.OverallStatus(flat),
	}
}

// EvaluateLatest classifies the newest record. Returns nil when there are no
// records yet.
func (s *EvaluationService) EvaluateLatest(ctx context.Context) (*RecordEvaluation, error) {
	record, err := s.records.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	eval := EvaluateRecord(*record, settings)
	return &eval, nil
}
