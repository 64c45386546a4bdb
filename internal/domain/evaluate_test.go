package domain_test

import (
	"math"
	"testing"

	"healthlog/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCalculateBMI(t *testing.T) {
	got := domain.CalculateBMI(70, 175)
	if !almostEqual(got, 22.857, 0.001) {
		t.Errorf("CalculateBMI(70, 175) = %v; want ~22.857", got)
	}
}

func TestEvaluateBMI(t *testing.T) {
	tests := []struct {
		name    string
		bmi     float64
		status  domain.HealthStatus
		message string
	}{
		{"underweight", 18.4, domain.StatusWarning, "underweight"},
		{"normal lower bound", 18.5, domain.StatusNormal, "normal"},
		{"normal upper bound", 24.9, domain.StatusNormal, "normal"},
		{"class 1 just above normal", 25.0, domain.StatusWarning, "obesity (class 1)"},
		{"class 1 upper", 29.9, domain.StatusWarning, "obesity (class 1)"},
		{"class 2 boundary", 30.0, domain.StatusDanger, "obesity (class 2+)"},
		{"class 2 high", 45.0, domain.StatusDanger, "obesity (class 2+)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.EvaluateBMI(tc.bmi)
			if got.Status != tc.status || got.Message != tc.message {
				t.Errorf("EvaluateBMI(%v) = %v %q; want %v %q", tc.bmi, got.Status, got.Message, tc.status, tc.message)
			}
			if got.Status != domain.StatusNormal && got.Advice == "" {
				t.Errorf("EvaluateBMI(%v): non-normal result should carry advice", tc.bmi)
			}
		})
	}
}

func TestEvaluateWeight_MatchesBMIEvaluation(t *testing.T) {
	heights := []float64{150, 162.5, 175, 190}
	weights := []float64{40, 55, 70, 85, 100, 140}
	for _, h := range heights {
		for _, w := range weights {
			height := h
			viaWeight := domain.EvaluateWeight(w, &height)
			viaBMI := domain.EvaluateBMI(domain.CalculateBMI(w, h))
			if viaWeight.Status != viaBMI.Status || viaWeight.Message != viaBMI.Message {
				t.Errorf("EvaluateWeight(%v, %v) = %v %q; EvaluateBMI gives %v %q",
					w, h, viaWeight.Status, viaWeight.Message, viaBMI.Status, viaBMI.Message)
			}
			if viaWeight.Value != w {
				t.Errorf("EvaluateWeight(%v, %v): value = %v; want the weight", w, h, viaWeight.Value)
			}
		}
	}
}

func TestEvaluateWeight_NoHeight(t *testing.T) {
	got := domain.EvaluateWeight(70, nil)
	if got.Status != domain.StatusNormal {
		t.Errorf("status = %v; want normal", got.Status)
	}
	if got.Message != "weight recorded" {
		t.Errorf("message = %q; want \"weight recorded\"", got.Message)
	}
	if got.Advice == "" {
		t.Error("expected a reminder advice to set height")
	}
}

func TestEvaluateBloodPressure(t *testing.T) {
	tests := []struct {
		name     string
		sys, dia float64
		status   domain.HealthStatus
		message  string
	}{
		{"normal", 120, 80, domain.StatusNormal, "normal blood pressure"},
		{"normal upper bounds", 129, 84, domain.StatusNormal, "normal blood pressure"},
		{"high-normal systolic", 135, 84, domain.StatusWarning, "high-normal blood pressure"},
		{"high-normal diastolic", 120, 89, domain.StatusWarning, "high-normal blood pressure"},
		{"stage 1 systolic", 140, 80, domain.StatusWarning, "stage 1 hypertension"},
		{"stage 1 diastolic", 120, 95, domain.StatusWarning, "stage 1 hypertension"},
		{"stage 1 upper", 159, 99, domain.StatusWarning, "stage 1 hypertension"},
		{"stage 2 systolic", 160, 80, domain.StatusDanger, "stage 2+ hypertension"},
		{"stage 2 diastolic", 120, 100, domain.StatusDanger, "stage 2+ hypertension"},
		{"stage 2 wins over stage 1 range", 165, 95, domain.StatusDanger, "stage 2+ hypertension"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.EvaluateBloodPressure(tc.sys, tc.dia)
			if got.Status != tc.status || got.Message != tc.message {
				t.Errorf("EvaluateBloodPressure(%v, %v) = %v %q; want %v %q",
					tc.sys, tc.dia, got.Status, got.Message, tc.status, tc.message)
			}
			if got.Value != tc.sys {
				t.Errorf("value = %v; want the systolic reading %v", got.Value, tc.sys)
			}
		})
	}
}

func TestEvaluateHeartRate(t *testing.T) {
	tests := []struct {
		name    string
		bpm     float64
		status  domain.HealthStatus
		message string
	}{
		{"normal lower", 60, domain.StatusNormal, "normal"},
		{"normal upper", 100, domain.StatusNormal, "normal"},
		{"severe bradycardia", 49, domain.StatusDanger, "bradycardia"},
		{"mild bradycardia lower", 50, domain.StatusWarning, "mild bradycardia"},
		{"mild bradycardia upper", 59, domain.StatusWarning, "mild bradycardia"},
		{"mild tachycardia lower", 101, domain.StatusWarning, "mild tachycardia"},
		{"mild tachycardia upper", 119, domain.StatusWarning, "mild tachycardia"},
		{"severe tachycardia", 120, domain.StatusDanger, "tachycardia"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.EvaluateHeartRate(tc.bpm)
			if got.Status != tc.status || got.Message != tc.message {
				t.Errorf("EvaluateHeartRate(%v) = %v %q; want %v %q", tc.bpm, got.Status, got.Message, tc.status, tc.message)
			}
		})
	}
}

func TestEvaluateTemperature(t *testing.T) {
	tests := []struct {
		name    string
		celsius float64
		status  domain.HealthStatus
		message string
	}{
		{"high fever", 38.0, domain.StatusDanger, "high fever"},
		{"fever", 37.5, domain.StatusDanger, "fever"},
		{"mild fever", 37.3, domain.StatusWarning, "mild fever"},
		// 37.0-37.2 sits in both the mild-fever and normal bands; the
		// mild-fever check runs first and must win.
		{"overlap low", 37.0, domain.StatusWarning, "mild fever"},
		{"overlap mid", 37.1, domain.StatusWarning, "mild fever"},
		{"overlap high", 37.2, domain.StatusWarning, "mild fever"},
		{"normal lower", 36.5, domain.StatusNormal, "normal"},
		{"normal upper", 36.9, domain.StatusNormal, "normal"},
		{"low temperature", 36.4, domain.StatusWarning, "low body temperature"},
		{"very low", 34.5, domain.StatusWarning, "low body temperature"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.EvaluateTemperature(tc.celsius)
			if got.Status != tc.status || got.Message != tc.message {
				t.Errorf("EvaluateTemperature(%v) = %v %q; want %v %q", tc.celsius, got.Status, got.Message, tc.status, tc.message)
			}
		})
	}
}

func TestEvaluateBloodGlucose(t *testing.T) {
	tests := []struct {
		name    string
		mgdl    float64
		status  domain.HealthStatus
		message string
	}{
		{"diabetic", 126, domain.StatusDanger, "diabetic range"},
		{"borderline lower", 110, domain.StatusWarning, "borderline high"},
		{"borderline upper", 125, domain.StatusWarning, "borderline high"},
		{"normal lower", 70, domain.StatusNormal, "normal"},
		{"normal upper", 109, domain.StatusNormal, "normal"},
		{"hypoglycemia", 69, domain.StatusWarning, "hypoglycemia"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.EvaluateBloodGlucose(tc.mgdl)
			if got.Status != tc.status || got.Message != tc.message {
				t.Errorf("EvaluateBloodGlucose(%v) = %v %q; want %v %q", tc.mgdl, got.Status, got.Message, tc.status, tc.message)
			}
		})
	}
}

func TestOverallStatus(t *testing.T) {
	normal := domain.HealthEvaluation{Status: domain.StatusNormal}
	warning := domain.HealthEvaluation{Status: domain.StatusWarning}
	danger := domain.HealthEvaluation{Status: domain.StatusDanger}

	tests := []struct {
		name  string
		evals []domain.HealthEvaluation
		want  domain.HealthStatus
	}{
		{"empty", nil, domain.StatusNormal},
		{"all normal", []domain.HealthEvaluation{normal, normal}, domain.StatusNormal},
		{"warning beats normal", []domain.HealthEvaluation{normal, warning}, domain.StatusWarning},
		{"danger beats warning", []domain.HealthEvaluation{warning, danger}, domain.StatusDanger},
		{"danger first", []domain.HealthEvaluation{danger, warning, normal}, domain.StatusDanger},
		{"danger last", []domain.HealthEvaluation{normal, warning, danger}, domain.StatusDanger},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.OverallStatus(tc.evals); got != tc.want {
				t.Errorf("OverallStatus = %v; want %v", got, tc.want)
			}
		})
	}
}
