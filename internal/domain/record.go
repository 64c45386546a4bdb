// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrRecordNotFound reports a lookup or update against a timestamp with no
// matching record.
var ErrRecordNotFound = errors.New("record not found")

// Metric identifies one of the tracked vital signs.
type Metric string

// Tracked metrics. MetricBloodPressure covers the systolic/diastolic pair.
const (
	MetricWeight        Metric = "weight"
	MetricBMI           Metric = "bmi"
	MetricBloodPressure Metric = "bloodPressure"
	MetricHeartRate     Metric = "heartRate"
	MetricTemperature   Metric = "temperature"
	MetricBloodGlucose  Metric = "bloodGlucose"
)

// HealthRecord is a single measurement snapshot. The timestamp of the
// measurement doubles as the record's unique key; any non-empty subset of the
// measurement fields may be populated.
type HealthRecord struct {
	Timestamp time.Time `json:"timestamp"`

	Weight *float64 `json:"weight,omitempty"`
	BMI    *float64 `json:"bmi,omitempty"`

	BloodPressureSystolic  *float64 `json:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic *float64 `json:"bloodPressureDiastolic,omitempty"`

	HeartRate    *float64 `json:"heartRate,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	BloodGlucose *float64 `json:"bloodGlucose,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordUpdate carries a partial set of field changes for an existing record.
// Nil fields are left untouched. Timestamp and CreatedAt are not part of an
// update; they are immutable after creation.
type RecordUpdate struct {
	Weight                 *float64 `json:"weight,omitempty"`
	BMI                    *float64 `json:"bmi,omitempty"`
	BloodPressureSystolic  *float64 `json:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic *float64 `json:"bloodPressureDiastolic,omitempty"`
	HeartRate              *float64 `json:"heartRate,omitempty"`
	Temperature            *float64 `json:"temperature,omitempty"`
	BloodGlucose           *float64 `json:"bloodGlucose,omitempty"`
}

// HasMeasurement reports whether at least one measurement field is set.
func (r *HealthRecord) HasMeasurement() bool {
	return r.Weight != nil ||
		r.BloodPressureSystolic != nil ||
		r.BloodPressureDiastolic != nil ||
		r.HeartRate != nil ||
		r.Temperature != nil ||
		r.BloodGlucose != nil
}

// Value returns the record's value for the given metric, or nil when the
// metric is not populated. Blood pressure reports the systolic value.
func (r *HealthRecord) Value(m Metric) *float64 {
	switch m {
	case MetricWeight:
		return r.Weight
	case MetricBMI:
		return r.BMI
	case MetricBloodPressure:
		return r.BloodPressureSystolic
	case MetricHeartRate:
		return r.HeartRate
	case MetricTemperature:
		return r.Temperature
	case MetricBloodGlucose:
		return r.BloodGlucose
	}
	return nil
}

// Gender is the optional self-reported gender in UserSettings.
type Gender string

// Recognised Gender values.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// UserSettings is the single per-installation settings value.
type UserSettings struct {
	Height             *float64 `json:"height,omitempty"` // cm, used for BMI
	Age                *int     `json:"age,omitempty"`
	Gender             Gender   `json:"gender,omitempty"`
	DisclaimerAccepted bool     `json:"disclaimerAccepted"`
}

// DefaultSettings returns the settings value used before the user has saved
// anything.
func DefaultSettings() UserSettings {
	return UserSettings{DisclaimerAccepted: false}
}

// SettingsUpdate carries a partial settings change; nil fields keep their
// current value.
type SettingsUpdate struct {
	Height             *float64 `json:"height,omitempty"`
	Age                *int     `json:"age,omitempty"`
	Gender             *Gender  `json:"gender,omitempty"`
	DisclaimerAccepted *bool    `json:"disclaimerAccepted,omitempty"`
}

// RecordRepository is the port for health record persistence.
type RecordRepository interface {
	List(ctx context.Context) ([]HealthRecord, error)
	ListByPeriod(ctx context.Context, days int) ([]HealthRecord, error)
	Latest(ctx context.Context) (*HealthRecord, error)
	Add(ctx context.Context, record HealthRecord) error
	Update(ctx context.Context, timestamp time.Time, updates RecordUpdate) error
	Delete(ctx context.Context, timestamp time.Time) error
}

// SettingsRepository is the port for user settings persistence.
type SettingsRepository interface {
	Get(ctx context.Context) (UserSettings, error)
	Save(ctx context.Context, settings UserSettings) error
	ClearAll(ctx context.Context) error
}
