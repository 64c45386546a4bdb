package domain

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// ValidationResult is the outcome of validating a candidate record. Errors
// holds every violated rule, in check order, phrased for direct display.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// validateRange checks a value against the named field's range. A nil value
// is fine; every field is optional on its own.
func validateRange(value *float64, field string) string {
	if value == nil {
		return ""
	}
	r := Ranges[field]
	if math.IsNaN(*value) || math.IsInf(*value, 0) {
		return fmt.Sprintf("%s must be a number", r.Label)
	}
	if *value < r.Min || *value > r.Max {
		return fmt.Sprintf("%s must be between %s and %s", r.Label, formatBound(r.Min), formatBound(r.Max))
	}
	return ""
}

// validateDecimals rejects values carrying more decimal places than the field
// allows. Excess precision is an error, never silently rounded.
func validateDecimals(value *float64, field string) string {
	if value == nil {
		return ""
	}
	r := Ranges[field]
	scaled := *value * math.Pow10(r.Decimals)
	if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
		if r.Decimals == 0 {
			return fmt.Sprintf("%s must be a whole number", r.Label)
		}
		return fmt.Sprintf("%s allows at most %d decimal place", r.Label, r.Decimals)
	}
	return ""
}

func validateField(value *float64, field string) string {
	if msg := validateRange(value, field); msg != "" {
		return msg
	}
	return validateDecimals(value, field)
}

// ValidateHeight checks a candidate height value from the settings form.
// Returns an empty string when the value is acceptable or absent.
func ValidateHeight(height *float64) string {
	return validateField(height, FieldHeight)
}

// ValidateTimestamp checks that a measurement instant is valid and not in the
// future relative to now.
func ValidateTimestamp(timestamp, now time.Time) string {
	if timestamp.IsZero() {
		return "timestamp is required"
	}
	if timestamp.After(now) {
		return "timestamp must not be in the future"
	}
	return ""
}

// ValidateRecord checks a candidate record against every input rule and
// collects all violations rather than stopping at the first.
func ValidateRecord(record HealthRecord, now time.Time) ValidationResult {
	var errs []string

	if msg := ValidateTimestamp(record.Timestamp, now); msg != "" {
		errs = append(errs, msg)
	}

	fields := []struct {
		value *float64
		field string
	}{
		{record.Weight, FieldWeight},
		{record.BloodPressureSystolic, FieldSystolic},
		{record.BloodPressureDiastolic, FieldDiastolic},
		{record.HeartRate, FieldHeartRate},
		{record.Temperature, FieldTemperature},
		{record.BloodGlucose, FieldBloodGlucose},
	}
	for _, f := range fields {
		if msg := validateField(f.value, f.field); msg != "" {
			errs = append(errs, msg)
		}
	}

	if record.BloodPressureSystolic != nil && record.BloodPressureDiastolic != nil {
		if *record.BloodPressureSystolic <= *record.BloodPressureDiastolic {
			errs = append(errs, "systolic blood pressure must be greater than diastolic blood pressure")
		}
	}

	if !record.HasMeasurement() {
		errs = append(errs, "at least one measurement is required")
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// ValidateUpdate checks the measurement fields of a partial update. Timestamp
// and completeness rules do not apply; an update touches an existing record.
func ValidateUpdate(updates RecordUpdate) ValidationResult {
	var errs []string

	fields := []struct {
		value *float64
		field string
	}{
		{updates.Weight, FieldWeight},
		{updates.BloodPressureSystolic, FieldSystolic},
		{updates.BloodPressureDiastolic, FieldDiastolic},
		{updates.HeartRate, FieldHeartRate},
		{updates.Temperature, FieldTemperature},
		{updates.BloodGlucose, FieldBloodGlucose},
	}
	for _, f := range fields {
		if msg := validateField(f.value, f.field); msg != "" {
			errs = append(errs, msg)
		}
	}

	if updates.BloodPressureSystolic != nil && updates.BloodPressureDiastolic != nil {
		if *updates.BloodPressureSystolic <= *updates.BloodPressureDiastolic {
			errs = append(errs, "systolic blood pressure must be greater than diastolic blood pressure")
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
