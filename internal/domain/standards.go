package domain

// Reference thresholds for each vital sign. These are the single source of
// truth consumed by the evaluators and asserted against in tests; they are
// never overridden at runtime.

// BMI thresholds (Japan Society for the Study of Obesity classification).
const (
	BMIUnderweight float64 = 18.5
	BMINormalMax   float64 = 24.9
	BMIObese       float64 = 30.0
)

// Blood pressure thresholds in mmHg (JSH classification).
const (
	BPNormalSystolic     float64 = 129
	BPNormalDiastolic    float64 = 84
	BPStage1SystolicMin  float64 = 140
	BPStage1SystolicMax  float64 = 159
	BPStage1DiastolicMin float64 = 90
	BPStage1DiastolicMax float64 = 99
	BPStage2Systolic     float64 = 160
	BPStage2Diastolic    float64 = 100
)

// Heart rate thresholds in bpm.
const (
	HRBradycardiaSevere float64 = 50
	HRBradycardiaMild   float64 = 59
	HRNormalMin         float64 = 60
	HRNormalMax         float64 = 100
	HRTachycardiaMild   float64 = 119
	HRTachycardiaSevere float64 = 120
)

// Axillary temperature thresholds in degrees Celsius. The mild-fever band
// intentionally overlaps the top of the normal band; evaluation order decides
// the tie (see EvaluateTemperature).
const (
	TempNormalMin    float64 = 36.5
	TempNormalMax    float64 = 37.2
	TempMildFeverMin float64 = 37.0
	TempMildFeverMax float64 = 37.4
	TempFever        float64 = 37.5
	TempHighFever    float64 = 38.0
)

// Fasting blood glucose thresholds in mg/dL.
const (
	GlucoseNormalMin      float64 = 70
	GlucoseNormalMax      float64 = 109
	GlucosePrediabetesMin float64 = 110
	GlucosePrediabetesMax float64 = 125
	GlucoseDiabetes       float64 = 126
)

// Field names a validated record may carry.
const (
	FieldWeight       = "weight"
	FieldSystolic     = "bloodPressureSystolic"
	FieldDiastolic    = "bloodPressureDiastolic"
	FieldHeartRate    = "heartRate"
	FieldTemperature  = "temperature"
	FieldBloodGlucose = "bloodGlucose"
	FieldHeight       = "height"
)

// Range is the accepted window and decimal precision for one input field.
type Range struct {
	Min      float64
	Max      float64
	Decimals int
	Label    string
}

// Ranges holds the validation window for every numeric input field.
var Ranges = map[string]Range{
	FieldWeight:       {Min: 10, Max: 300, Decimals: 1, Label: "weight"},
	FieldSystolic:     {Min: 50, Max: 250, Decimals: 0, Label: "systolic blood pressure"},
	FieldDiastolic:    {Min: 30, Max: 150, Decimals: 0, Label: "diastolic blood pressure"},
	FieldHeartRate:    {Min: 30, Max: 200, Decimals: 0, Label: "heart rate"},
	FieldTemperature:  {Min: 34.0, Max: 42.0, Decimals: 1, Label: "temperature"},
	FieldBloodGlucose: {Min: 30, Max: 600, Decimals: 0, Label: "blood glucose"},
	FieldHeight:       {Min: 100, Max: 250, Decimals: 1, Label: "height"},
}

// Unit returns the display unit for a metric.
func (m Metric) Unit() string {
	switch m {
	case MetricWeight:
		return "kg"
	case MetricBloodPressure:
		return "mmHg"
	case MetricHeartRate:
		return "bpm"
	case MetricTemperature:
		return "°C"
	case MetricBloodGlucose:
		return "mg/dL"
	}
	return ""
}
