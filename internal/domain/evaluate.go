package domain

// HealthStatus is the severity tier assigned to a measurement.
type HealthStatus string

// Severity tiers, from least to most severe.
const (
	StatusNormal  HealthStatus = "normal"
	StatusWarning HealthStatus = "warning"
	StatusDanger  HealthStatus = "danger"
)

// HealthEvaluation is the classification of a single measurement. Advice is
// empty for normal results except for the set-height reminder on weight.
type HealthEvaluation struct {
	Status  HealthStatus `json:"status"`
	Value   float64      `json:"value"`
	Message string       `json:"message"`
	Advice  string       `json:"advice,omitempty"`
}

// band maps a predicate over the measurement to a classification. Each
// evaluator walks its bands top to bottom and the first match wins, so band
// order encodes clinical precedence; this matters where bands overlap
// (temperature) and must not be reordered.
type band struct {
	match   func(v float64) bool
	status  HealthStatus
	message string
	advice  string
}

func classify(v float64, bands []band) HealthEvaluation {
	for _, b := range bands {
		if b.match(v) {
			return HealthEvaluation{Status: b.status, Value: v, Message: b.message, Advice: b.advice}
		}
	}
	// The last band of every table matches unconditionally.
	panic("domain: classify: no band matched")
}

// CalculateBMI computes the body mass index from weight in kg and height in cm.
func CalculateBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

var bmiBands = []band{
	{func(v float64) bool { return v < BMIUnderweight }, StatusWarning, "underweight",
		"Eat balanced, nutritious meals and get moderate exercise."},
	{func(v float64) bool { return v <= BMINormalMax }, StatusNormal, "normal", ""},
	{func(v float64) bool { return v < BMIObese }, StatusWarning, "obesity (class 1)",
		"Manage your weight with a balanced diet and regular exercise."},
	{func(v float64) bool { return true }, StatusDanger, "obesity (class 2+)",
		"Health risks are elevated. Consider consulting a medical professional."},
}

// EvaluateBMI classifies a body mass index value.
func EvaluateBMI(bmi float64) HealthEvaluation {
	return classify(bmi, bmiBands)
}

// EvaluateWeight classifies a weight measurement via BMI. When height is
// unknown no BMI can be derived, so the weight is accepted as normal with a
// reminder to set the height.
func EvaluateWeight(weightKg float64, heightCm *float64) HealthEvaluation {
	if heightCm == nil || *heightCm == 0 {
		return HealthEvaluation{
			Status:  StatusNormal,
			Value:   weightKg,
			Message: "weight recorded",
			Advice:  "Set your height in settings to enable automatic BMI calculation.",
		}
	}
	e := EvaluateBMI(CalculateBMI(weightKg, *heightCm))
	e.Value = weightKg
	return e
}

// bpBand is a band over the systolic/diastolic pair.
type bpBand struct {
	match   func(sys, dia float64) bool
	status  HealthStatus
	message string
	advice  string
}

var bloodPressureBands = []bpBand{
	{func(s, d float64) bool { return s <= BPNormalSystolic && d <= BPNormalDiastolic },
		StatusNormal, "normal blood pressure", ""},
	{func(s, d float64) bool { return s >= BPStage2Systolic || d >= BPStage2Diastolic },
		StatusDanger, "stage 2+ hypertension",
		"Blood pressure is high. See a medical professional soon."},
	{func(s, d float64) bool {
		return (s >= BPStage1SystolicMin && s <= BPStage1SystolicMax) ||
			(d >= BPStage1DiastolicMin && d <= BPStage1DiastolicMax)
	}, StatusWarning, "stage 1 hypertension",
		"Review your lifestyle habits and measure your blood pressure regularly."},
	// Residual band: above normal but below the stage-1 thresholds.
	{func(s, d float64) bool { return true }, StatusWarning, "high-normal blood pressure",
		"Watch your salt intake and keep up moderate exercise."},
}

// EvaluateBloodPressure classifies a systolic/diastolic pair. The reported
// value is the systolic reading.
func EvaluateBloodPressure(systolic, diastolic float64) HealthEvaluation {
	for _, b := range bloodPressureBands {
		if b.match(systolic, diastolic) {
			return HealthEvaluation{Status: b.status, Value: systolic, Message: b.message, Advice: b.advice}
		}
	}
	panic("domain: EvaluateBloodPressure: no band matched")
}

var heartRateBands = []band{
	{func(v float64) bool { return v >= HRNormalMin && v <= HRNormalMax },
		StatusNormal, "normal", ""},
	{func(v float64) bool { return v < HRBradycardiaSevere }, StatusDanger, "bradycardia",
		"Heart rate is too low. See a medical professional."},
	{func(v float64) bool { return v <= HRBradycardiaMild }, StatusWarning, "mild bradycardia",
		"Heart rate is a little low. Watch for changes in how you feel."},
	{func(v float64) bool { return v <= HRTachycardiaMild }, StatusWarning, "mild tachycardia",
		"Heart rate is a little high. Mind stress and fatigue."},
	{func(v float64) bool { return true }, StatusDanger, "tachycardia",
		"Heart rate is too high. See a medical professional."},
}

// EvaluateHeartRate classifies a resting heart rate in bpm.
func EvaluateHeartRate(bpm float64) HealthEvaluation {
	return classify(bpm, heartRateBands)
}

// Mild fever is checked before the normal band on purpose: the two bands
// overlap at 37.0-37.2 and the overlap must classify as mild fever.
var temperatureBands = []band{
	{func(v float64) bool { return v >= TempHighFever }, StatusDanger, "high fever",
		"You have a fever. See a medical professional."},
	{func(v float64) bool { return v >= TempFever }, StatusDanger, "fever",
		"You have a fever. Rest and monitor your condition."},
	{func(v float64) bool { return v >= TempMildFeverMin && v <= TempMildFeverMax },
		StatusWarning, "mild fever",
		"Temperature is a little high. Watch for changes in how you feel."},
	{func(v float64) bool { return v >= TempNormalMin && v <= TempNormalMax },
		StatusNormal, "normal", ""},
	{func(v float64) bool { return true }, StatusWarning, "low body temperature",
		"Temperature is low. Keep warm and rest."},
}

// EvaluateTemperature classifies an axillary temperature in degrees Celsius.
func EvaluateTemperature(celsius float64) HealthEvaluation {
	return classify(celsius, temperatureBands)
}

var bloodGlucoseBands = []band{
	{func(v float64) bool { return v >= GlucoseDiabetes }, StatusDanger, "diabetic range",
		"Blood glucose is high. See a medical professional."},
	{func(v float64) bool { return v >= GlucosePrediabetesMin && v <= GlucosePrediabetesMax },
		StatusWarning, "borderline high",
		"Blood glucose is a little high. Review your eating habits."},
	{func(v float64) bool { return v >= GlucoseNormalMin && v <= GlucoseNormalMax },
		StatusNormal, "normal", ""},
	{func(v float64) bool { return true }, StatusWarning, "hypoglycemia",
		"Blood glucose is low. Take some sugar."},
}

// EvaluateBloodGlucose classifies a fasting blood glucose value in mg/dL.
func EvaluateBloodGlucose(mgdl float64) HealthEvaluation {
	return classify(mgdl, bloodGlucoseBands)
}

// OverallStatus reduces a set of evaluations to the most severe tier present.
// The precedence danger > warning > normal does not depend on input order.
func OverallStatus(evaluations []HealthEvaluation) HealthStatus {
	status := StatusNormal
	for _, e := range evaluations {
		switch e.Status {
		case StatusDanger:
			return StatusDanger
		case StatusWarning:
			status = StatusWarning
		}
	}
	return status
}
