package schema

import "time"

type Gender string

const (
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
)

// Level is the three-step scale the form uses for cholesterol and glucose.
type Level string

const (
	LevelLow    Level = "Low"
	LevelNormal Level = "Normal"
	LevelHigh   Level = "High"
)

type Activity string

const (
	ActivitySedentary Activity = "Sedentary"
	ActivityActive    Activity = "Active"
)

// SupportedModels lists the model identifiers the prediction service serves,
// in the order the form presents them.
var SupportedModels = []string{
	"XGBoost",
	"Random Forest",
	"Logistic Regression",
	"SVC",
	"KNN",
	"Decision Tree",
}

func IsSupportedModel(name string) bool {
	for _, m := range SupportedModels {
		if m == name {
			return true
		}
	}
	return false
}

// HealthAssessmentInput is the assessment form state in its human-readable
// domain values. It is owned by the form view: created with the defaults
// below, edited field by field and read once at submission time.
type HealthAssessmentInput struct {
	Gender      Gender   `json:"gender" binding:"oneof=Female Male"`
	Age         int      `json:"age" binding:"min=10,max=100"`
	Height      int      `json:"height" binding:"min=50,max=250"`
	Weight      float64  `json:"weight" binding:"min=30,max=200"`
	SystolicBP  int      `json:"ap_hi"`
	DiastolicBP int      `json:"ap_lo"`
	Cholesterol Level    `json:"cholesterol" binding:"oneof=Low Normal High"`
	Glucose     Level    `json:"glucose" binding:"oneof=Low Normal High"`
	Smoker      bool     `json:"smoke"`
	Alcohol     bool     `json:"alco"`
	Activity    Activity `json:"active" binding:"oneof=Sedentary Active"`
	ModelName   string   `json:"model_name"`
}

// DefaultAssessment returns the form's initial state.
func DefaultAssessment() HealthAssessmentInput {
	return HealthAssessmentInput{
		Gender:      GenderFemale,
		Age:         50,
		Height:      165,
		Weight:      70.0,
		SystolicBP:  120,
		DiastolicBP: 80,
		Cholesterol: LevelNormal,
		Glucose:     LevelNormal,
		Smoker:      false,
		Alcohol:     false,
		Activity:    ActivityActive,
		ModelName:   "XGBoost",
	}
}

// PredictionRequestPayload is the numeric encoding the prediction service
// consumes. It is derived from HealthAssessmentInput by codec.Encode,
// constructed fresh per submission and never persisted.
type PredictionRequestPayload struct {
	Gender      int     `json:"gender"`
	Age         int     `json:"age"`
	Height      int     `json:"height"`
	Weight      float64 `json:"weight"`
	SystolicBP  int     `json:"ap_hi"`
	DiastolicBP int     `json:"ap_lo"`
	Cholesterol int     `json:"cholesterol"`
	Glucose     int     `json:"glucose"`
	Smoke       int     `json:"smoke"`
	Alcohol     int     `json:"alco"`
	Active      int     `json:"active"`
	ModelName   string  `json:"model_name"`
}

// PredictionResult is the settled outcome of one prediction call. Exactly
// one instance is live at a time; it is replaced wholesale on the next
// submission. ID, ModelName and SettledAt are filled in by the
// orchestrator, the rest comes off the wire.
type PredictionResult struct {
	ID          string    `json:"id,omitempty"`
	Prediction  int       `json:"prediction"`
	Risk        string    `json:"risk"`
	Probability float64   `json:"probability"`
	ModelName   string    `json:"model_name,omitempty"`
	SettledAt   time.Time `json:"settled_at,omitempty"`
}

// Validate rejects results whose shape drifted from the service contract.
func (r PredictionResult) Validate() error {
	if r.Prediction != 0 && r.Prediction != 1 {
		return &InvalidPayloadError{Field: "prediction", Reason: "not a binary label"}
	}
	if r.Probability < 0 || r.Probability > 1 {
		return &InvalidPayloadError{Field: "probability", Reason: "outside [0, 1]"}
	}
	return nil
}

// RiskLabel maps the binary prediction to its human-readable label.
func RiskLabel(prediction int) string {
	if prediction == 1 {
		return "High"
	}
	return "Low"
}
