// Package codec maps the assessment form's human-readable values onto the
// numeric codes the prediction service was trained against.
package codec

import (
	"fmt"

	"github.com/cardioguard/cardioguard-api/schema"
)

// ErrOutOfDomain marks an enum value the form cannot legally produce.
// Hitting it means the form and the codec have drifted apart, so it is
// surfaced loudly instead of being coerced to a default.
var ErrOutOfDomain = fmt.Errorf("value outside the form domain")

// Encode derives the service payload from the form state. It is pure and
// total over every value the form widgets can produce; numeric fields pass
// through without rounding or unit conversion.
func Encode(in schema.HealthAssessmentInput) (schema.PredictionRequestPayload, error) {
	gender, err := encodeGender(in.Gender)
	if err != nil {
		return schema.PredictionRequestPayload{}, err
	}

	cholesterol, err := encodeLevel("cholesterol", in.Cholesterol)
	if err != nil {
		return schema.PredictionRequestPayload{}, err
	}

	glucose, err := encodeLevel("glucose", in.Glucose)
	if err != nil {
		return schema.PredictionRequestPayload{}, err
	}

	return schema.PredictionRequestPayload{
		Gender:      gender,
		Age:         in.Age,
		Height:      in.Height,
		Weight:      in.Weight,
		SystolicBP:  in.SystolicBP,
		DiastolicBP: in.DiastolicBP,
		Cholesterol: cholesterol,
		Glucose:     glucose,
		Smoke:       encodeFlag(in.Smoker),
		Alcohol:     encodeFlag(in.Alcohol),
		Active:      encodeActivity(in.Activity),
		ModelName:   in.ModelName,
	}, nil
}

func encodeGender(g schema.Gender) (int, error) {
	switch g {
	case schema.GenderFemale:
		return 1, nil
	case schema.GenderMale:
		return 2, nil
	default:
		return 0, fmt.Errorf("gender %q: %w", g, ErrOutOfDomain)
	}
}

func encodeLevel(field string, l schema.Level) (int, error) {
	switch l {
	case schema.LevelLow:
		return 1, nil
	case schema.LevelNormal:
		return 2, nil
	case schema.LevelHigh:
		return 3, nil
	default:
		return 0, fmt.Errorf("%s %q: %w", field, l, ErrOutOfDomain)
	}
}

func encodeFlag(set bool) int {
	if set {
		return 1
	}
	return 0
}

// Sedentary encodes to 0, any other activity to 1.
func encodeActivity(a schema.Activity) int {
	if a == schema.ActivitySedentary {
		return 0
	}
	return 1
}
