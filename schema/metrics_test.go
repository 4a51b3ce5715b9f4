package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeModelAccuraciesKeepsPayloadOrder(t *testing.T) {
	payload := `{"XGBoost": 0.7397, "Random Forest": 0.7301, "KNN": 0.6855, "SVC": 0.7288}`

	accuracies, err := DecodeModelAccuracies(strings.NewReader(payload))
	assert.Nil(t, err, "wrong DecodeModelAccuracies")

	assert.Equal(t, ModelAccuracies{
		{Name: "XGBoost", Accuracy: 0.7397},
		{Name: "Random Forest", Accuracy: 0.7301},
		{Name: "KNN", Accuracy: 0.6855},
		{Name: "SVC", Accuracy: 0.7288},
	}, accuracies)
}

func TestDecodeModelAccuraciesErrorMarker(t *testing.T) {
	_, err := DecodeModelAccuracies(strings.NewReader(`{"error": "Metrics not found"}`))
	assert.True(t, errors.Is(err, ErrNoData), "expected no-data marker")
}

func TestDecodeModelAccuraciesNotAnObject(t *testing.T) {
	_, err := DecodeModelAccuracies(strings.NewReader(`[0.7, 0.8]`))
	assert.NotNil(t, err)
}

func TestDecodeModelAccuraciesNonNumericValue(t *testing.T) {
	_, err := DecodeModelAccuracies(strings.NewReader(`{"XGBoost": "great"}`))

	var invalid *InvalidPayloadError
	assert.True(t, errors.As(err, &invalid), "expected typed decode failure")
}

func TestDecodeModelAccuraciesOutOfRange(t *testing.T) {
	_, err := DecodeModelAccuracies(strings.NewReader(`{"XGBoost": 1.2}`))

	var invalid *InvalidPayloadError
	assert.True(t, errors.As(err, &invalid), "expected typed decode failure")
}

func TestConfusionMatrixTotal(t *testing.T) {
	m := ConfusionMatrix{TN: 5454, FP: 1550, FN: 2093, TP: 4903}
	assert.Equal(t, 14000, m.Total())
}

func validDetailedMetrics() DetailedMetrics {
	return DetailedMetrics{
		Accuracy:  0.7397,
		Precision: 0.7598,
		Recall:    0.7008,
		F1Score:   0.730,
		ConfusionMatrix: ConfusionMatrix{
			TN: 5454, FP: 1550, FN: 2093, TP: 4903,
		},
		ROCCurve: []ROCPoint{
			{X: 0, Y: 0}, {X: 0.5, Y: 0.8}, {X: 1, Y: 1},
		},
		ROCAUC: 0.805,
		FeatureImportance: []FeatureWeight{
			{Name: "Systolic BP", Value: 0.247},
		},
	}
}

func TestDetailedMetricsValid(t *testing.T) {
	d := validDetailedMetrics()
	assert.Nil(t, d.Validate())
}

func TestDetailedMetricsRateOutOfRange(t *testing.T) {
	d := validDetailedMetrics()
	d.Precision = 1.5
	assert.NotNil(t, d.Validate())
}

func TestDetailedMetricsNegativeCount(t *testing.T) {
	d := validDetailedMetrics()
	d.ConfusionMatrix.FN = -1
	assert.NotNil(t, d.Validate())
}

func TestDetailedMetricsROCNotMonotonic(t *testing.T) {
	d := validDetailedMetrics()
	d.ROCCurve = []ROCPoint{{X: 0.5, Y: 0.5}, {X: 0.2, Y: 0.8}}
	assert.NotNil(t, d.Validate())
}

func TestDetailedMetricsFeatureWeightOutOfRange(t *testing.T) {
	d := validDetailedMetrics()
	d.FeatureImportance = []FeatureWeight{{Name: "Age", Value: 24.7}}
	assert.NotNil(t, d.Validate())
}

func TestPredictionResultValidate(t *testing.T) {
	assert.Nil(t, PredictionResult{Prediction: 1, Risk: "High", Probability: 0.82}.Validate())
	assert.NotNil(t, PredictionResult{Prediction: 2, Probability: 0.5}.Validate())
	assert.NotNil(t, PredictionResult{Prediction: 0, Probability: -0.1}.Validate())
}

func TestRiskLabel(t *testing.T) {
	assert.Equal(t, "High", RiskLabel(1))
	assert.Equal(t, "Low", RiskLabel(0))
}
