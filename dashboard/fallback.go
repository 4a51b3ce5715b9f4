package dashboard

import "github.com/cardioguard/cardioguard-api/schema"

// The fallback datasets below keep the dashboard populated when a metrics
// feed is down or returns the service's error marker. They mirror the last
// published evaluation of the deployed model.

// FallbackModelAccuracies is the accuracy-comparison fallback. The
// comparison chart has no meaningful stand-in values, so it renders empty
// rather than inventing per-model numbers.
func FallbackModelAccuracies() schema.ModelAccuracies {
	return schema.ModelAccuracies{}
}

// DefaultROCCurve is the 11-point monotonic reference curve from (0,0) to
// (1,1) substituted when a payload carries no ROC samples.
func DefaultROCCurve() []schema.ROCPoint {
	return []schema.ROCPoint{
		{X: 0, Y: 0},
		{X: 0.1, Y: 0.4},
		{X: 0.2, Y: 0.6},
		{X: 0.3, Y: 0.7},
		{X: 0.4, Y: 0.75},
		{X: 0.5, Y: 0.8},
		{X: 0.6, Y: 0.85},
		{X: 0.7, Y: 0.9},
		{X: 0.8, Y: 0.95},
		{X: 0.9, Y: 0.98},
		{X: 1, Y: 1},
	}
}

// FallbackDetailedMetrics is the detailed-performance fallback.
func FallbackDetailedMetrics() *schema.DetailedMetrics {
	return &schema.DetailedMetrics{
		Accuracy:  0.7397,
		Precision: 0.7598,
		Recall:    0.7008,
		F1Score:   0.730,
		ConfusionMatrix: schema.ConfusionMatrix{
			TN: 5454,
			FP: 1550,
			FN: 2093,
			TP: 4903,
		},
		ROCCurve: DefaultROCCurve(),
		ROCAUC:   0.805,
		FeatureImportance: []schema.FeatureWeight{
			{Name: "Systolic BP", Value: 0.247},
			{Name: "Diastolic BP", Value: 0.14},
			{Name: "Age", Value: 0.14},
			{Name: "Cholesterol", Value: 0.12},
			{Name: "Glucose", Value: 0.10},
			{Name: "Weight", Value: 0.08},
			{Name: "Active", Value: 0.07},
			{Name: "Smoke", Value: 0.05},
			{Name: "Alcohol", Value: 0.03},
			{Name: "Gender", Value: 0.02},
			{Name: "Height", Value: 0.003},
		},
	}
}
