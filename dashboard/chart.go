package dashboard

import (
	"math"

	"github.com/cardioguard/cardioguard-api/schema"
)

// FeatureSeriesLimit caps how many feature bars the dashboard shows.
const FeatureSeriesLimit = 10

// AccuracyBar is one bar of the model accuracy comparison chart, with the
// accuracy expressed as a percentage rounded to one decimal.
type AccuracyBar struct {
	Name     string  `json:"name"`
	Accuracy float64 `json:"accuracy"`
}

// FeatureBar is one bar of the feature importance chart, with the weight
// expressed as a percentage rounded to one decimal.
type FeatureBar struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ConfusionCells is the confusion matrix spread into chart cells, with the
// derived sample total.
type ConfusionCells struct {
	TN    int `json:"tn"`
	FP    int `json:"fp"`
	FN    int `json:"fn"`
	TP    int `json:"tp"`
	Total int `json:"total"`
}

// Summary is the KPI block, percentages rounded to two decimals and the
// f1 score to three.
type Summary struct {
	AccuracyPercent  float64 `json:"accuracy_percent"`
	PrecisionPercent float64 `json:"precision_percent"`
	RecallPercent    float64 `json:"recall_percent"`
	F1Score          float64 `json:"f1_score"`
}

// ToAccuracySeries scales accuracies to percentages, keeping the source
// payload's enumeration order.
func ToAccuracySeries(accuracies schema.ModelAccuracies) []AccuracyBar {
	series := make([]AccuracyBar, 0, len(accuracies))
	for _, a := range accuracies {
		series = append(series, AccuracyBar{
			Name:     a.Name,
			Accuracy: round1(a.Accuracy * 100),
		})
	}
	return series
}

// ToRocSeries passes the ROC samples through unchanged, substituting the
// reference curve when the snapshot carries none.
func ToRocSeries(detailed *schema.DetailedMetrics) []schema.ROCPoint {
	if detailed == nil || len(detailed.ROCCurve) == 0 {
		return DefaultROCCurve()
	}
	return detailed.ROCCurve
}

// ToFeatureSeries scales the first limit feature weights to percentages.
// It trusts the payload order: the service returns a magnitude-sorted
// list, and re-sorting here would only mask drift on its side.
func ToFeatureSeries(detailed *schema.DetailedMetrics, limit int) []FeatureBar {
	if detailed == nil {
		detailed = FallbackDetailedMetrics()
	}

	weights := detailed.FeatureImportance
	if limit >= 0 && len(weights) > limit {
		weights = weights[:limit]
	}

	series := make([]FeatureBar, 0, len(weights))
	for _, w := range weights {
		series = append(series, FeatureBar{
			Name:  w.Name,
			Value: round1(w.Value * 100),
		})
	}
	return series
}

// ToConfusionCells spreads the confusion matrix into cells, falling back
// to the documented literals when detailed metrics are unavailable.
func ToConfusionCells(detailed *schema.DetailedMetrics) ConfusionCells {
	if detailed == nil {
		detailed = FallbackDetailedMetrics()
	}

	m := detailed.ConfusionMatrix
	return ConfusionCells{
		TN:    m.TN,
		FP:    m.FP,
		FN:    m.FN,
		TP:    m.TP,
		Total: m.Total(),
	}
}

// ToSummary derives the KPI block.
func ToSummary(detailed *schema.DetailedMetrics) Summary {
	if detailed == nil {
		detailed = FallbackDetailedMetrics()
	}

	return Summary{
		AccuracyPercent:  round2(detailed.Accuracy * 100),
		PrecisionPercent: round2(detailed.Precision * 100),
		RecallPercent:    round2(detailed.Recall * 100),
		F1Score:          round3(detailed.F1Score),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
