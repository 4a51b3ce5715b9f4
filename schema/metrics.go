package schema

import (
	"encoding/json"
	"fmt"
	"io"
)

// ErrNoData marks a metrics payload that carries the service's `error`
// field convention. Callers treat it as "no data", not as a failure.
var ErrNoData = fmt.Errorf("metrics payload carries an error marker")

// InvalidPayloadError is a typed decode failure: the payload parsed as
// JSON but its shape drifted from the service contract.
type InvalidPayloadError struct {
	Field  string
	Reason string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid payload field %q: %s", e.Field, e.Reason)
}

// ModelAccuracy is one bar of the accuracy comparison chart.
type ModelAccuracy struct {
	Name     string  `json:"name"`
	Accuracy float64 `json:"accuracy"`
}

// ModelAccuracies preserves the key order of the summary metrics payload.
// Chart order is the payload's insertion order, which a plain map would
// destroy, so the payload is decoded token by token into a slice.
type ModelAccuracies []ModelAccuracy

// DecodeModelAccuracies reads a `{"model": accuracy, ...}` JSON object in
// source order. A payload with an `error` key returns ErrNoData.
func DecodeModelAccuracies(r io.Reader) (ModelAccuracies, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &InvalidPayloadError{Field: "(root)", Reason: "not a JSON object"}
	}

	accuracies := ModelAccuracies{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, &InvalidPayloadError{Field: "(key)", Reason: "not a string"}
		}

		if key == "error" {
			return nil, ErrNoData
		}

		var accuracy float64
		if err := dec.Decode(&accuracy); err != nil {
			return nil, &InvalidPayloadError{Field: key, Reason: "accuracy is not a number"}
		}
		if accuracy < 0 || accuracy > 1 {
			return nil, &InvalidPayloadError{Field: key, Reason: "accuracy outside [0, 1]"}
		}

		accuracies = append(accuracies, ModelAccuracy{Name: key, Accuracy: accuracy})
	}

	return accuracies, nil
}

type ConfusionMatrix struct {
	TN int `json:"tn"`
	FP int `json:"fp"`
	FN int `json:"fn"`
	TP int `json:"tp"`
}

// Total is the number of evaluated samples.
func (m ConfusionMatrix) Total() int {
	return m.TN + m.FP + m.FN + m.TP
}

// ROCPoint is one (false-positive-rate, true-positive-rate) sample.
type ROCPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type FeatureWeight struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DetailedMetrics is the performance bundle of the currently deployed
// model. It is a read-only snapshot, replaced wholesale on refetch.
type DetailedMetrics struct {
	Accuracy          float64         `json:"accuracy"`
	Precision         float64         `json:"precision"`
	Recall            float64         `json:"recall"`
	F1Score           float64         `json:"f1_score"`
	ConfusionMatrix   ConfusionMatrix `json:"confusion_matrix"`
	ROCCurve          []ROCPoint      `json:"roc_curve"`
	ROCAUC            float64         `json:"roc_auc"`
	FeatureImportance []FeatureWeight `json:"feature_importance"`
}

// Validate checks the snapshot against the service contract: rates in
// [0, 1], non-negative counts, ROC x-values non-decreasing in source
// order. Violations come back as typed decode failures.
func (d DetailedMetrics) Validate() error {
	rates := map[string]float64{
		"accuracy":  d.Accuracy,
		"precision": d.Precision,
		"recall":    d.Recall,
		"f1_score":  d.F1Score,
		"roc_auc":   d.ROCAUC,
	}
	for field, v := range rates {
		if v < 0 || v > 1 {
			return &InvalidPayloadError{Field: field, Reason: "outside [0, 1]"}
		}
	}

	if d.ConfusionMatrix.TN < 0 || d.ConfusionMatrix.FP < 0 ||
		d.ConfusionMatrix.FN < 0 || d.ConfusionMatrix.TP < 0 {
		return &InvalidPayloadError{Field: "confusion_matrix", Reason: "negative count"}
	}

	for i, p := range d.ROCCurve {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			return &InvalidPayloadError{Field: "roc_curve", Reason: fmt.Sprintf("point %d outside the unit square", i)}
		}
		if i > 0 && p.X < d.ROCCurve[i-1].X {
			return &InvalidPayloadError{Field: "roc_curve", Reason: fmt.Sprintf("x decreases at point %d", i)}
		}
	}

	for i, f := range d.FeatureImportance {
		if f.Value < 0 || f.Value > 1 {
			return &InvalidPayloadError{Field: "feature_importance", Reason: fmt.Sprintf("weight %d outside [0, 1]", i)}
		}
	}

	return nil
}
