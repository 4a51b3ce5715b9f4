// Package assessment owns the lifecycle of prediction submissions: one
// request slot, serialized, with the latest result and error exposed for
// the rendering layer to read.
package assessment

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/cardioguard/cardioguard-api/codec"
	"github.com/cardioguard/cardioguard-api/external/predictor"
	"github.com/cardioguard/cardioguard-api/schema"
)

const logPrefix = "assessment"

// submitErrorMessage is the generic inline message shown for any
// transport-level prediction failure.
const submitErrorMessage = "failed to fetch prediction"

// ErrSubmissionInFlight rejects a submit while another one is outstanding.
var ErrSubmissionInFlight = fmt.Errorf("a prediction request is already in flight")

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailure    State = "failure"
)

// Snapshot is a consistent read of the submission lifecycle.
type Snapshot struct {
	State  State                    `json:"state"`
	Result *schema.PredictionResult `json:"result,omitempty"`
	Error  string                   `json:"error,omitempty"`
}

// Orchestrator serializes prediction calls through a single slot: at most
// one request is in flight, and the result/error pair is only written at
// settlement time, so readers never observe a torn update.
type Orchestrator struct {
	predictor predictor.Predictor

	mu         sync.Mutex
	submitting bool
	settled    bool
	result     *schema.PredictionResult
	errMessage string
}

func NewOrchestrator(p predictor.Predictor) *Orchestrator {
	return &Orchestrator{
		predictor: p,
	}
}

// Submit runs one full submission: encode, post, settle. It blocks until
// the transport resolves; there is no timeout and no retry. A call made
// while another submission is outstanding returns ErrSubmissionInFlight
// without touching any state.
func (o *Orchestrator) Submit(input schema.HealthAssessmentInput) (*schema.PredictionResult, error) {
	o.mu.Lock()
	if o.submitting {
		o.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	// entering Submitting clears the previous outcome, as the form does
	o.submitting = true
	o.settled = false
	o.result = nil
	o.errMessage = ""
	o.mu.Unlock()

	payload, err := codec.Encode(input)
	if err != nil {
		// form/codec drift, fail loudly
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("encode assessment")
		o.settle(nil, submitErrorMessage)
		return nil, err
	}

	result, err := o.predictor.Predict(payload)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"model":  payload.ModelName,
			"error":  err,
		}).Warn("prediction request failed")
		o.settle(nil, submitErrorMessage)
		return nil, err
	}

	result.ID = uuid.New().String()
	result.ModelName = payload.ModelName
	result.SettledAt = time.Now().UTC()

	o.settle(result, "")
	return result, nil
}

// settle records the outcome and clears the Submitting flag, on every path.
func (o *Orchestrator) settle(result *schema.PredictionResult, errMessage string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.result = result
	o.errMessage = errMessage
	o.settled = true
	o.submitting = false
}

// Snapshot returns the current lifecycle state for the rendering layer.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch {
	case o.submitting:
		return Snapshot{State: StateSubmitting}
	case !o.settled:
		return Snapshot{State: StateIdle}
	case o.errMessage != "":
		return Snapshot{State: StateFailure, Error: o.errMessage}
	default:
		return Snapshot{State: StateSuccess, Result: o.result}
	}
}
