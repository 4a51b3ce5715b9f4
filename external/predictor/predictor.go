package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/cardioguard/cardioguard-api/schema"
)

const (
	logPrefix = "predictor"
)

var (
	errEmptyEndpoint = fmt.Errorf("empty predictor endpoint")
)

// RequestError is a non-2xx response from the prediction service.
type RequestError struct {
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("prediction service responded with status %d", e.StatusCode)
}

// Predictor - interface to the remote prediction service
type Predictor interface {
	// Predict submits an encoded assessment and returns the settled
	// result. There is no timeout or cancellation on this call: it runs
	// to completion per the transport's own semantics.
	Predict(payload schema.PredictionRequestPayload) (*schema.PredictionResult, error)

	// Metrics returns the per-model accuracy summary in payload order.
	Metrics(ctx context.Context) (schema.ModelAccuracies, error)

	// DetailedMetrics returns the performance bundle of the deployed model.
	DetailedMetrics(ctx context.Context) (*schema.DetailedMetrics, error)

	// Models lists the model identifiers the service currently serves.
	Models(ctx context.Context) ([]string, error)
}

type client struct {
	httpClient *http.Client
	endpoint   string
}

// New - a Predictor over the service at the given endpoint
func New(httpClient *http.Client, endpoint string) Predictor {
	return &client{
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}

func (c *client) Predict(payload schema.PredictionRequestPayload) (*schema.PredictionResult, error) {
	if c.endpoint == "" {
		return nil, errEmptyEndpoint
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"model":  payload.ModelName,
	}).Info("submit prediction request")

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(c.endpoint+"/predict", "application/json", bytes.NewReader(body))
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{StatusCode: resp.StatusCode}
	}

	var result schema.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *client) Metrics(ctx context.Context) (schema.ModelAccuracies, error) {
	body, err := c.get(ctx, "/metrics")
	if err != nil {
		return nil, err
	}

	return schema.DecodeModelAccuracies(bytes.NewReader(body))
}

func (c *client) DetailedMetrics(ctx context.Context) (*schema.DetailedMetrics, error) {
	body, err := c.get(ctx, "/detailed_metrics")
	if err != nil {
		return nil, err
	}

	// the service reports "no data" as a JSON object with an error field
	var marker struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &marker); err == nil && marker.Error != "" {
		return nil, schema.ErrNoData
	}

	var detailed schema.DetailedMetrics
	if err := json.Unmarshal(body, &detailed); err != nil {
		return nil, err
	}
	if err := detailed.Validate(); err != nil {
		return nil, err
	}

	return &detailed, nil
}

func (c *client) Models(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, "/models")
	if err != nil {
		return nil, err
	}

	var listing struct {
		Models []string `json:"models"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, err
	}

	return listing.Models, nil
}

func (c *client) get(ctx context.Context, path string) ([]byte, error) {
	if c.endpoint == "" {
		return nil, errEmptyEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{StatusCode: resp.StatusCode}
	}

	return ioutil.ReadAll(resp.Body)
}
