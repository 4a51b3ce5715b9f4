package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/cardioguard/cardioguard-api/api/mocks"
	"github.com/cardioguard/cardioguard-api/schema"
)

func newTestServer(p *mocks.MockPredictor) (*Server, *gin.Engine) {
	s := NewServer(p)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/assessments", s.submitAssessment)
	router.GET("/assessments/latest", s.latestAssessment)
	router.GET("/models", s.listModels)
	router.GET("/dashboard", s.getDashboard)

	return s, router
}

func assessmentBody() []byte {
	b, _ := json.Marshal(schema.DefaultAssessment())
	return b
}

func TestSubmitAssessment(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPredictor(ctl)
	p.EXPECT().Predict(gomock.Any()).Return(&schema.PredictionResult{
		Prediction:  1,
		Risk:        "High",
		Probability: 0.82,
	}, nil).Times(1)

	_, router := newTestServer(p)

	req := httptest.NewRequest("POST", "/assessments", bytes.NewReader(assessmentBody()))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.PredictionResult
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 1, jResp.Prediction)
	assert.Equal(t, "High", jResp.Risk)
	assert.Equal(t, 0.82, jResp.Probability)
	assert.Equal(t, "XGBoost", jResp.ModelName)
}

func TestSubmitAssessmentTransportFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPredictor(ctl)
	p.EXPECT().Predict(gomock.Any()).Return(nil, fmt.Errorf("connection refused")).Times(1)

	s, router := newTestServer(p)

	req := httptest.NewRequest("POST", "/assessments", bytes.NewReader(assessmentBody()))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorPredictionFailed.Code, jResp.Code)

	// the lifecycle settled into Failure and stays resubmittable
	snapshot := s.orchestrator.Snapshot()
	assert.Equal(t, "failure", string(snapshot.State))
	assert.Nil(t, snapshot.Result)
}

func TestSubmitAssessmentUnsupportedModel(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPredictor(ctl)

	_, router := newTestServer(p)

	input := schema.DefaultAssessment()
	input.ModelName = "AdaBoost"
	b, _ := json.Marshal(input)

	req := httptest.NewRequest("POST", "/assessments", bytes.NewReader(b))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorUnsupportedModel.Code, jResp.Code)
}

func TestSubmitAssessmentInvalidParameters(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPredictor(ctl)

	_, router := newTestServer(p)

	input := schema.DefaultAssessment()
	input.Age = 7
	b, _ := json.Marshal(input)

	req := httptest.NewRequest("POST", "/assessments", bytes.NewReader(b))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestLatestAssessmentIdle(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPredictor(ctl)

	_, router := newTestServer(p)

	req := httptest.NewRequest("GET", "/assessments/latest", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "idle", jResp["state"])
}

func TestListModels(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPredictor(ctl)
	p.EXPECT().Models(gomock.Any()).Return([]string{"XGBoost", "KNN"}, nil).Times(1)

	_, router := newTestServer(p)

	req := httptest.NewRequest("GET", "/models", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]string
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, []string{"XGBoost", "KNN"}, jResp["models"])
}

func TestListModelsServiceDown(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPredictor(ctl)
	p.EXPECT().Models(gomock.Any()).Return(nil, fmt.Errorf("connection refused")).Times(1)

	_, router := newTestServer(p)

	req := httptest.NewRequest("GET", "/models", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]string
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.SupportedModels, jResp["models"])
}
