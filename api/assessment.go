package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardioguard/cardioguard-api/assessment"
	"github.com/cardioguard/cardioguard-api/codec"
	"github.com/cardioguard/cardioguard-api/schema"
)

func (s *Server) submitAssessment(c *gin.Context) {
	var input schema.HealthAssessmentInput

	if err := c.BindJSON(&input); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !schema.IsSupportedModel(input.ModelName) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnsupportedModel)
		return
	}

	result, err := s.orchestrator.Submit(input)
	if err != nil {
		switch {
		case errors.Is(err, assessment.ErrSubmissionInFlight):
			abortWithEncoding(c, http.StatusConflict, errorSubmissionInFlight)
		case errors.Is(err, codec.ErrOutOfDomain):
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		default:
			abortWithEncoding(c, http.StatusBadGateway, errorPredictionFailed, err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) latestAssessment(c *gin.Context) {
	c.JSON(http.StatusOK, s.orchestrator.Snapshot())
}

func (s *Server) listModels(c *gin.Context) {
	models, err := s.predictorClient.Models(c.Request.Context())
	if err != nil {
		// the form can still offer the documented set
		log.Warn("model listing unavailable: ", err)
		models = schema.SupportedModels
	}

	c.JSON(http.StatusOK, gin.H{
		"models": models,
	})
}
