package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cardioguard/cardioguard-api/assessment"
	"github.com/cardioguard/cardioguard-api/dashboard"
	"github.com/cardioguard/cardioguard-api/external/predictor"
	"github.com/cardioguard/cardioguard-api/logmodule"
	"github.com/cardioguard/cardioguard-api/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// External services
	predictorClient predictor.Predictor

	// Prediction lifecycle
	orchestrator *assessment.Orchestrator

	// Analytics snapshot
	coordinator *dashboard.Coordinator
	holder      *dashboard.Holder
}

// NewServer new instance of server
func NewServer(predictorClient predictor.Predictor) *Server {
	return &Server{
		predictorClient: predictorClient,
		orchestrator:    assessment.NewOrchestrator(predictorClient),
		coordinator:     dashboard.NewCoordinator(predictorClient),
		holder:          dashboard.NewHolder(),
	}
}

// Holder exposes the dashboard snapshot holder for the background refresher.
func (s *Server) Holder() *dashboard.Holder {
	return s.holder
}

// Coordinator exposes the metrics fetch coordinator for the background refresher.
func (s *Server) Coordinator() *dashboard.Coordinator {
	return s.coordinator
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/models", s.listModels)

	assessmentRoute := apiRoute.Group("/assessments")
	{
		assessmentRoute.POST("", s.submitAssessment)
		assessmentRoute.GET("/latest", s.latestAssessment)
	}

	apiRoute.GET("/dashboard", s.getDashboard)

	r.GET("/information", logmodule.Ginrus("API"), s.information)
	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "CardioGuard 0.1",
			"models":         schema.SupportedModels,
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
