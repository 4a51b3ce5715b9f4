package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardioguard/cardioguard-api/dashboard"
)

func (s *Server) getDashboard(c *gin.Context) {
	snapshot := s.holder.Current()
	if snapshot == nil {
		// cold start, assemble on demand
		snapshot = s.coordinator.Fetch(c.Request.Context())
		s.holder.Replace(snapshot)
	}

	summary := dashboard.ToSummary(snapshot.Detailed)

	c.JSON(http.StatusOK, gin.H{
		"fetched_at": snapshot.FetchedAt,
		"accuracy": gin.H{
			"series":   dashboard.ToAccuracySeries(snapshot.Accuracies),
			"fallback": snapshot.AccuraciesFallback,
		},
		"roc": gin.H{
			"points": dashboard.ToRocSeries(snapshot.Detailed),
			"auc":    snapshot.Detailed.ROCAUC,
		},
		"confusion_matrix":   dashboard.ToConfusionCells(snapshot.Detailed),
		"feature_importance": dashboard.ToFeatureSeries(snapshot.Detailed, dashboard.FeatureSeriesLimit),
		"summary": gin.H{
			"values":   summary,
			"fallback": snapshot.DetailedFallback,
		},
	})
}
