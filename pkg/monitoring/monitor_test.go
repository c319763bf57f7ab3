package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// 所有指标都要带应用命名空间，避免与同一 Prometheus 实例里的其他服务混淆
func TestMetricNamesCarryNamespace(t *testing.T) {
	RequestCounter.WithLabelValues("GET", "/namespace-check", "200").Inc()
	assert.Equal(t, 1, testutil.CollectAndCount(RequestCounter, "english_edu_http_requests_total"))

	RequestDuration.WithLabelValues("GET", "/namespace-check").Observe(0.2)
	assert.Equal(t, 1, testutil.CollectAndCount(RequestDuration, "english_edu_http_request_duration_seconds"))

	AssessmentComputations.Inc()
	assert.Equal(t, 1, testutil.CollectAndCount(AssessmentComputations, "english_edu_assessment_computations_total"))

	AssessmentDuration.Observe(0.05)
	assert.Equal(t, 1, testutil.CollectAndCount(AssessmentDuration, "english_edu_assessment_computation_duration_seconds"))

	ReviewSubmissions.WithLabelValues("mastered").Inc()
	assert.Equal(t, 1, testutil.CollectAndCount(ReviewSubmissions, "english_edu_vocabulary_review_submissions_total"))

	ScoringRuns.WithLabelValues("writing").Inc()
	assert.Equal(t, 1, testutil.CollectAndCount(ScoringRuns, "english_edu_scoring_runs_total"))
}

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/middleware-check", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/middleware-check", nil)
	r.ServeHTTP(w, req)

	got := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/middleware-check", "200"))
	assert.Equal(t, float64(1), got)
}

func TestDomainCountersSplitByLabel(t *testing.T) {
	ReviewSubmissions.WithLabelValues("forgotten").Inc()
	ReviewSubmissions.WithLabelValues("forgotten").Inc()
	assert.Equal(t, float64(2), testutil.ToFloat64(ReviewSubmissions.WithLabelValues("forgotten")))

	ScoringRuns.WithLabelValues("speaking").Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(ScoringRuns.WithLabelValues("speaking")))
	assert.Equal(t, float64(0), testutil.ToFloat64(ScoringRuns.WithLabelValues("listening")))
}
