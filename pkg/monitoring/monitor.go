package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "english_edu"

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// AssessmentComputations 评估全量重算次数（即缓存未命中次数）
	AssessmentComputations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessment_computations_total",
			Help:      "Total number of full proficiency assessment computations",
		},
	)

	AssessmentDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assessment_computation_duration_seconds",
			Help:      "Duration of proficiency assessment computations",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
		},
	)

	// ReviewSubmissions 按复习反馈分类的提交量
	ReviewSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vocabulary_review_submissions_total",
			Help:      "Total number of vocabulary review submissions by outcome",
		},
		[]string{"outcome"},
	)

	// ScoringRuns 口语/写作打分次数
	ScoringRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scoring_runs_total",
			Help:      "Total number of speaking/writing scoring runs",
		},
		[]string{"kind"},
	)
)

func Init() {
	prometheus.MustRegister(
		RequestCounter,
		RequestDuration,
		AssessmentComputations,
		AssessmentDuration,
		ReviewSubmissions,
		ScoringRuns,
	)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
