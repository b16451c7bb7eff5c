package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 생성 호출 결과 라벨
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeParsed      = "parsed"
	OutcomeParseFailed = "parse_failed"
)

var (
	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewdesk_generations_total",
			Help: "Text generation calls by prompt kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	generationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reviewdesk_generation_duration_seconds",
			Help:    "Latency of text generation calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	llmFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewdesk_llm_failures_total",
			Help: "Failed Gemini calls by reason",
		},
		[]string{"reason"},
	)

	extractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewdesk_extractions_total",
			Help: "Structured extraction attempts on admin summary completions",
		},
		[]string{"outcome"},
	)

	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewdesk_submissions_total",
			Help: "Review submissions by rating and persistence result",
		},
		[]string{"rating", "persisted"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reviewdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

func ObserveGeneration(kind, outcome string, took time.Duration) {
	generationsTotal.WithLabelValues(kind, outcome).Inc()
	generationDuration.WithLabelValues(kind).Observe(took.Seconds())
}

func ObserveLLMFailure(reason string) {
	llmFailuresTotal.WithLabelValues(reason).Inc()
}

func ObserveExtraction(outcome string) {
	extractionsTotal.WithLabelValues(outcome).Inc()
}

func ObserveSubmission(rating int, persisted bool) {
	submissionsTotal.WithLabelValues(strconv.Itoa(rating), strconv.FormatBool(persisted)).Inc()
}

// GinMiddleware 는 라우트 패턴 기준으로 요청 수/지연을 기록한다.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
