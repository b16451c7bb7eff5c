// Package httpclient 는 Gemini 호출에 쓰는 아웃바운드 http.Client 를 만든다.
package httpclient

import (
	"net/http"
	"time"

	"review-desk/cmd/api/trace"
	"review-desk/cmd/internal/logger"
)

type Config struct {
	Timeout time.Duration
	// Transport 가 nil 이면 http.DefaultTransport 를 쓴다.
	Transport http.RoundTripper
}

// loggingRoundTripper 는 모든 아웃바운드 호출에 X-Request-Id/X-Span-Id 를 붙이고
// 결과를 로깅한다. 요청 바디에는 고객 리뷰가 들어가므로 기록하지 않는다.
type loggingRoundTripper struct {
	inner http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID, spanID := trace.NextSpanID(req.Context())
	if requestID == "" {
		requestID = req.Header.Get("X-Request-Id")
	}
	if requestID == "" {
		requestID = trace.GenerateID()
	}
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("X-Span-Id", spanID)

	resp, err := l.inner.RoundTrip(req)
	fields := logger.Fields{
		"method":     req.Method,
		"path":       req.URL.Path,
		"duration":   time.Since(start).String(),
		"request_id": requestID,
		"span_id":    spanID,
	}
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("httpclient request failed", fields)
		return nil, err
	}
	fields["status"] = resp.StatusCode
	logger.DebugWithFields("httpclient request success", fields)
	return resp, nil
}

// New 는 주어진 설정으로 http.Client 를 생성한다. Timeout 이 0 이면 30초다.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: transport},
	}
}
