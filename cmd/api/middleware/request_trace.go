package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"review-desk/cmd/api/trace"
	"review-desk/cmd/internal/logger"
)

const (
	headerRequestID = "X-Request-Id"
	maxBodyLog      = 1024
)

// RequestTrace 는 모든 요청에 Request ID 를 보장하고 응답 헤더에 되돌려 준 뒤,
// 요청이 끝나면 한 줄 구조화 로그를 남긴다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}
		c.Request = req.WithContext(trace.WithRequestID(req.Context(), requestID))
		c.Writer.Header().Set(headerRequestID, requestID)

		var bodySnippet string
		if req.Body != nil && req.ContentLength != 0 && req.Method == http.MethodPost {
			if bodyBytes, err := io.ReadAll(req.Body); err == nil {
				bodySnippet = logger.Snippet(string(bodyBytes), maxBodyLog)
				// 핸들러에서 다시 읽을 수 있도록 복원한다.
				c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			}
		}

		c.Next()

		fields := logger.Fields{
			"method":      req.Method,
			"path":        req.URL.Path,
			"status":      c.Writer.Status(),
			"duration":    time.Since(start).String(),
			"request_id":  requestID,
			"llm_calls":   trace.SpanCount(c.Request.Context()),
			"remote_addr": c.ClientIP(),
		}
		if bodySnippet != "" {
			fields["body"] = bodySnippet
		}
		logger.InfoWithFields("completed request", fields)
	}
}
