// Package llm 은 Gemini 텍스트 생성 호출을 감싼다.
// 실패는 에러 대신 빈 문자열로 돌려주며, 호출하는 쪽이 필드별 대체값을 정한다.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"review-desk/cmd/api/metrics"
	"review-desk/cmd/api/trace"
	"review-desk/cmd/internal/logger"
)

// Generator 는 프롬프트 하나를 완성 텍스트로 바꾼다. 빈 문자열은 "사용 불가"를 뜻한다.
type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

// Limiter 는 호출 전에 한도를 확인한다. false 면 그 호출은 건너뛴다.
type Limiter interface {
	WaitAndReserve(ctx context.Context) (bool, error)
}

// Config 는 시작 시 한 번 읽어 주입하는 생성 클라이언트 설정이다.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL 이 비어 있으면 genai 기본 엔드포인트를 사용한다.
	BaseURL    string
	HTTPClient *http.Client
	Limiter    Limiter
}

var (
	ErrNoAPIKey      = errors.New("GEMINI_API_KEY is not set")
	ErrQuotaExceeded = errors.New("daily generation quota exhausted")
)

// Client 는 genai 기반 Generator 구현이다.
type Client struct {
	cfg    Config
	models *genai.Models
}

// NewClient 는 API 키가 없으면 네트워크를 쓰지 않는 비활성 클라이언트를 반환한다.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	c := &Client{cfg: cfg}
	if cfg.APIKey == "" {
		logger.Log.Warn("GEMINI_API_KEY is not set; generation is disabled and fallbacks will be used")
		return c, nil
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	gc, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	c.models = gc.Models
	return c, nil
}

// Generate 는 단일 시도로 완성 텍스트를 받아 앞뒤 공백을 제거해 반환한다.
func (c *Client) Generate(ctx context.Context, prompt string) string {
	text, err := c.complete(ctx, prompt)
	if err != nil {
		reason := "request"
		switch {
		case errors.Is(err, ErrNoAPIKey):
			reason = "no_api_key"
		case errors.Is(err, ErrQuotaExceeded):
			reason = "quota"
		}
		metrics.ObserveLLMFailure(reason)
		logger.WarnWithFields("gemini generation unavailable", logger.Fields{
			"model":  c.cfg.Model,
			"reason": reason,
			"error":  err.Error(),
		})
		return ""
	}
	return text
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	if c.models == nil {
		return "", ErrNoAPIKey
	}

	if c.cfg.Limiter != nil {
		ok, err := c.cfg.Limiter.WaitAndReserve(ctx)
		if err != nil {
			return "", fmt.Errorf("wait for quota: %w", err)
		}
		if !ok {
			return "", ErrQuotaExceeded
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	result, err := c.models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", errors.New("response has no candidates")
	}

	text := strings.TrimSpace(result.Text())
	logger.DebugWithFields("gemini generation completed", logger.Fields{
		"model":      c.cfg.Model,
		"request_id": trace.RequestIDFromContext(ctx),
		"latency_ms": time.Since(start).Milliseconds(),
		"response":   logger.Snippet(text, 200),
	})
	return text, nil
}
