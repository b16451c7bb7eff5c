// Package trace 는 요청 단위 ID 와 그 안에서 일어나는 외부 호출 순번을 컨텍스트로 전달한다.
package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info 는 요청 하나의 트레이싱 정보다.
// spanSeq 는 같은 요청 안의 Gemini 호출마다 1,2,3... 으로 증가한다.
type Info struct {
	RequestID string
	spanSeq   int64
}

func GenerateID() string {
	return uuid.NewString()
}

// WithRequestID 는 Request ID 를 담고 span 을 0 으로 둔 컨텍스트를 반환한다.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyTrace, &Info{RequestID: requestID})
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// SpanCount 는 지금까지 발급된 span 개수다. 증가시키지 않는다.
func SpanCount(ctx context.Context) int64 {
	info := infoFromContext(ctx)
	if info == nil {
		return 0
	}
	return atomic.LoadInt64(&info.spanSeq)
}

// NextSpanID 는 span 순번을 1 올리고 (requestID, spanID) 를 반환한다.
// 미들웨어 밖에서 호출되면 requestID 는 빈 문자열이다.
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		return "", "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	return info.RequestID, strconv.FormatInt(val, 10)
}
