package quota

import (
	"context"
	"sync"
	"time"
)

// Limiter 는 Gemini 호출에 대한 분당/일일 한도를 관리한다.
// 인메모리로 동작하므로 프로세스가 재시작되면 카운터가 초기화된다.
type Limiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// NewLimiter 는 0 이하인 한도를 "제한 없음"으로 취급한다.
func NewLimiter(requestsPerMinute, requestsPerDay int) *Limiter {
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}
	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}
	return &Limiter{dailyLimit: requestsPerDay, interval: interval, now: time.Now}
}

// WaitAndReserve 는 호출 전에 한도를 적용한다.
// 일일 한도를 소진했으면 (false, nil), 대기 중 ctx 가 끝나면 (false, ctx.Err()) 를 반환한다.
func (l *Limiter) WaitAndReserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()

		now := l.now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		// 락을 풀고 기다린 뒤 상태를 다시 평가한다.
		l.mu.Unlock()
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
