package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/discount-bot/internal/service/api/constants"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxVisitors 메모리에 유지하는 클라이언트 IP 별 Limiter 의 최대 개수
	maxVisitors = 10000

	// retryAfterSeconds 제한 초과 시 Retry-After 헤더로 안내하는 대기 시간(초)
	retryAfterSeconds = "1"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorLimiters 클라이언트 IP 별 Token Bucket 을 보관합니다.
//
// 가득 차면 가장 오래 요청이 없었던 IP 를 제거합니다.
type visitorLimiters struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	limit rate.Limit
	burst int

	now func() time.Time
}

func newVisitorLimiters(requestsPerSecond, burst int) *visitorLimiters {
	return &visitorLimiters{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// get IP 의 Limiter 를 반환합니다. 처음 보는 IP 이면 새로 만듭니다.
func (v *visitorLimiters) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()

	if vis, ok := v.visitors[ip]; ok {
		vis.lastSeen = now
		return vis.limiter
	}

	if len(v.visitors) >= maxVisitors {
		v.evictOldest()
	}

	vis := &visitor{limiter: rate.NewLimiter(v.limit, v.burst), lastSeen: now}
	v.visitors[ip] = vis

	return vis.limiter
}

// evictOldest lastSeen 이 가장 오래된 항목 하나를 제거합니다. 호출자가 mu 를 잡고 있어야 합니다.
func (v *visitorLimiters) evictOldest() {
	var (
		oldestIP string
		oldest   time.Time
	)
	for ip, vis := range v.visitors {
		if oldestIP == "" || vis.lastSeen.Before(oldest) {
			oldestIP, oldest = ip, vis.lastSeen
		}
	}
	delete(v.visitors, oldestIP)
}

// RateLimit 클라이언트 IP 기준 요청 속도 제한 미들웨어를 반환합니다.
//
// 제한을 넘은 요청은 Retry-After 헤더와 함께 429 로 거부됩니다.
// 상태는 프로세스 메모리에만 있으므로 재시작하면 초기화됩니다.
//
// Panics:
//   - requestsPerSecond 또는 burst 가 0 이하인 경우
func RateLimit(requestsPerSecond, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 || burst <= 0 {
		panic(fmt.Sprintf("RateLimit: 초당 요청 수와 버스트는 양수여야 합니다 (requestsPerSecond: %d, burst: %d)", requestsPerSecond, burst))
	}

	limiters := newVisitorLimiters(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if limiters.get(ip).Allow() {
				return next(c)
			}

			applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
				"remote_ip": ip,
				"method":    c.Request().Method,
				"path":      c.Request().URL.Path,
			}).Warn(constants.LogMsgRateLimitExceeded)

			c.Response().Header().Set("Retry-After", retryAfterSeconds)

			return ErrRateLimitExceeded
		}
	}
}
