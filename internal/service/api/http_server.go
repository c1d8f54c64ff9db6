package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/discount-bot/internal/service/api/constants"
	"github.com/darkkaiser/discount-bot/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/discount-bot/internal/service/api/middleware"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (기본값: 60초)
	// 명령어 실행은 OpenAI, Shopify, Mailjet 을 순차 호출하므로 업스트림 타임아웃의 합보다 길게 잡아야 합니다.
	RequestTimeout time.Duration
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 다른 미들웨어의 패닉까지 복구하도록 가장 먼저 적용
//  2. RequestID - UUID 요청 ID (X-Request-ID), 로그보다 먼저 적용되어야 로그에 포함됨
//  3. ServerHeader - Server 응답 헤더 제거
//  4. HTTPLogger - 요청/응답 구조화 로깅, RateLimit/Timeout 이전에 위치하여 429/503 도 기록
//  5. RateLimit - IP 별 요청 속도 제한 (초당 20, 버스트 40)
//  6. BodyLimit - 요청 본문 크기 제한 (128KB)
//  7. Timeout - 요청 처리 시간 제한
//  8. CORS - 허용된 Origin 의 크로스 도메인 요청 처리
//  9. Secure - 보안 헤더 추가
//
// 라우트는 포함되지 않으며 RegisterRoutes 로 별도 등록합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = timeout + constants.WriteTimeoutMargin
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Del(echo.HeaderServer)
			return next(c)
		}
	})
	// 4. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 5. Rate Limiting
	e.Use(appmiddleware.RateLimit(constants.DefaultRateLimitPerSecond, constants.DefaultRateLimitBurst))
	// 6. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 7. Timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	}))
	// 8. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	}))
	// 9. 보안 헤더
	e.Use(middleware.Secure())

	return e
}
