// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보, 업스트림 API 상태 조회를 처리합니다.
package system

import (
	"context"
	"net/http"
	"time"

	"github.com/darkkaiser/discount-bot/internal/pkg/version"
	"github.com/darkkaiser/discount-bot/internal/service/api/constants"
	"github.com/darkkaiser/discount-bot/internal/service/api/model/system"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/labstack/echo/v4"
)

// StatusChecker 업스트림 API 상태 확인기
type StatusChecker interface {
	Check(ctx context.Context) map[string]bool
}

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	checker StatusChecker

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(checker StatusChecker, buildInfo version.Info) *Handler {
	if checker == nil {
		panic(constants.PanicMsgStatusCheckerRequired)
	}

	return &Handler{
		checker: checker,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버 가동 시간과 업스트림 API(OpenAI, Shopify, Mailjet)의 상태를 반환합니다.
// @Description 업스트림 중 하나라도 응답하지 않으면 전체 상태는 unhealthy 입니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	h.log(c).Debug("헬스체크 요청")

	statuses := h.checker.Check(c.Request().Context())

	deps := make(map[string]system.DependencyStatus, len(statuses))
	serverStatus := constants.HealthStatusHealthy
	for name, ok := range statuses {
		if ok {
			deps[name] = system.DependencyStatus{Status: constants.HealthStatusHealthy, Message: constants.MsgDepStatusHealthy}
			continue
		}

		deps[name] = system.DependencyStatus{Status: constants.HealthStatusUnhealthy, Message: constants.MsgDepStatusUnreachable}
		serverStatus = constants.HealthStatusUnhealthy
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 애플리케이션 버전, Git 커밋 해시, 빌드 날짜, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	h.log(c).Debug("버전 정보 요청")

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:   h.buildInfo.Version,
		Commit:    h.buildInfo.Commit,
		BuildDate: h.buildInfo.BuildDate,
		GoVersion: h.buildInfo.GoVersion,
	})
}

// StatusHandler godoc
// @Summary 업스트림 API 상태
// @Description OpenAI, Shopify, Mailjet 에 인증된 가벼운 요청을 순서대로 보내 2xx 응답 여부를 반환합니다.
// @Description 업스트림이 응답하지 않아도 이 엔드포인트는 실패하지 않습니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.StatusResponse "업스트림별 응답 여부"
// @Router /api/status [get]
func (h *Handler) StatusHandler(c echo.Context) error {
	statuses := h.checker.Check(c.Request().Context())

	h.log(c).WithField("statuses", statuses).Debug("업스트림 상태 조회 완료")

	return c.JSON(http.StatusOK, system.StatusResponse{
		Success:  true,
		Statuses: statuses,
	})
}

func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	})
}
