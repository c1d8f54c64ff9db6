// Package api 할인 명령어 서비스의 HTTP API 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/discount-bot/docs"
	"github.com/darkkaiser/discount-bot/internal/config"
	"github.com/darkkaiser/discount-bot/internal/pkg/version"
	"github.com/darkkaiser/discount-bot/internal/service/api/constants"
	"github.com/darkkaiser/discount-bot/internal/service/api/handler/discounts"
	"github.com/darkkaiser/discount-bot/internal/service/api/handler/recipients"
	"github.com/darkkaiser/discount-bot/internal/service/api/handler/system"
	"github.com/darkkaiser/discount-bot/internal/service/notification/operator"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/labstack/echo/v4"
)

// Dependencies API 서비스가 요청 처리에 사용하는 도메인 서비스 묶음입니다.
type Dependencies struct {
	Commands   discounts.CommandService
	Catalog    discounts.Catalog
	Recipients recipients.Store
	Checker    system.StatusChecker

	// Alerter 서버가 예기치 않게 종료될 때 운영자에게 알립니다. nil 이면 알리지 않습니다.
	Alerter operator.Alerter
}

// Service API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start 로 시작하면 고루틴에서 HTTP 서버를 실행하고, Context 가 취소되면 Graceful Shutdown 을 수행합니다.
type Service struct {
	appConfig *config.AppConfig

	deps Dependencies

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, deps Dependencies, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if deps.Commands == nil {
		panic(constants.PanicMsgCommandServiceRequired)
	}
	if deps.Catalog == nil {
		panic(constants.PanicMsgCatalogRequired)
	}
	if deps.Recipients == nil {
		panic(constants.PanicMsgRecipientStoreRequired)
	}
	if deps.Checker == nil {
		panic(constants.PanicMsgStatusCheckerRequired)
	}
	if deps.Alerter == nil {
		deps.Alerter = operator.Nop{}
	}

	return &Service{
		appConfig: appConfig,

		deps: deps,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
// 서비스가 완전히 종료되면 serviceStopWG.Done() 을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// runServiceLoop 서버 설정, HTTP 서버 시작, Shutdown 대기를 순차적으로 수행합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 핸들러와 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	handlers := Handlers{
		System:     system.NewHandler(s.deps.Checker, s.buildInfo),
		Discounts:  discounts.NewHandler(s.deps.Commands, s.deps.Catalog),
		Recipients: recipients.NewHandler(s.deps.Recipients),
	}

	e := NewHTTPServer(HTTPServerConfig{
		Debug:          s.appConfig.Debug,
		AllowOrigins:   s.appConfig.API.CORS.AllowOrigins,
		RequestTimeout: s.appConfig.API.RequestTimeout,
	})

	basePath := s.appConfig.API.BasePath
	if basePath == "" {
		basePath = constants.DefaultBasePath
	}
	RegisterRoutes(e, basePath, handlers)

	return e
}

// startHTTPServer HTTP 서버를 시작하고, 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.API.WS.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	s.handleServerError(e.Start(fmt.Sprintf(":%d", port)))
}

// handleServerError HTTP 서버가 반환한 에러를 처리합니다.
//
//   - nil, http.ErrServerClosed: 정상 종료
//   - 그 외: Error 로그와 운영자 알림 (포트 바인딩 실패 등)
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	message := constants.LogMsgServiceHTTPServerFatalError
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.WS.ListenPort,
		"error": err,
	}).Error(message)

	s.deps.Alerter.Alert(context.Background(), fmt.Sprintf("%s\r\n\r\n%s", message, err))
}

// waitForShutdown 종료 신호를 기다린 뒤 Graceful Shutdown 을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
