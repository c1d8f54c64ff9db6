package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/darkkaiser/discount-bot/internal/config"
	"github.com/darkkaiser/discount-bot/internal/pkg/version"
	"github.com/darkkaiser/discount-bot/internal/service/api"
	"github.com/darkkaiser/discount-bot/internal/service/command"
	"github.com/darkkaiser/discount-bot/internal/service/contract"
	"github.com/darkkaiser/discount-bot/internal/service/discount"
	"github.com/darkkaiser/discount-bot/internal/service/discount/shopify"
	"github.com/darkkaiser/discount-bot/internal/service/fetcher"
	"github.com/darkkaiser/discount-bot/internal/service/intent"
	"github.com/darkkaiser/discount-bot/internal/service/monitor"
	"github.com/darkkaiser/discount-bot/internal/service/notification"
	"github.com/darkkaiser/discount-bot/internal/service/notification/mailjet"
	"github.com/darkkaiser/discount-bot/internal/service/notification/operator"
	"github.com/darkkaiser/discount-bot/internal/service/recipient"
	"github.com/darkkaiser/discount-bot/internal/service/status"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
)

// @title Discount Bot API
// @version 1.0
// @description 자연어 명령어로 Shopify 할인을 생성하고, 등록된 수신자에게 안내 메일을 발송하는 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 자연어 할인 명령어 해석 및 실행
// @description - Shopify 컬렉션 및 할인 목록 조회
// @description - 안내 메일 수신자 관리
// @description - 외부 API(OpenAI, Shopify, Mailjet) 상태 조회

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const (
	banner = `
  ____   _                              _     ____          _
 |  _ \ (_) ___   ___  ___   _   _  _ __ | |_  | __ )   ___  | |_
 | | | || |/ __| / __|/ _ \ | | | || '_ \| __| |  _ \  / _ \ | __|
 | |_| || |\__ \| (__| (_) || |_| || | | | |_  | |_) || (_) || |_
 |____/ |_||___/ \___|\___/  \__,_||_| |_|\__| |____/  \___/  \__|
                                                              %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	configFile := flag.String("config", config.DefaultFilename, "설정 파일 경로")
	flag.Parse()

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(*configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	buildInfo := version.Get()

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 서비스를 생성하고 초기화한다.
	services, err := newServices(appConfig, buildInfo)
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("서비스 생성 실패")

		appLogCloser.Close()
		os.Exit(1)
	}

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			appLogCloser.Close()
			os.Exit(1)
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호를 수신하였습니다")
	cancel()
	serviceStopWG.Wait()
}

// newServices 설정을 바탕으로 외부 API 클라이언트와 도메인 서비스를 조립하고, 시작할 서비스 목록을 반환합니다.
//
// 반환되는 순서대로 시작되며, 운영자 알림 채널이 가장 먼저 시작됩니다.
func newServices(appConfig *config.AppConfig, buildInfo version.Info) ([]contract.Service, error) {
	newFetcher := func(timeout time.Duration) fetcher.Fetcher {
		return fetcher.NewLoggingFetcher(fetcher.NewHTTPFetcher(timeout))
	}

	// 운영자 알림
	var (
		alerter        operator.Alerter
		alerterService contract.Service
	)
	if appConfig.Telegram.Enabled {
		telegram, err := operator.NewTelegram(appConfig.Telegram.BotToken, appConfig.Telegram.ChatID, appConfig.Debug)
		if err != nil {
			return nil, err
		}
		alerter, alerterService = telegram, telegram
	} else {
		alerter, alerterService = operator.Nop{}, operator.Nop{}
	}

	// 외부 API 클라이언트
	parser := intent.NewParser(newFetcher(appConfig.OpenAI.Timeout), intent.Config{
		APIKey:      appConfig.OpenAI.APIKey,
		BaseURL:     appConfig.OpenAI.BaseURL,
		Model:       appConfig.OpenAI.Model,
		Temperature: appConfig.OpenAI.Temperature,
	})
	shopifyClient := shopify.NewClient(newFetcher(appConfig.Shopify.Timeout), appConfig.Shopify.StoreURL, appConfig.Shopify.APIVersion, appConfig.Shopify.AccessToken)
	mailjetClient := mailjet.NewClient(newFetcher(appConfig.Mailjet.Timeout), appConfig.Mailjet.BaseURL, appConfig.Mailjet.APIKey, appConfig.Mailjet.SecretKey)

	// 도메인 서비스
	discountService := discount.NewService(shopifyClient)
	recipientStore := recipient.NewStore(appConfig.Recipients.File)
	notifier := notification.NewNotifier(recipientStore, mailjetClient, mailjet.Contact{
		Email: appConfig.Mailjet.SenderEmail,
		Name:  appConfig.Mailjet.SenderName,
	})
	commandService := command.NewService(parser, discountService, notifier, alerter)

	checker := newStatusChecker(appConfig.API.StatusProbeTimeout, parser, shopifyClient, mailjetClient)

	apiService := api.NewService(appConfig, api.Dependencies{
		Commands:   commandService,
		Catalog:    discountService,
		Recipients: recipientStore,
		Checker:    checker,
		Alerter:    alerter,
	}, buildInfo)

	services := []contract.Service{alerterService, apiService}
	if appConfig.Monitor.Enabled {
		services = append(services, monitor.NewService(appConfig.Monitor.TimeSpec, checker, alerter))
	}

	return services, nil
}

// newStatusChecker 외부 API 상태 점검기를 생성합니다. 점검 순서는 OpenAI, Shopify, Mailjet 입니다.
func newStatusChecker(timeout time.Duration, openAIProber, shopifyProber, mailjetProber status.Prober) *status.Checker {
	return status.NewChecker(timeout,
		status.Target{Name: status.NameOpenAI, Prober: openAIProber},
		status.Target{Name: status.NameShopify, Prober: shopifyProber},
		status.Target{Name: status.NameMailjet, Prober: mailjetProber},
	)
}
