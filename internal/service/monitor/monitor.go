// Package monitor 외부 API 상태를 cron 스케줄에 맞춰 주기적으로 점검하고, 상태가 바뀌면 로그와 운영자 알림을 남깁니다.
package monitor

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	"github.com/darkkaiser/discount-bot/internal/service/notification/operator"
	"github.com/darkkaiser/discount-bot/pkg/cronx"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/robfig/cron/v3"
)

const component = "monitor.service"

// checkTimeout 한 번의 전체 점검에 허용하는 최대 시간
const checkTimeout = time.Minute

// Checker 외부 API 상태 점검기
type Checker interface {
	Check(ctx context.Context) map[string]bool
}

// Monitor 외부 API 상태 모니터 서비스
type Monitor struct {
	timeSpec string
	checker  Checker
	alerter  operator.Alerter

	cron *cron.Cron

	lastMu sync.Mutex
	last   map[string]bool

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Monitor 서비스를 생성합니다.
func NewService(timeSpec string, checker Checker, alerter operator.Alerter) *Monitor {
	if checker == nil {
		panic("Checker는 필수입니다")
	}
	if alerter == nil {
		alerter = operator.Nop{}
	}

	return &Monitor{
		timeSpec: timeSpec,
		checker:  checker,
		alerter:  alerter,
	}
}

// Start cron 엔진에 점검 작업을 등록하고 시작합니다.
func (m *Monitor) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	m.runningMu.Lock()
	defer m.runningMu.Unlock()

	if m.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Monitor 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - SkipIfStillRunning: 이전 점검이 끝나지 않았으면 다음 점검을 건너뜀
	m.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	if _, err := m.cron.AddFunc(m.timeSpec, func() {
		ctx, cancel := context.WithTimeout(serviceStopCtx, checkTimeout)
		defer cancel()

		m.RunOnce(ctx)
	}); err != nil {
		m.cron = nil
		serviceStopWG.Done()
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("상태 점검 스케줄 등록 실패: 잘못된 Cron 표현식입니다 (TimeSpec: %s)", m.timeSpec))
	}

	m.cron.Start()
	m.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": m.timeSpec,
	}).Info("Monitor 서비스 시작됨")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		m.Stop()
	}()

	return nil
}

// Stop 실행 중인 cron 엔진을 중지하고 진행 중인 점검이 끝날 때까지 기다립니다.
func (m *Monitor) Stop() {
	m.runningMu.Lock()
	defer m.runningMu.Unlock()

	if !m.running {
		return
	}

	if m.cron != nil {
		<-m.cron.Stop().Done()
	}

	m.cron = nil
	m.running = false

	applog.WithComponent(component).Info("Monitor 서비스 중지됨")
}

// RunOnce 상태를 한 번 점검하고, 직전 점검과 비교하여 바뀐 대상마다 로그와 운영자 알림을 남깁니다.
// 첫 점검에서는 장애 상태인 대상만 보고합니다.
func (m *Monitor) RunOnce(ctx context.Context) map[string]bool {
	current := m.checker.Check(ctx)

	m.lastMu.Lock()
	previous := m.last
	m.last = current
	m.lastMu.Unlock()

	names := make([]string, 0, len(current))
	for name := range current {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		up := current[name]
		wasUp, seen := previous[name]
		if seen && wasUp == up {
			continue
		}
		if !seen && up {
			continue
		}

		fields := applog.Fields{"target": name, "up": up}
		if up {
			applog.WithComponentAndFields(component, fields).Info("외부 API 가 복구되었습니다")
			m.alerter.Alert(ctx, fmt.Sprintf("✅ 외부 API(%s)가 복구되었습니다", name))
		} else {
			applog.WithComponentAndFields(component, fields).Warn("외부 API 에 접근할 수 없습니다")
			m.alerter.Alert(ctx, fmt.Sprintf("⚠️ 외부 API(%s)에 접근할 수 없습니다", name))
		}
	}

	return current
}
