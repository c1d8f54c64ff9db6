package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/discount-bot/internal/pkg/version"
	cmdmocks "github.com/darkkaiser/discount-bot/internal/service/command/mocks"
	"github.com/darkkaiser/discount-bot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

func healthURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d/health", port)
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewService_PanicsOnMissingDependencies(t *testing.T) {
	t.Parallel()

	f := newTestFixture(t)
	appConfig := newTestAppConfig(0)

	tests := []struct {
		name   string
		mutate func(d *Dependencies)
	}{
		{"CommandService 누락", func(d *Dependencies) { d.Commands = nil }},
		{"Catalog 누락", func(d *Dependencies) { d.Catalog = nil }},
		{"RecipientStore 누락", func(d *Dependencies) { d.Recipients = nil }},
		{"StatusChecker 누락", func(d *Dependencies) { d.Checker = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := f.deps
			tt.mutate(&deps)
			assert.Panics(t, func() { NewService(appConfig, deps, version.Info{}) })
		})
	}

	t.Run("AppConfig 누락", func(t *testing.T) {
		assert.Panics(t, func() { NewService(nil, f.deps, version.Info{}) })
	})
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestService_StartAndShutdown(t *testing.T) {
	port := testutil.FreePort(t)

	f := newTestFixture(t)
	s := NewService(newTestAppConfig(port), f.deps, version.Info{Version: "1.0.0"})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)

	require.NoError(t, s.Start(ctx, wg))
	testutil.WaitForHTTP(t, healthURL(port), 5*time.Second)

	client := &http.Client{
		Timeout:   2 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}
	resp, err := client.Get(healthURL(port))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	wg.Wait()

	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	assert.False(t, s.running)
}

func TestService_DuplicateStart(t *testing.T) {
	port := testutil.FreePort(t)

	f := newTestFixture(t)
	s := NewService(newTestAppConfig(port), f.deps, version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	// 두 번째 호출은 즉시 Done 을 호출하고 반환해야 합니다.
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	testutil.WaitForHTTP(t, healthURL(port), 5*time.Second)

	cancel()
	wg.Wait()
}

func TestService_AlertsOnBindFailure(t *testing.T) {
	port := testutil.FreePort(t)

	f := newTestFixture(t)

	// 같은 포트를 사용하는 첫 번째 서비스가 포트를 점유합니다.
	first := NewService(newTestAppConfig(port), f.deps, version.Info{})
	firstCtx, firstCancel := context.WithCancel(context.Background())
	firstWG := &sync.WaitGroup{}
	firstWG.Add(1)
	require.NoError(t, first.Start(firstCtx, firstWG))
	testutil.WaitForHTTP(t, healthURL(port), 5*time.Second)

	alerter := new(cmdmocks.MockAlerter)
	alerted := make(chan struct{})
	alerter.On("Alert", mock.Anything, mock.Anything).Run(func(mock.Arguments) { close(alerted) }).Once()

	deps := f.deps
	deps.Alerter = alerter
	second := NewService(newTestAppConfig(port), deps, version.Info{})

	secondWG := &sync.WaitGroup{}
	secondWG.Add(1)
	require.NoError(t, second.Start(context.Background(), secondWG))

	select {
	case <-alerted:
	case <-time.After(5 * time.Second):
		t.Fatal("포트 바인딩 실패 시 운영자 알림이 발송되어야 합니다")
	}

	// 서버가 먼저 종료되었으므로 Context 취소 없이도 서비스가 정리됩니다.
	secondWG.Wait()
	alerter.AssertExpectations(t)

	firstCancel()
	firstWG.Wait()
}
