package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/darkkaiser/discount-bot/internal/config"
	"github.com/darkkaiser/discount-bot/internal/pkg/version"
	"github.com/darkkaiser/discount-bot/internal/service/api"
	"github.com/darkkaiser/discount-bot/internal/service/monitor"
	"github.com/darkkaiser/discount-bot/internal/service/notification/operator"
	"github.com/darkkaiser/discount-bot/internal/service/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// 메타데이터 및 배너 검증
// =============================================================================

func TestAppMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "discount-bot", config.AppName)
	assert.NotContains(t, config.AppName, " ", "애플리케이션 이름에는 공백이 포함될 수 없습니다")
	assert.Equal(t, "discount-bot.json", config.DefaultFilename)
}

func TestBanner(t *testing.T) {
	t.Parallel()

	t.Run("템플릿 형식 검증", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, banner, "%s", "배너 템플릿에는 버전 포맷팅을 위한 '%s'가 포함되어야 합니다")
		assert.Contains(t, banner, "DarkKaiser")
	})

	t.Run("출력 포맷팅 검증", func(t *testing.T) {
		t.Parallel()
		v := version.Get().Version
		output := fmt.Sprintf(banner, v)
		assert.Contains(t, output, v)
		assert.NotContains(t, output, "%s")
	})
}

// =============================================================================
// 서비스 조립 검증
// =============================================================================

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "discount-bot.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const baseConfig = `{
	"openai": { "api_key": "sk-test" },
	"shopify": { "store_url": "https://example.myshopify.com", "access_token": "shpat_test" },
	"mailjet": { "api_key": "mj-key", "secret_key": "mj-secret", "sender_email": "shop@example.com" },
	"recipients": { "file": "%s" },
	"monitor": { "enabled": %t }
}`

func TestNewServices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		monitorEnabled bool
		wantCount      int
	}{
		{name: "모니터 비활성화", monitorEnabled: false, wantCount: 2},
		{name: "모니터 활성화", monitorEnabled: true, wantCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			emails := filepath.ToSlash(filepath.Join(t.TempDir(), "emails.json"))
			appConfig, err := config.LoadWithFile(writeConfigFile(t, fmt.Sprintf(baseConfig, emails, tt.monitorEnabled)))
			require.NoError(t, err)

			services, err := newServices(appConfig, version.Info{Version: "test"})
			require.NoError(t, err)
			require.Len(t, services, tt.wantCount)

			// 텔레그램이 비활성화되어 있으면 운영자 알림은 Nop 입니다.
			assert.IsType(t, operator.Nop{}, services[0])
			assert.IsType(t, &api.Service{}, services[1])
			if tt.monitorEnabled {
				assert.IsType(t, &monitor.Monitor{}, services[2])
			}
		})
	}
}

type stubHealth struct {
	err error
}

func (p stubHealth) Probe(context.Context) error {
	return p.err
}

func TestNewStatusChecker(t *testing.T) {
	t.Parallel()

	checker := newStatusChecker(time.Second, stubHealth{}, stubHealth{err: errors.New("401")}, stubHealth{})

	assert.Equal(t, map[string]bool{
		status.NameOpenAI:  true,
		status.NameShopify: false,
		status.NameMailjet: true,
	}, checker.Check(context.Background()))
}
