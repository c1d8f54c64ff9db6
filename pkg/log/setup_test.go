package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Setup 은 전역 상태를 변경하므로 이 파일의 테스트는 병렬로 실행하지 않습니다.

func TestSetup_Validation(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "existing_file")
	require.NoError(t, os.WriteFile(tempFile, []byte("x"), 0644))

	tests := []struct {
		name        string
		opts        Options
		expectError string
	}{
		{"Name 누락", Options{Dir: t.TempDir()}, "애플리케이션 식별자(Name)"},
		{"Dir 이 파일", Options{Name: "app", Dir: tempFile}, "이미 파일로 존재합니다"},
		{"음수 MaxAge", Options{Name: "app", Dir: t.TempDir(), MaxAge: -1}, "0 이상"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetForTest()
			defer resetForTest()

			_, err := Setup(tt.opts)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestSetup_WritesFiles(t *testing.T) {
	resetForTest()
	defer resetForTest()

	dir := t.TempDir()
	c, err := Setup(Options{
		Name:              "discount-bot",
		Dir:               dir,
		EnableCriticalLog: true,
	})
	require.NoError(t, err)

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel(), "기본 레벨은 Info 여야 합니다")

	WithComponent("test").Info("정보 로그")
	WithComponentAndFields("test", Fields{"rule_id": 7}).Error("에러 로그")

	require.NoError(t, c.Close())
	assert.NoError(t, c.Close(), "Close 는 여러 번 호출해도 안전해야 합니다")

	mainLog, err := os.ReadFile(filepath.Join(dir, "discount-bot.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "정보 로그")
	assert.Contains(t, string(mainLog), "component=test")

	criticalLog, err := os.ReadFile(filepath.Join(dir, "discount-bot.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(criticalLog), "에러 로그")
	assert.Contains(t, string(criticalLog), "rule_id=7")
	assert.NotContains(t, string(criticalLog), "정보 로그")
}

func TestSetup_Once(t *testing.T) {
	resetForTest()
	defer resetForTest()

	c1, err1 := Setup(Options{Name: "first", Dir: t.TempDir()})
	c2, err2 := Setup(Options{Name: "second", Dir: t.TempDir()})

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Same(t, c1, c2)
	_ = c1.Close()
}
