package middleware

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// captureLogs 테스트 동안 전역 로거의 출력을 JSON 형식으로 버퍼에 캡처합니다.
// 전역 로거를 변경하므로 이 함수를 사용하는 테스트는 t.Parallel()을 호출하지 않습니다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	logger := applog.StandardLogger()
	buf := new(bytes.Buffer)

	originalOut := logger.Out
	originalFormatter := logger.Formatter
	originalLevel := logger.GetLevel()

	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)

	t.Cleanup(func() {
		logger.SetOutput(originalOut)
		logger.SetFormatter(originalFormatter)
		logger.SetLevel(originalLevel)
	})

	return buf
}

// logEntries 버퍼에 기록된 JSON 로그를 순서대로 파싱합니다.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "로그 파싱 실패: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

// findLog msg 가 일치하는 첫 번째 로그를 찾습니다.
func findLog(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()

	for _, entry := range logEntries(t, buf) {
		if entry["msg"] == msg {
			return entry
		}
	}
	require.Failf(t, "로그를 찾을 수 없습니다", "msg=%q, logs=%s", msg, buf.String())
	return nil
}
