package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHook() (*hook, *safeBuffer, *safeBuffer, *safeBuffer, *safeBuffer) {
	mainBuf, critBuf, verbBuf, consBuf := &safeBuffer{}, &safeBuffer{}, &safeBuffer{}, &safeBuffer{}

	return &hook{
		mainWriter:     mainBuf,
		criticalWriter: critBuf,
		verboseWriter:  verbBuf,
		consoleWriter:  consBuf,
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}, mainBuf, critBuf, verbBuf, consBuf
}

func TestHook_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{"Error: main + critical", ErrorLevel, true, true, false},
		{"Warn: main", WarnLevel, true, false, false},
		{"Info: main", InfoLevel, true, false, false},
		{"Debug: verbose", DebugLevel, false, false, true},
		{"Trace: verbose", TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, mainBuf, critBuf, verbBuf, consBuf := newTestHook()
			entry := logrus.NewEntry(logrus.New())
			entry.Level = tt.level
			entry.Message = "가격 규칙 생성"

			require.NoError(t, h.Fire(entry))

			assert.Equal(t, tt.wantMain, mainBuf.String() != "")
			assert.Equal(t, tt.wantCritical, critBuf.String() != "")
			assert.Equal(t, tt.wantVerbose, verbBuf.String() != "")
			assert.Contains(t, consBuf.String(), "가격 규칙 생성", "콘솔에는 모든 레벨이 출력되어야 합니다")
		})
	}
}

func TestHook_WriteFailure(t *testing.T) {
	t.Parallel()

	h, mainBuf, _, _, _ := newTestHook()
	h.criticalWriter = failWriter{}

	entry := logrus.NewEntry(logrus.New())
	entry.Level = ErrorLevel
	entry.Message = "boom"

	err := h.Fire(entry)

	assert.Error(t, err)
	assert.Contains(t, mainBuf.String(), "boom", "Critical 기록 실패와 무관하게 Main 기록은 수행되어야 합니다")
}

func TestHook_Closed(t *testing.T) {
	t.Parallel()

	h, mainBuf, _, _, consBuf := newTestHook()
	require.NoError(t, h.Close())

	entry := logrus.NewEntry(logrus.New())
	entry.Level = InfoLevel
	entry.Message = "ignored"

	assert.NoError(t, h.Fire(entry))
	assert.Empty(t, mainBuf.String())
	assert.Empty(t, consBuf.String())
}
