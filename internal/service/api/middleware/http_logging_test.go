package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darkkaiser/discount-bot/internal/service/api/constants"
	"github.com/darkkaiser/discount-bot/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPLogger(t *testing.T) {
	t.Run("요청과 응답 정보를 기록한다", func(t *testing.T) {
		buf := captureLogs(t)

		e := echo.New()
		e.Use(HTTPLogger())
		e.POST("/api/parse", func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(`{"command":"x"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderContentLength, "15")
		req.Header.Set("User-Agent", "test-agent")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		entry := findLog(t, buf, constants.LogMsgHTTPRequest)
		assert.Equal(t, http.MethodPost, entry["method"])
		assert.Equal(t, "/api/parse", entry["path"])
		assert.Equal(t, float64(http.StatusOK), entry["status"])
		assert.Equal(t, "15", entry["bytes_in"])
		assert.Equal(t, "2", entry["bytes_out"])
		assert.Equal(t, "test-agent", entry["user_agent"])
		assert.Equal(t, constants.ComponentMiddleware, entry["component"])
		assert.NotEmpty(t, entry["latency_human"])
	})

	t.Run("핸들러 에러의 실제 응답 코드를 기록한다", func(t *testing.T) {
		buf := captureLogs(t)

		e := echo.New()
		e.HTTPErrorHandler = httputil.ErrorHandler
		e.Use(HTTPLogger())
		e.POST("/api/emails", func(c echo.Context) error {
			return httputil.NewBadRequestError(constants.ErrMsgEmailRequired)
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/emails", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		entry := findLog(t, buf, constants.LogMsgHTTPRequest)
		assert.Equal(t, float64(http.StatusBadRequest), entry["status"])
		assert.Equal(t, "0", entry["bytes_in"])
	})

	t.Run("민감한 쿼리 파라미터를 마스킹한다", func(t *testing.T) {
		buf := captureLogs(t)

		e := echo.New()
		e.Use(HTTPLogger())
		e.GET("/api/status", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status?token=secret-token-value&id=1", nil))

		entry := findLog(t, buf, constants.LogMsgHTTPRequest)
		uri, _ := entry["uri"].(string)
		assert.NotContains(t, uri, "secret-token-value")
		assert.Contains(t, uri, "id=1")
	})
}

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"민감 파라미터 없음", "/api/discounts?limit=10", "/api/discounts?limit=10"},
		{"쿼리 없음", "/api/collections", "/api/collections"},
		{"짧은 값은 전체 마스킹", "/api/status?api_key=abc", "/api/status?api_key=%2A%2A%2A"},
		{"긴 값은 앞뒤 4자만 남김", "/api/status?secret=0123456789abcdef", "/api/status?secret=0123%2A%2A%2Acdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, maskSensitiveQueryParams(tt.uri))
		})
	}
}
