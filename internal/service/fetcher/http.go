package fetcher

import (
	"net/http"
	"time"

	"github.com/darkkaiser/discount-bot/internal/pkg/version"
)

// defaultTimeout 타임아웃이 지정되지 않았을 때 사용하는 요청 제한 시간
const defaultTimeout = 30 * time.Second

// HTTPFetcher 요청 제한 시간과 User-Agent 자동 추가 기능이 내장된 HTTP 클라이언트 구현체입니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher 지정된 타임아웃으로 새로운 HTTPFetcher 인스턴스를 생성합니다.
// timeout 이 0 이하이면 기본값(30초)을 사용합니다.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: "discount-bot/" + version.Get().Version,
	}
}

// Do 커스텀 HTTP 요청을 실행합니다.
// 요청 헤더에 User-Agent 가 없는 경우 애플리케이션 식별자를 추가합니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	return h.client.Do(req)
}
