// Package testutil 여러 패키지의 테스트에서 공유하는 헬퍼를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// FreePort 운영체제가 할당한 사용 가능한 TCP 포트를 반환합니다.
func FreePort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "임시 포트 할당 실패")
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForHTTP 지정된 URL 이 응답할 때까지 기다립니다. 응답 코드는 확인하지 않습니다.
func WaitForHTTP(t testing.TB, url string, timeout time.Duration) {
	t.Helper()

	client := &http.Client{
		Timeout:   200 * time.Millisecond,
		Transport: &http.Transport{DisableKeepAlives: true},
	}

	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return true
	}, timeout, 20*time.Millisecond, fmt.Sprintf("서버가 %s 안에 응답하지 않았습니다: %s", timeout, url))
}
