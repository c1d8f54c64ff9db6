package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultBasePath 도메인 엔드포인트가 등록되는 기본 경로
	DefaultBasePath = "/api"

	// DefaultRequestTimeout 요청 처리 제한 시간이 설정되지 않았을 때 사용하는 기본값 (60초)
	DefaultRequestTimeout = 60 * time.Second

	// DefaultReadTimeout 요청 본문을 읽는 최대 시간
	DefaultReadTimeout = 15 * time.Second

	// DefaultReadHeaderTimeout 요청 헤더를 읽는 최대 시간
	// 헤더를 아주 느리게 보내 연결을 점유하는 클라이언트(Slowloris)를 끊어냅니다.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 최대 유휴 시간
	DefaultIdleTimeout = 120 * time.Second

	// WriteTimeoutMargin 응답 쓰기 제한 시간은 요청 처리 제한 시간에 이 값을 더해 정합니다.
	// 명령어 실행은 여러 외부 API 를 순차 호출하므로 요청 처리 제한 시간보다 먼저 연결이 끊기면 안 됩니다.
	WriteTimeoutMargin = 10 * time.Second

	// ShutdownTimeout Graceful Shutdown 최대 대기 시간
	ShutdownTimeout = 5 * time.Second
)

// 보안 관련 상수입니다.
const (
	// DefaultMaxBodySize 요청 본문의 최대 크기 (128KB)
	DefaultMaxBodySize = "128K"

	// DefaultRateLimitPerSecond IP 별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP 별 버스트 허용량
	DefaultRateLimitBurst = 40
)

// SensitiveQueryParams 로그 기록 시 값을 가려야 하는 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"access_token",
	"password",
	"token",
	"secret",
}
