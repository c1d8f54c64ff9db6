package constants

// 헬스체크 상태 상수입니다.
const (
	// HealthStatusHealthy 헬스체크 상태: 정상
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy 헬스체크 상태: 비정상
	HealthStatusUnhealthy = "unhealthy"

	// MsgDepStatusHealthy 외부 의존성 상태: 정상
	MsgDepStatusHealthy = "정상 작동 중"

	// MsgDepStatusUnreachable 외부 의존성 상태: 응답 없음
	MsgDepStatusUnreachable = "인증된 상태 확인 요청에 정상 응답하지 않음"
)
