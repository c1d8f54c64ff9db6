package system

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 전체 헬스체크 상태: healthy, unhealthy
	Status string `json:"status" example:"healthy"`
	// 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`
	// 외부 의존성별 헬스체크 결과 (키: openai, shopify, mailjet)
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}

// StatusResponse 업스트림 API 상태 응답
type StatusResponse struct {
	Success bool `json:"success" example:"true"`
	// 업스트림별 응답 여부 (키: openai, shopify, mailjet)
	Statuses map[string]bool `json:"statuses"`
}
