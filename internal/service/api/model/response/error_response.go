package response

import "github.com/darkkaiser/discount-bot/internal/service/discount"

// ErrorResponse API 오류 응답
type ErrorResponse struct {
	// Success 항상 false
	Success bool `json:"success" example:"false"`

	// ResultCode HTTP 상태 코드 (예: 400, 500)
	ResultCode int `json:"result_code" example:"500"`

	// Error 에러 메시지
	Error string `json:"error" example:"커머스 플랫폼에 할인을 생성하지 못했습니다"`

	// Details 업스트림 API 가 반환한 응답 본문 등 진단용 상세 정보
	Details string `json:"details,omitempty" example:"{\"errors\":{\"title\":[\"can't be blank\"]}}"`
}

// CommandErrorResponse 할인은 생성되었으나 안내 메일 발송이 실패한 부분 성공 응답
//
// 호출자는 intent 와 record 의 존재로 할인이 이미 생성되었음을 판단합니다.
type CommandErrorResponse struct {
	ErrorResponse

	Intent *discount.DiscountIntent `json:"intent"`
	Record *discount.DiscountRecord `json:"record"`
}
