package response

import "github.com/darkkaiser/discount-bot/internal/service/discount"

// CommandResponse 명령어 실행 성공 응답
type CommandResponse struct {
	Success bool                     `json:"success" example:"true"`
	Intent  *discount.DiscountIntent `json:"intent"`
	Record  *discount.DiscountRecord `json:"record"`

	// Recipients 안내 메일 발송 대상 수
	Recipients int `json:"recipients" example:"12"`
}

// ParseResponse 명령어 해석(미리보기) 성공 응답
type ParseResponse struct {
	Success bool                     `json:"success" example:"true"`
	Intent  *discount.DiscountIntent `json:"intent"`
}

// CollectionsResponse 컬렉션 목록 응답
type CollectionsResponse struct {
	Success     bool                  `json:"success" example:"true"`
	Collections []discount.Collection `json:"collections"`
}

// DiscountsResponse 할인 목록 응답
type DiscountsResponse struct {
	Success   bool                       `json:"success" example:"true"`
	Discounts []discount.DiscountSummary `json:"discounts"`
}

// EmailsResponse 수신자 목록 응답
type EmailsResponse struct {
	Success bool     `json:"success" example:"true"`
	Emails  []string `json:"emails"`
}
