package request

// EmailRequest 안내 메일 수신자 등록 요청
type EmailRequest struct {
	// Email 등록할 이메일 주소
	Email string `json:"email" validate:"required,email" korean:"이메일" example:"customer@example.com"`
}
