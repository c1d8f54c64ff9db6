package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// 400 Bad Request
	ErrMsgBadRequestInvalidBody = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"
	ErrMsgEmailRequired         = "이메일은 필수입니다"

	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 415 Unsupported Media Type
	ErrMsgUnsupportedMediaType = "지원하지 않는 Content-Type 형식입니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"
)

// 시스템 구동 시 필수 의존성이 누락되었을 때의 패닉 메시지 상수입니다.
const (
	PanicMsgAppConfigRequired      = "AppConfig는 필수입니다"
	PanicMsgCommandServiceRequired = "CommandService는 필수입니다"
	PanicMsgCatalogRequired        = "Catalog는 필수입니다"
	PanicMsgRecipientStoreRequired = "RecipientStore는 필수입니다"
	PanicMsgStatusCheckerRequired  = "StatusChecker는 필수입니다"
)
