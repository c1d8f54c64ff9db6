package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	"github.com/darkkaiser/discount-bot/internal/service/api/constants"
	"github.com/darkkaiser/discount-bot/internal/service/api/model/response"
	"github.com/darkkaiser/discount-bot/internal/service/fetcher"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 5xx 는 Error, 4xx 는 Warn 레벨로 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code, body := NewErrorResponse(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}
	if errType := apperrors.UnderlyingType(err); errType != apperrors.Unknown {
		fields["error_type"] = errType
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답을 시도하지 않습니다.
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, body)
}

// NewErrorResponse 에러를 HTTP 상태 코드와 표준 에러 응답 본문으로 변환합니다.
//
// # 목적
//
// 전역 에러 핸들러와 부분 성공 응답이 같은 규칙으로 상태 코드와 본문을 만들도록 변환 규칙을 한곳에 둡니다.
//
// # 변환 규칙
//
//   - *echo.HTTPError: 에러의 상태 코드와 메시지를 그대로 사용합니다
//   - AppError: 가장 바깥쪽 에러의 타입이 InvalidInput 이면 400, 그 외에는 모두 500 입니다.
//     메시지는 가장 바깥쪽 AppError 의 메시지이며, 업스트림 API 의 응답 본문이 에러 체인에 있으면 details 로 전달합니다
//   - 그 외: 500 과 일반 메시지
//
// 매개변수:
//   - err: 변환할 에러
//
// 반환값:
//   - HTTP 상태 코드
//   - 응답 본문 (ResultCode 는 상태 코드와 같음)
func NewErrorResponse(err error) (int, response.ErrorResponse) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := constants.ErrMsgInternalServer
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		switch httpErr.Code {
		case http.StatusNotFound:
			message = constants.ErrMsgNotFound
		case http.StatusRequestEntityTooLarge:
			message = constants.ErrMsgRequestEntityTooLarge
		}

		return httpErr.Code, response.ErrorResponse{ResultCode: httpErr.Code, Error: message}
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code := StatusCode(appErr.Type())
		return code, response.ErrorResponse{
			ResultCode: code,
			Error:      appErr.Message(),
			Details:    details(appErr),
		}
	}

	return http.StatusInternalServerError, response.ErrorResponse{
		ResultCode: http.StatusInternalServerError,
		Error:      constants.ErrMsgInternalServer,
	}
}

// StatusCode 에러 타입에 대응하는 HTTP 상태 코드를 반환합니다.
func StatusCode(errType apperrors.ErrorType) int {
	if errType == apperrors.InvalidInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// details 진단용 상세 정보를 추출합니다.
//
// 업스트림 HTTP 응답이 있으면 그 본문을, 없으면 원인 에러의 메시지를 사용합니다.
func details(appErr *apperrors.AppError) string {
	if statusErr, ok := fetcher.AsHTTPStatusError(appErr); ok {
		if statusErr.BodySnippet != "" {
			return statusErr.BodySnippet
		}
		return statusErr.Status
	}

	if cause := errors.Unwrap(appErr); cause != nil {
		return cause.Error()
	}
	return ""
}
