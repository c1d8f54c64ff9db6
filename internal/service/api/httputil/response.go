package httputil

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NewBadRequestError 400 Bad Request 에러를 생성합니다.
func NewBadRequestError(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다.
func NewTooManyRequestsError(message string) error {
	return echo.NewHTTPError(http.StatusTooManyRequests, message)
}

// NewUnsupportedMediaTypeError 415 Unsupported Media Type 에러를 생성합니다.
func NewUnsupportedMediaTypeError(message string) error {
	return echo.NewHTTPError(http.StatusUnsupportedMediaType, message)
}

// OK 200 OK 와 함께 응답 본문을 JSON 으로 반환합니다.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// NonNil nil 슬라이스를 빈 슬라이스로 바꿔 JSON 응답에서 null 대신 []가 나가도록 합니다.
func NonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
