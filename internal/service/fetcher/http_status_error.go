package fetcher

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	"golang.org/x/net/html/charset"
)

// maxBodySnippetSize 에러에 포함할 응답 본문의 최대 크기입니다. (4KB)
const maxBodySnippetSize = 4 * 1024

// HTTPStatusError 2xx 가 아닌 응답을 받았을 때 상태 코드와 응답 정보를 담는 구조화된 에러입니다.
//
// API 계층은 errors.As 로 이 타입을 꺼내 업스트림 응답 본문(BodySnippet)을 에러 응답의 details 로 전달합니다.
type HTTPStatusError struct {
	// StatusCode 서버가 반환한 HTTP 상태 코드입니다.
	StatusCode int

	// Status HTTP 상태 텍스트입니다. (예: "422 Unprocessable Entity")
	Status string

	// URL 요청 대상 URL 입니다. 민감한 쿼리 파라미터는 마스킹됩니다.
	URL string

	// Header 민감한 헤더가 마스킹된 응답 헤더입니다.
	Header http.Header

	// BodySnippet UTF-8 로 변환된 응답 본문의 앞부분(최대 4KB)입니다.
	BodySnippet string

	// Cause 에러 타입 분류를 위한 내부 도메인 에러입니다.
	Cause error
}

// Error 표준 error 인터페이스를 구현합니다.
//
//	"HTTP {상태코드} ({상태텍스트}) URL: {URL}, Body: {본문일부}: {원인에러}"
func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += fmt.Sprintf(" URL: %s", e.URL)
	}
	if e.BodySnippet != "" {
		msg += fmt.Sprintf(", Body: %s", e.BodySnippet)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

// Unwrap 원인 에러(Cause)를 반환합니다.
func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}

// AsHTTPStatusError 에러 체인에서 *HTTPStatusError 를 찾아 반환합니다.
func AsHTTPStatusError(err error) (*HTTPStatusError, bool) {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// CheckResponseStatus 응답 상태 코드가 2xx 가 아니면 *HTTPStatusError 를 반환합니다.
//
// 에러를 반환하는 경우 응답 본문의 앞부분을 읽어 BodySnippet 에 담습니다.
// 응답 본문을 닫는 것은 호출자의 책임입니다.
func CheckResponseStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errType apperrors.ErrorType
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		errType = apperrors.Unauthorized
	case resp.StatusCode == http.StatusForbidden:
		errType = apperrors.Forbidden
	case resp.StatusCode == http.StatusNotFound:
		errType = apperrors.NotFound
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		errType = apperrors.Unavailable
	default:
		errType = apperrors.ExecutionFailed
	}

	statusErr := &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		Header:      redactHeaders(resp.Header),
		BodySnippet: readBodySnippet(resp),
		Cause:       apperrors.New(errType, fmt.Sprintf("HTTP 요청이 실패했습니다 (상태 코드: %d)", resp.StatusCode)),
	}
	if resp.Request != nil {
		statusErr.URL = RedactURL(resp.Request.URL)
	}

	return statusErr
}

// readBodySnippet 응답 본문의 앞부분을 Content-Type 의 charset 에 맞춰 UTF-8 로 변환하여 반환합니다.
func readBodySnippet(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetSize))
	if err != nil || len(raw) == 0 {
		return ""
	}

	r, err := charset.NewReader(strings.NewReader(string(raw)), resp.Header.Get("Content-Type"))
	if err != nil {
		return strings.TrimSpace(string(raw))
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return strings.TrimSpace(string(raw))
	}

	return strings.TrimSpace(string(decoded))
}
