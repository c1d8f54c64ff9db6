// Package fetcher 외부 REST API(OpenAI, Shopify, Mailjet) 호출에 공통으로 사용하는 HTTP 계층입니다.
//
// 재시도는 수행하지 않습니다. 모든 실패는 호출자에게 즉시 보고됩니다.
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
)

const component = "service.fetcher"

// maxResponseBodySize 정상 응답 본문으로 읽어들일 최대 크기입니다. (10MB)
const maxResponseBodySize = 10 * 1024 * 1024

// Fetcher HTTP 요청을 수행하는 인터페이스
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request 외부 API 호출 한 건을 기술합니다.
type Request struct {
	Method string
	URL    string
	Header map[string]string

	// Body 요청 본문입니다. nil 이 아니면 JSON 으로 직렬화하여 전송합니다.
	Body any

	// BasicAuth 설정된 경우 Basic 인증 헤더를 추가합니다.
	BasicAuth *BasicAuth
}

// BasicAuth Basic 인증 자격 증명
type BasicAuth struct {
	Username string
	Password string
}

// Do 요청을 전송하고 2xx 응답의 본문을 반환합니다.
//
// 2xx 가 아닌 응답은 *HTTPStatusError 를 포함한 에러로 반환되며, 네트워크 오류는 Unavailable 타입으로 래핑됩니다.
func Do(ctx context.Context, f Fetcher, r Request) ([]byte, error) {
	req, err := newRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	resp, err := f.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("API(%s) 요청 전송 중 에러가 발생했습니다", RedactURL(req.URL)))
	}
	defer resp.Body.Close()

	if err := CheckResponseStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("API(%s) 응답 본문을 읽는 중 에러가 발생했습니다", RedactURL(req.URL)))
	}

	return body, nil
}

// FetchJSON 요청을 전송하고 응답 본문(JSON)을 지정된 구조체(v)로 디코딩합니다.
func FetchJSON(ctx context.Context, f Fetcher, r Request, v any) error {
	body, err := Do(ctx, f, r)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("API(%s) 응답 데이터의 JSON 변환이 실패하였습니다", r.URL))
	}

	return nil
}

func newRequest(ctx context.Context, r Request) (*http.Request, error) {
	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.Internal, "요청 본문을 JSON 으로 변환하는데 실패했습니다")
		}
		body = bytes.NewReader(b)
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, r.URL, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("HTTP 요청 생성에 실패했습니다 (URL: %s)", r.URL))
	}

	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range r.Header {
		req.Header.Set(key, value)
	}
	if r.BasicAuth != nil {
		req.SetBasicAuth(r.BasicAuth.Username, r.BasicAuth.Password)
	}

	return req, nil
}
