// Package mocks fetcher 패키지의 테스트용 Mock 구현체를 제공합니다.
package mocks

import (
	"bytes"
	"io"
	"net/http"
	"sync"

	"github.com/darkkaiser/discount-bot/internal/service/fetcher"
	"github.com/stretchr/testify/mock"
)

var _ fetcher.Fetcher = (*MockFetcher)(nil)
var _ fetcher.Fetcher = (*RecordingFetcher)(nil)

// ----------------------------------------------------------------------------
// MockFetcher (testify/mock 기반)
// ----------------------------------------------------------------------------

// MockFetcher Fetcher 인터페이스의 Mock 구현체 (Testify 사용)
type MockFetcher struct {
	mock.Mock
}

// NewMockFetcher 새로운 MockFetcher 인스턴스를 생성합니다.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

func (m *MockFetcher) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// NewMockResponse 주어진 body 와 status code 를 가진 새로운 http.Response 를 생성합니다.
func NewMockResponse(body string, statusCode int) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

// NewMockResponseWithJSON Content-Type 이 application/json 으로 설정된 응답을 생성합니다.
func NewMockResponseWithJSON(jsonBody string, statusCode int) *http.Response {
	resp := NewMockResponse(jsonBody, statusCode)
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

// ----------------------------------------------------------------------------
// RecordingFetcher (수동 구현, Thread-Safe)
// ----------------------------------------------------------------------------

// RequestRecord RecordingFetcher 에 요청된 HTTP 요청의 상세 정보
type RequestRecord struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

type routeKey struct {
	method string
	url    string
}

type cannedResponse struct {
	body       string
	statusCode int
	err        error
}

// RecordingFetcher "메서드 + URL" 별로 미리 정해둔 응답을 돌려주고, 받은 요청을 모두 기록합니다.
// 등록되지 않은 요청에는 404 를 반환합니다.
type RecordingFetcher struct {
	mu        sync.Mutex
	responses map[routeKey]cannedResponse
	requests  []RequestRecord
}

// NewRecordingFetcher 새로운 RecordingFetcher 를 생성합니다.
func NewRecordingFetcher() *RecordingFetcher {
	return &RecordingFetcher{
		responses: make(map[routeKey]cannedResponse),
	}
}

// SetResponse 지정된 메서드와 URL 에 대한 응답을 설정합니다.
func (f *RecordingFetcher) SetResponse(method, url string, statusCode int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.responses[routeKey{method, url}] = cannedResponse{body: body, statusCode: statusCode}
}

// SetError 지정된 메서드와 URL 에 대해 네트워크 에러를 반환하도록 설정합니다.
func (f *RecordingFetcher) SetError(method, url string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.responses[routeKey{method, url}] = cannedResponse{err: err}
}

func (f *RecordingFetcher) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		_ = req.Body.Close()
	}

	f.mu.Lock()
	f.requests = append(f.requests, RequestRecord{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
		Body:   body,
	})
	canned, ok := f.responses[routeKey{req.Method, req.URL.String()}]
	f.mu.Unlock()

	if !ok {
		resp := NewMockResponseWithJSON(`{"errors":"Not Found"}`, http.StatusNotFound)
		resp.Request = req
		return resp, nil
	}
	if canned.err != nil {
		return nil, canned.err
	}

	resp := NewMockResponseWithJSON(canned.body, canned.statusCode)
	resp.Request = req
	return resp, nil
}

// Requests 지금까지 기록된 요청의 복사본을 반환합니다.
func (f *RecordingFetcher) Requests() []RequestRecord {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]RequestRecord(nil), f.requests...)
}

// RequestCount 기록된 요청의 개수를 반환합니다.
func (f *RecordingFetcher) RequestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.requests)
}
