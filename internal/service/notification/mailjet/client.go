// Package mailjet Mailjet Send API v3.1 클라이언트입니다.
package mailjet

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	"github.com/darkkaiser/discount-bot/internal/service/fetcher"
	"github.com/tidwall/gjson"
)

// Contact 발신자 또는 수신자
type Contact struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

// Message 수신자 한 명에게 보내는 메일
type Message struct {
	From     Contact   `json:"From"`
	To       []Contact `json:"To"`
	Subject  string    `json:"Subject"`
	TextPart string    `json:"TextPart,omitempty"`
	HTMLPart string    `json:"HTMLPart"`
}

// DeliveryFailure 업스트림이 받아들였지만 개별 메시지 발송이 실패한 경우를 나타냅니다.
type DeliveryFailure struct {
	// Recipients 발송에 실패한 수신자 주소
	Recipients []string
}

func (e *DeliveryFailure) Error() string {
	return fmt.Sprintf("메일 %d건의 발송이 실패하였습니다: %s", len(e.Recipients), strings.Join(e.Recipients, ", "))
}

// Client Mailjet API 클라이언트
type Client struct {
	fetcher   fetcher.Fetcher
	baseURL   string
	apiKey    string
	secretKey string
}

// NewClient 새로운 Client 를 생성합니다.
func NewClient(f fetcher.Fetcher, baseURL, apiKey, secretKey string) *Client {
	return &Client{
		fetcher:   f,
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		secretKey: secretKey,
	}
}

func (c *Client) auth() *fetcher.BasicAuth {
	return &fetcher.BasicAuth{Username: c.apiKey, Password: c.secretKey}
}

// Send 메시지들을 한 번의 요청으로 발송합니다.
//
// 업스트림이 2xx 로 응답했더라도 개별 메시지의 Status 가 success 가 아니면 *DeliveryFailure 를 포함한 에러를 반환합니다.
func (c *Client) Send(ctx context.Context, messages []Message) error {
	if len(messages) == 0 {
		return nil
	}

	body, err := fetcher.Do(ctx, c.fetcher, fetcher.Request{
		Method:    http.MethodPost,
		URL:       c.baseURL + "/v3.1/send",
		Body:      map[string][]Message{"Messages": messages},
		BasicAuth: c.auth(),
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "Mailjet 메일 발송 요청이 실패하였습니다")
	}

	var failed []string
	for i, result := range gjson.GetBytes(body, "Messages").Array() {
		if strings.EqualFold(result.Get("Status").String(), "success") {
			continue
		}
		if i < len(messages) && len(messages[i].To) > 0 {
			failed = append(failed, messages[i].To[0].Email)
		}
	}
	if len(failed) > 0 {
		return apperrors.Wrap(&DeliveryFailure{Recipients: failed}, apperrors.Unavailable, "Mailjet 이 일부 메일을 발송하지 못했습니다")
	}

	return nil
}

// Probe 계정 정보(GET /v3/REST/user)를 조회하여 API 접근 가능 여부를 확인합니다.
func (c *Client) Probe(ctx context.Context) error {
	_, err := fetcher.Do(ctx, c.fetcher, fetcher.Request{
		Method:    http.MethodGet,
		URL:       c.baseURL + "/v3/REST/user",
		BasicAuth: c.auth(),
	})
	return err
}
