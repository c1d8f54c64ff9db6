// Package shopify Shopify Admin REST API 중 할인 생성과 조회에 필요한 부분만 다루는 클라이언트입니다.
package shopify

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	"github.com/darkkaiser/discount-bot/internal/service/fetcher"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/tidwall/gjson"
)

const (
	component = "discount.shopify"

	// pageLimit Shopify REST API 목록 조회의 최대 페이지 크기
	pageLimit = 250

	accessTokenHeader = "X-Shopify-Access-Token"
)

// Client Shopify Admin REST API 클라이언트
type Client struct {
	fetcher     fetcher.Fetcher
	baseURL     string
	accessToken string
}

// NewClient 새로운 Client 를 생성합니다.
//
// storeURL 은 "https://{shop}.myshopify.com" 형태이며, 모든 요청은 {storeURL}/admin/api/{apiVersion} 아래로 전송됩니다.
func NewClient(f fetcher.Fetcher, storeURL, apiVersion, accessToken string) *Client {
	return &Client{
		fetcher:     f,
		baseURL:     fmt.Sprintf("%s/admin/api/%s", strings.TrimRight(storeURL, "/"), apiVersion),
		accessToken: accessToken,
	}
}

func (c *Client) request(method, path string, body any) fetcher.Request {
	return fetcher.Request{
		Method: method,
		URL:    c.baseURL + path,
		Header: map[string]string{accessTokenHeader: c.accessToken},
		Body:   body,
	}
}

// ListCollections 스토어의 수동 컬렉션 목록을 조회합니다.
func (c *Client) ListCollections(ctx context.Context) ([]CustomCollection, error) {
	var out struct {
		CustomCollections []CustomCollection `json:"custom_collections"`
	}
	if err := fetcher.FetchJSON(ctx, c.fetcher, c.request(http.MethodGet, fmt.Sprintf("/custom_collections.json?limit=%d", pageLimit), nil), &out); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, "Shopify 컬렉션 목록 조회에 실패했습니다")
	}

	return out.CustomCollections, nil
}

// CreatePriceRule 할인 규칙을 생성하고 생성된 규칙의 ID 를 반환합니다.
func (c *Client) CreatePriceRule(ctx context.Context, rule PriceRule) (int64, error) {
	body, err := fetcher.Do(ctx, c.fetcher, c.request(http.MethodPost, "/price_rules.json", map[string]PriceRule{"price_rule": rule}))
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ExecutionFailed, fmt.Sprintf("Shopify 할인 규칙('%s') 생성에 실패했습니다", rule.Title))
	}

	id := gjson.GetBytes(body, "price_rule.id")
	if !id.Exists() || id.Int() == 0 {
		return 0, apperrors.New(apperrors.ExecutionFailed, "Shopify 할인 규칙 생성 응답에 규칙 ID 가 없습니다")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"price_rule_id": id.Int(),
		"title":         rule.Title,
	}).Info("Shopify 할인 규칙을 생성하였습니다")

	return id.Int(), nil
}

// CreateDiscountCode 할인 규칙에 할인 코드를 발급하고, 플랫폼이 저장한 코드를 반환합니다.
func (c *Client) CreateDiscountCode(ctx context.Context, priceRuleID int64, code string) (string, error) {
	payload := map[string]DiscountCode{"discount_code": {Code: code}}

	body, err := fetcher.Do(ctx, c.fetcher, c.request(http.MethodPost, fmt.Sprintf("/price_rules/%d/discount_codes.json", priceRuleID), payload))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ExecutionFailed, fmt.Sprintf("Shopify 할인 코드('%s') 발급에 실패했습니다", code))
	}

	created := gjson.GetBytes(body, "discount_code.code").String()
	if created == "" {
		created = code
	}

	return created, nil
}

// ListPriceRules 스토어에 등록된 할인 규칙 목록을 조회합니다.
func (c *Client) ListPriceRules(ctx context.Context) ([]PriceRule, error) {
	var out struct {
		PriceRules []PriceRule `json:"price_rules"`
	}
	if err := fetcher.FetchJSON(ctx, c.fetcher, c.request(http.MethodGet, fmt.Sprintf("/price_rules.json?limit=%d", pageLimit), nil), &out); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, "Shopify 할인 규칙 목록 조회에 실패했습니다")
	}

	return out.PriceRules, nil
}

// ListDiscountCodes 할인 규칙에 발급된 할인 코드 목록을 조회합니다.
func (c *Client) ListDiscountCodes(ctx context.Context, priceRuleID int64) ([]DiscountCode, error) {
	var out struct {
		DiscountCodes []DiscountCode `json:"discount_codes"`
	}
	if err := fetcher.FetchJSON(ctx, c.fetcher, c.request(http.MethodGet, fmt.Sprintf("/price_rules/%d/discount_codes.json", priceRuleID), nil), &out); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, fmt.Sprintf("Shopify 할인 코드 목록(price_rule_id=%d) 조회에 실패했습니다", priceRuleID))
	}

	return out.DiscountCodes, nil
}

// Probe 스토어 정보(shop.json)를 조회하여 API 접근 가능 여부를 확인합니다.
func (c *Client) Probe(ctx context.Context) error {
	_, err := fetcher.Do(ctx, c.fetcher, c.request(http.MethodGet, "/shop.json", nil))
	return err
}
