package intent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/darkkaiser/discount-bot/internal/service/discount"
	"github.com/darkkaiser/discount-bot/internal/service/fetcher/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const (
	testBaseURL    = "https://api.openai.test/v1"
	completionsURL = testBaseURL + "/chat/completions"
)

func newTestParser() (*Parser, *mocks.RecordingFetcher) {
	f := mocks.NewRecordingFetcher()
	return NewParser(f, Config{
		APIKey:      "sk-test",
		BaseURL:     testBaseURL + "/",
		Model:       "gpt-3.5-turbo-1106",
		Temperature: 0.2,
	}), f
}

// completion 메시지 내용을 Chat Completions 응답 형식으로 감쌉니다.
func completion(t *testing.T, content string) string {
	t.Helper()

	b, err := json.Marshal(map[string]any{
		"choices": []any{
			map[string]any{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	require.NoError(t, err)
	return string(b)
}

// =============================================================================
// Parse
// =============================================================================

func TestParser_Parse_Success(t *testing.T) {
	t.Parallel()

	p, f := newTestParser()
	f.SetResponse(http.MethodPost, completionsURL, http.StatusOK, completion(t, `{
		"discountPercent": 20,
		"productLabel": "hoodies",
		"startDate": "2025-04-20",
		"endDate": "2025-04-25",
		"discountType": "automatic",
		"collectionName": "Hoodies"
	}`))

	intent, ok := p.Parse(context.Background(), "20% off hoodies from April 20 to 25, automatic, Hoodies collection")
	require.True(t, ok)
	require.NotNil(t, intent)

	assert.Equal(t, "20", intent.DiscountPercent.String())
	assert.Equal(t, "hoodies", intent.ProductLabel)
	assert.Equal(t, "2025-04-20", intent.StartDate.String())
	assert.Equal(t, "2025-04-25", intent.EndDate.String())
	assert.Equal(t, discount.TypeAutomatic, intent.DiscountType)
	assert.Equal(t, "Hoodies", intent.CollectionName)

	reqs := f.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer sk-test", reqs[0].Header.Get("Authorization"))
	body := reqs[0].Body
	assert.Equal(t, "gpt-3.5-turbo-1106", gjson.GetBytes(body, "model").String())
	assert.Equal(t, "json_object", gjson.GetBytes(body, "response_format.type").String())
	assert.Equal(t, 0.2, gjson.GetBytes(body, "temperature").Float())
	assert.Equal(t, "system", gjson.GetBytes(body, "messages.0.role").String())
	assert.Equal(t, "user", gjson.GetBytes(body, "messages.1.role").String())
	assert.Contains(t, gjson.GetBytes(body, "messages.1.content").String(), "hoodies")
}

func TestParser_Parse_Lenient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, intent *discount.DiscountIntent)
	}{
		{
			name:    "snake_case 키",
			content: `{"discount_percent": "15%", "product_label": "socks", "start_date": "2025-05-01", "end_date": "2025-05-02", "discount_type": "code"}`,
			check: func(t *testing.T, intent *discount.DiscountIntent) {
				assert.Equal(t, "15", intent.DiscountPercent.String())
				assert.Equal(t, "socks", intent.ProductLabel)
				assert.Equal(t, discount.TypeCode, intent.DiscountType)
			},
		},
		{
			name:    "PascalCase 키",
			content: `{"DiscountPercent": 12.5, "ProductLabel": "caps", "StartDate": "2025-05-01", "EndDate": "2025-05-01", "DiscountType": "AUTOMATIC"}`,
			check: func(t *testing.T, intent *discount.DiscountIntent) {
				assert.Equal(t, "12.5", intent.DiscountPercent.String())
				assert.Equal(t, discount.TypeAutomatic, intent.DiscountType)
			},
		},
		{
			name:    "이전 필드명",
			content: `{"discount": "25%", "product": "jackets", "startDate": "2025-06-01", "endDate": "2025-06-30", "collection": "Outerwear"}`,
			check: func(t *testing.T, intent *discount.DiscountIntent) {
				assert.Equal(t, "25", intent.DiscountPercent.String())
				assert.Equal(t, "jackets", intent.ProductLabel)
				assert.Equal(t, "Outerwear", intent.CollectionName)
				assert.Equal(t, discount.TypeCode, intent.DiscountType, "할인 유형이 없으면 코드형입니다")
			},
		},
		{
			name:    "해석 불가 할인율은 0",
			content: `{"discountPercent": "a lot", "productLabel": "hats", "startDate": "2025-06-01", "endDate": "2025-06-02"}`,
			check: func(t *testing.T, intent *discount.DiscountIntent) {
				assert.True(t, intent.DiscountPercent.IsZero())
			},
		},
		{
			name:    "불리언 할인율은 0",
			content: `{"discountPercent": true, "productLabel": "hats", "startDate": "2025-06-01", "endDate": "2025-06-02"}`,
			check: func(t *testing.T, intent *discount.DiscountIntent) {
				assert.True(t, intent.DiscountPercent.IsZero())
			},
		},
		{
			name:    "객체 할인율은 0",
			content: `{"discountPercent": {"value": 20}, "productLabel": "hats", "startDate": "2025-06-01", "endDate": "2025-06-02"}`,
			check: func(t *testing.T, intent *discount.DiscountIntent) {
				assert.True(t, intent.DiscountPercent.IsZero())
			},
		},
		{
			name:    "배열 할인율은 0",
			content: `{"discountPercent": [20], "productLabel": "hats", "startDate": "2025-06-01", "endDate": "2025-06-02"}`,
			check: func(t *testing.T, intent *discount.DiscountIntent) {
				assert.True(t, intent.DiscountPercent.IsZero())
			},
		},
		{
			name:    "RFC3339 날짜",
			content: `{"discountPercent": 10, "productLabel": "hats", "startDate": "2025-06-01T00:00:00Z", "endDate": "2025-06-02T10:00:00Z"}`,
			check: func(t *testing.T, intent *discount.DiscountIntent) {
				assert.Equal(t, "2025-06-02", intent.EndDate.String())
			},
		},
		{
			name:    "null 컬렉션",
			content: `{"discountPercent": 10, "productLabel": "hats", "startDate": "2025-06-01", "endDate": "2025-06-02", "collectionName": null}`,
			check: func(t *testing.T, intent *discount.DiscountIntent) {
				assert.Empty(t, intent.CollectionName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, f := newTestParser()
			f.SetResponse(http.MethodPost, completionsURL, http.StatusOK, completion(t, tt.content))

			intent, ok := p.Parse(context.Background(), "command")
			require.True(t, ok)
			tt.check(t, intent)
		})
	}
}

func TestParser_Parse_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "실패: JSON 이 아닌 응답", body: `{"choices":[{"message":{"content":"Sure! 20% off hoodies."}}]}`, code: http.StatusOK},
		{name: "실패: JSON 배열 응답", body: `{"choices":[{"message":{"content":"[1,2]"}}]}`, code: http.StatusOK},
		{name: "실패: choices 없음", body: `{"id":"x"}`, code: http.StatusOK},
		{name: "실패: 업스트림 에러", body: `{"error":{"message":"invalid api key"}}`, code: http.StatusUnauthorized},
		{name: "실패: 상품 누락", body: `{"choices":[{"message":{"content":"{\"discountPercent\":10,\"startDate\":\"2025-06-01\",\"endDate\":\"2025-06-02\"}"}}]}`, code: http.StatusOK},
		{name: "실패: 날짜 형식", body: `{"choices":[{"message":{"content":"{\"discountPercent\":10,\"productLabel\":\"x\",\"startDate\":\"April 20\",\"endDate\":\"2025-06-02\"}"}}]}`, code: http.StatusOK},
		{name: "실패: 종료일이 시작일보다 빠름", body: `{"choices":[{"message":{"content":"{\"discountPercent\":10,\"productLabel\":\"x\",\"startDate\":\"2025-06-05\",\"endDate\":\"2025-06-02\"}"}}]}`, code: http.StatusOK},
		{name: "실패: 할인율 범위 초과", body: `{"choices":[{"message":{"content":"{\"discountPercent\":150,\"productLabel\":\"x\",\"startDate\":\"2025-06-01\",\"endDate\":\"2025-06-02\"}"}}]}`, code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, f := newTestParser()
			f.SetResponse(http.MethodPost, completionsURL, tt.code, tt.body)

			intent, ok := p.Parse(context.Background(), "20% off hoodies")
			assert.False(t, ok)
			assert.Nil(t, intent)
			assert.Equal(t, 1, f.RequestCount())
		})
	}
}

func TestParser_Parse_NetworkError(t *testing.T) {
	t.Parallel()

	p, f := newTestParser()
	f.SetError(http.MethodPost, completionsURL, errors.New("connection reset"))

	intent, ok := p.Parse(context.Background(), "20% off hoodies")
	assert.False(t, ok)
	assert.Nil(t, intent)
}

func TestParser_Parse_EmptyCommand(t *testing.T) {
	t.Parallel()

	p, f := newTestParser()

	for _, text := range []string{"", "   ", "\n\t"} {
		intent, ok := p.Parse(context.Background(), text)
		assert.False(t, ok)
		assert.Nil(t, intent)
	}
	assert.Zero(t, f.RequestCount(), "빈 명령어는 모델을 호출하지 않아야 합니다")
}

func TestParser_Probe(t *testing.T) {
	t.Parallel()

	p, f := newTestParser()
	f.SetResponse(http.MethodGet, testBaseURL+"/models", http.StatusOK, `{"data":[]}`)
	require.NoError(t, p.Probe(context.Background()))
	assert.Equal(t, "Bearer sk-test", f.Requests()[0].Header.Get("Authorization"))

	p2, _ := newTestParser()
	assert.Error(t, p2.Probe(context.Background()))
}

func TestNormalizeKeys(t *testing.T) {
	t.Parallel()

	fields := normalizeKeys(gjson.Parse(`{"product": "old", "productLabel": "new", "Discount_Percent": 5}`))
	assert.Equal(t, "new", fields["productLabel"].String())
	assert.Equal(t, gjson.Number, fields["discountPercent"].Type)
	assert.Equal(t, float64(5), fields["discountPercent"].Num)
	assert.NotContains(t, fields, "product")
}
