// Package intent 자연어 할인 명령어를 언어 모델(OpenAI Chat Completions)로 해석하여 DiscountIntent 로 변환합니다.
package intent

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/darkkaiser/discount-bot/internal/service/discount"
	"github.com/darkkaiser/discount-bot/internal/service/fetcher"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/iancoleman/strcase"
	"github.com/tidwall/gjson"
)

const component = "intent.parser"

// legacyAliases 이전 프롬프트에서 사용하던 필드명을 현재 필드명으로 연결합니다.
var legacyAliases = map[string]string{
	"discount":   "discountPercent",
	"percent":    "discountPercent",
	"product":    "productLabel",
	"collection": "collectionName",
}

// Config 언어 모델 호출 설정
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// Parser 자연어 명령어 해석기
type Parser struct {
	fetcher  fetcher.Fetcher
	config   Config
	validate *validator.Validate
}

// NewParser 새로운 Parser 를 생성합니다.
func NewParser(f fetcher.Fetcher, config Config) *Parser {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &Parser{
		fetcher:  f,
		config:   config,
		validate: newValidator(),
	}
}

// rawIntent 모델이 돌려준 JSON 객체를 키 정규화 후 느슨하게 디코딩한 중간 결과
//
// 할인율은 JSON 타입을 구분해야 하므로 여기에 포함하지 않고 percentFrom 으로 따로 읽습니다.
type rawIntent struct {
	ProductLabel    string `mapstructure:"productLabel"`
	StartDate       string `mapstructure:"startDate"`
	EndDate         string `mapstructure:"endDate"`
	DiscountType    string `mapstructure:"discountType"`
	CollectionName  string `mapstructure:"collectionName"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format"`
}

// Parse 명령어를 해석합니다.
//
// # 목적
//
// 운영자가 입력한 자연어 명령어를 언어 모델에 보내 할인율, 상품, 기간, 할인 유형, 컬렉션으로 이루어진 DiscountIntent 로 바꿉니다.
// 모델이 돌려준 JSON 은 키 표기(snake_case, PascalCase)와 이전 필드명을 정규화한 뒤 읽습니다.
//
// 매개변수:
//   - ctx: 모델 호출의 취소와 타임아웃을 제어하는 컨텍스트
//   - commandText: 자연어 명령어 (앞뒤 공백은 제거됨)
//
// 반환값:
//   - 검증을 통과한 할인 요청과 true
//   - 해석에 실패하면 nil 과 false
//
// 주의사항:
//   - 에러를 반환하지 않습니다. 모델 호출 실패나 형식 오류, 필수 항목 누락 모두 (nil, false) 를 반환하고 사유를 로그로 남깁니다
//   - 공백뿐인 명령어는 모델을 호출하지 않고 바로 실패합니다
//   - 할인율이 숫자나 문자열이 아니거나 해석할 수 없으면 0 으로 처리합니다
func (p *Parser) Parse(ctx context.Context, commandText string) (*discount.DiscountIntent, bool) {
	commandText = strings.TrimSpace(commandText)
	if commandText == "" {
		applog.WithComponent(component).Debug("빈 명령어는 해석하지 않습니다")
		return nil, false
	}

	content, err := p.complete(ctx, commandText)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("언어 모델 호출에 실패하였습니다")
		return nil, false
	}

	intent, err := p.decode(content)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"content": content,
			"error":   err,
		}).Warn("언어 모델 응답을 할인 요청으로 해석할 수 없습니다")
		return nil, false
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"discount_percent": intent.DiscountPercent.String(),
		"product_label":    intent.ProductLabel,
		"start_date":       intent.StartDate.String(),
		"end_date":         intent.EndDate.String(),
		"discount_type":    intent.DiscountType,
		"collection_name":  intent.CollectionName,
	}).Info("명령어 해석이 완료되었습니다")

	return intent, true
}

// complete Chat Completions API 를 한 번 호출하고 첫 번째 선택지의 메시지 내용을 반환합니다.
func (p *Parser) complete(ctx context.Context, commandText string) (string, error) {
	body, err := fetcher.Do(ctx, p.fetcher, fetcher.Request{
		Method: http.MethodPost,
		URL:    p.config.BaseURL + "/chat/completions",
		Header: map[string]string{"Authorization": "Bearer " + p.config.APIKey},
		Body: chatRequest{
			Model: p.config.Model,
			Messages: []chatMessage{
				{Role: "system", Content: systemInstruction},
				{Role: "user", Content: commandText},
			},
			Temperature:    p.config.Temperature,
			ResponseFormat: map[string]string{"type": "json_object"},
		},
	})
	if err != nil {
		return "", err
	}

	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() || content.Type != gjson.String {
		return "", fmt.Errorf("응답에 choices.0.message.content 가 없습니다")
	}

	return content.String(), nil
}

// decode 모델이 돌려준 메시지 내용을 DiscountIntent 로 변환하고 검증합니다.
func (p *Parser) decode(content string) (*discount.DiscountIntent, error) {
	if !gjson.Valid(content) {
		return nil, fmt.Errorf("메시지 내용이 올바른 JSON 이 아닙니다")
	}
	root := gjson.Parse(content)
	if !root.IsObject() {
		return nil, fmt.Errorf("메시지 내용이 JSON 객체가 아닙니다")
	}

	fields := normalizeKeys(root)
	values := make(map[string]any, len(fields))
	for name, value := range fields {
		values[name] = value.Value()
	}

	var raw rawIntent
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("필드 변환에 실패했습니다: %w", err)
	}

	startDate, err := discount.ParseDate(raw.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := discount.ParseDate(raw.EndDate)
	if err != nil {
		return nil, err
	}

	intent := &discount.DiscountIntent{
		DiscountPercent: percentFrom(fields["discountPercent"]),
		ProductLabel:    strings.TrimSpace(raw.ProductLabel),
		StartDate:       startDate,
		EndDate:         endDate,
		DiscountType:    discount.ParseDiscountType(raw.DiscountType),
		CollectionName:  strings.TrimSpace(raw.CollectionName),
	}

	if err := p.validate.Struct(intent); err != nil {
		return nil, fmt.Errorf("필수 항목 검증에 실패했습니다: %w", err)
	}
	if intent.EndDate.Before(intent.StartDate.Time) {
		return nil, fmt.Errorf("종료일(%s)이 시작일(%s)보다 빠릅니다", intent.EndDate, intent.StartDate)
	}

	return intent, nil
}

// percentFrom 할인율 값을 읽습니다. JSON 숫자와 문자열만 받으며, 그 외의 타입이나 해석할 수 없는 문자열은 0 으로 처리합니다.
func percentFrom(value gjson.Result) discount.Percent {
	var s string
	switch value.Type {
	case gjson.Number:
		s = value.Raw
	case gjson.String:
		s = value.String()
	default:
		return discount.Percent{}
	}

	percent, err := discount.ParsePercent(s)
	if err != nil {
		return discount.Percent{}
	}
	return percent
}

// normalizeKeys 최상위 키를 lowerCamel 로 정규화하고 이전 필드명을 현재 필드명으로 바꿉니다.
// 같은 필드가 여러 키로 들어오면 현재 필드명으로 들어온 값을 우선합니다.
func normalizeKeys(root gjson.Result) map[string]gjson.Result {
	fields := make(map[string]gjson.Result)
	aliased := make(map[string]gjson.Result)

	root.ForEach(func(key, value gjson.Result) bool {
		name := strcase.ToLowerCamel(strings.TrimSpace(key.String()))
		if canonical, ok := legacyAliases[name]; ok {
			aliased[canonical] = value
			return true
		}
		fields[name] = value
		return true
	})

	for name, value := range aliased {
		if _, ok := fields[name]; !ok {
			fields[name] = value
		}
	}

	return fields
}

// newValidator DiscountIntent 검증용 Validator 를 생성합니다.
// Percent 와 Date 는 검증 시 각각 float64, time.Time 으로 변환됩니다.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if p, ok := field.Interface().(discount.Percent); ok {
			f, _ := p.Float64()
			return f
		}
		return nil
	}, discount.Percent{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(discount.Date); ok {
			return d.Time
		}
		return nil
	}, discount.Date{})

	return v
}

// Probe 모델 목록(GET /models)을 조회하여 API 접근 가능 여부를 확인합니다.
func (p *Parser) Probe(ctx context.Context) error {
	_, err := fetcher.Do(ctx, p.fetcher, fetcher.Request{
		Method: http.MethodGet,
		URL:    p.config.BaseURL + "/models",
		Header: map[string]string{"Authorization": "Bearer " + p.config.APIKey},
	})
	return err
}
