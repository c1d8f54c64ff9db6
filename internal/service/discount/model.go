package discount

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout 할인 기간 날짜의 직렬화 형식
const DateLayout = "2006-01-02"

// DiscountType 할인 적용 방식
type DiscountType string

const (
	// TypeCode 고객이 결제 시 입력하는 1회용 할인 코드
	TypeCode DiscountType = "code"

	// TypeAutomatic 결제 시 자동으로 적용되는 할인
	TypeAutomatic DiscountType = "automatic"
)

// ParseDiscountType 대소문자를 무시하고 "automatic" 이면 TypeAutomatic, 그 외에는 TypeCode 를 반환합니다.
func ParseDiscountType(s string) DiscountType {
	if strings.EqualFold(strings.TrimSpace(s), string(TypeAutomatic)) {
		return TypeAutomatic
	}
	return TypeCode
}

// Percent 할인율(%)입니다. JSON 에서는 따옴표 없는 숫자로 표현됩니다.
type Percent struct {
	decimal.Decimal
}

// NewPercent 정수 할인율로 Percent 를 생성합니다.
func NewPercent(v int64) Percent {
	return Percent{decimal.NewFromInt(v)}
}

// ParsePercent "20", "12.5", "20%", " 20 % " 형태의 문자열을 해석합니다.
func ParsePercent(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{}, fmt.Errorf("할인율 형식이 올바르지 않습니다 (input=%q): %w", s, err)
	}
	return Percent{d}, nil
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Percent) UnmarshalJSON(b []byte) error {
	parsed, err := ParsePercent(string(bytes.Trim(b, `"`)))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Date 시각 정보가 없는 달력 날짜입니다. 내부적으로 UTC 자정의 time.Time 으로 보관합니다.
type Date struct {
	time.Time
}

// NewDate 지정된 연월일의 Date 를 생성합니다.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate "YYYY-MM-DD" 형식의 날짜를 해석합니다.
// RFC3339 타임스탬프가 주어지면 날짜 부분만 사용합니다.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewDate(t.Year(), t.Month(), t.Day()), nil
	}

	return Date{}, fmt.Errorf("날짜 형식이 올바르지 않습니다. YYYY-MM-DD 형식이어야 합니다 (input=%q)", s)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DiscountIntent 자연어 명령어에서 추출한 할인 요청입니다.
type DiscountIntent struct {
	DiscountPercent Percent      `json:"discountPercent" validate:"gte=0,lte=100"`
	ProductLabel    string       `json:"productLabel" validate:"required"`
	StartDate       Date         `json:"startDate" validate:"required"`
	EndDate         Date         `json:"endDate" validate:"required"`
	DiscountType    DiscountType `json:"discountType" validate:"oneof=code automatic"`
	CollectionName  string       `json:"collectionName,omitempty"`
}

// Title 커머스 플랫폼에 등록할 할인 규칙의 제목
func (i *DiscountIntent) Title() string {
	return "Discount for " + i.ProductLabel
}

// Collection 커머스 플랫폼의 상품 컬렉션
type Collection struct {
	PlatformID int64  `json:"platformId"`
	Title      string `json:"title"`
}

// DiscountRecord 커머스 플랫폼에 생성된 할인의 결과입니다.
//
// Type 이 TypeCode 이면 Code 가 반드시 존재하고, TypeAutomatic 이면 Code 는 비어있습니다.
type DiscountRecord struct {
	Code           string         `json:"code,omitempty"`
	PlatformRuleID int64          `json:"platformRuleId"`
	Type           DiscountType   `json:"type"`
	Intent         DiscountIntent `json:"intent"`
	CollectionID   int64          `json:"collectionId,omitempty"`

	// Warnings 할인 생성은 성공했지만 요청과 다르게 처리된 부분 (예: 컬렉션을 찾지 못함)
	Warnings []string `json:"warnings,omitempty"`
}

// Scoped 할인 규칙이 특정 컬렉션으로 한정되었는지 여부
func (r *DiscountRecord) Scoped() bool {
	return r.CollectionID != 0
}

// DiscountSummary 커머스 플랫폼에 등록된 할인 규칙을 조회용으로 재구성한 것입니다.
type DiscountSummary struct {
	PlatformRuleID  int64        `json:"platformRuleId"`
	Title           string       `json:"title"`
	DiscountPercent Percent      `json:"discountPercent"`
	StartsAt        time.Time    `json:"startsAt"`
	EndsAt          *time.Time   `json:"endsAt,omitempty"`
	CollectionIDs   []int64      `json:"collectionIds,omitempty"`
	Type            DiscountType `json:"type"`
	Code            string       `json:"code,omitempty"`
}
