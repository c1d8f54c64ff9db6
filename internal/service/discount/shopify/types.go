package shopify

import "time"

// PriceRule Shopify Admin REST API 의 price_rule 리소스
type PriceRule struct {
	ID                    int64      `json:"id,omitempty"`
	Title                 string     `json:"title"`
	TargetType            string     `json:"target_type"`
	TargetSelection       string     `json:"target_selection"`
	AllocationMethod      string     `json:"allocation_method"`
	ValueType             string     `json:"value_type"`
	Value                 string     `json:"value"`
	CustomerSelection     string     `json:"customer_selection"`
	EntitledCollectionIDs []int64    `json:"entitled_collection_ids,omitempty"`
	OncePerCustomer       bool       `json:"once_per_customer"`
	UsageLimit            *int       `json:"usage_limit,omitempty"`
	StartsAt              time.Time  `json:"starts_at"`
	EndsAt                *time.Time `json:"ends_at,omitempty"`
}

// CustomCollection Shopify 의 수동(custom) 컬렉션
type CustomCollection struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle,omitempty"`
}

// DiscountCode price_rule 에 연결된 할인 코드
type DiscountCode struct {
	ID          int64  `json:"id,omitempty"`
	PriceRuleID int64  `json:"price_rule_id,omitempty"`
	Code        string `json:"code"`
	UsageCount  int    `json:"usage_count,omitempty"`
}

const (
	TargetTypeLineItem      = "line_item"
	TargetSelectionAll      = "all"
	TargetSelectionEntitled = "entitled"
	AllocationMethodAcross  = "across"
	ValueTypePercentage     = "percentage"
	CustomerSelectionAll    = "all"
)
