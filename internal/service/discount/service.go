// Package discount 해석된 할인 요청(DiscountIntent)을 커머스 플랫폼의 할인 규칙과 할인 코드로 만드는 기능을 제공합니다.
package discount

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	"github.com/darkkaiser/discount-bot/internal/service/discount/shopify"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

const component = "discount.service"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Platform 할인 생성에 필요한 커머스 플랫폼 API
type Platform interface {
	ListCollections(ctx context.Context) ([]shopify.CustomCollection, error)
	CreatePriceRule(ctx context.Context, rule shopify.PriceRule) (int64, error)
	CreateDiscountCode(ctx context.Context, priceRuleID int64, code string) (string, error)
	ListPriceRules(ctx context.Context) ([]shopify.PriceRule, error)
	ListDiscountCodes(ctx context.Context, priceRuleID int64) ([]shopify.DiscountCode, error)
}

// Service 할인 생성 오케스트레이터
type Service struct {
	platform Platform
}

// NewService 새로운 Service 를 생성합니다.
func NewService(platform Platform) *Service {
	return &Service{
		platform: platform,
	}
}

// CodeFromTitle 할인 규칙 제목으로 할인 코드를 만듭니다. 연속된 공백을 하이픈 하나로 바꾸고 대문자로 변환합니다.
//
//	"Discount for Summer Hoodies" -> "DISCOUNT-FOR-SUMMER-HOODIES"
func CodeFromTitle(title string) string {
	return strings.ToUpper(whitespaceRun.ReplaceAllString(title, "-"))
}

// CreateDiscount 할인 요청으로 커머스 플랫폼에 할인 규칙을 만들고, 코드형이면 할인 코드까지 발급합니다.
//
// # 목적
//
// 해석된 할인 요청 하나를 Shopify 의 price rule 과 discount code 로 옮깁니다.
// 컬렉션 이름이 있으면 이름으로 컬렉션을 찾아 해당 컬렉션만 대상으로 하고, 찾지 못하면 전체 상품 대상으로 생성한 뒤 Warnings 에 기록합니다.
//
// # 동작 방식
//
// 1. 컬렉션 이름이 있으면 컬렉션 목록을 조회하여 대소문자 구분 없이 일치하는 컬렉션을 찾습니다
// 2. 할인 규칙(price rule)을 생성합니다. 코드형은 사용 횟수 1회, 고객당 1회로 제한됩니다
// 3. 코드형이면 규칙 제목으로 만든 코드(CodeFromTitle)를 발급합니다
//
// 매개변수:
//   - ctx: 플랫폼 호출의 취소와 타임아웃을 제어하는 컨텍스트
//   - intent: 검증을 마친 할인 요청 (nil 이면 Internal 에러)
//
// 반환값:
//   - 생성된 할인의 기록 (자동 적용형이면 Code 가 비어 있음)
//   - 플랫폼 호출 실패 시 ExecutionFailed 타입의 에러
//
// 주의사항:
//   - 규칙 생성 후 코드 발급이 실패하면 규칙은 플랫폼에 남습니다. 이때 에러 체인에 *OrphanedRuleError 가 들어 있고, 가장 바깥 메시지에 규칙 ID 가 포함됩니다
func (s *Service) CreateDiscount(ctx context.Context, intent *DiscountIntent) (*DiscountRecord, error) {
	if intent == nil {
		return nil, apperrors.New(apperrors.Internal, "할인 요청이 비어있습니다")
	}

	record := &DiscountRecord{
		Type:   intent.DiscountType,
		Intent: *intent,
	}

	title := intent.Title()
	rule := shopify.PriceRule{
		Title:             title,
		TargetType:        shopify.TargetTypeLineItem,
		TargetSelection:   shopify.TargetSelectionAll,
		AllocationMethod:  shopify.AllocationMethodAcross,
		ValueType:         shopify.ValueTypePercentage,
		Value:             intent.DiscountPercent.Neg().String(),
		CustomerSelection: shopify.CustomerSelectionAll,
		StartsAt:          intent.StartDate.Time,
	}
	endsAt := intent.EndDate.Time
	rule.EndsAt = &endsAt

	if name := strings.TrimSpace(intent.CollectionName); name != "" {
		collection, err := s.resolveCollection(ctx, name)
		if err != nil {
			return nil, err
		}

		if collection != nil {
			rule.TargetSelection = shopify.TargetSelectionEntitled
			rule.EntitledCollectionIDs = []int64{collection.PlatformID}
			record.CollectionID = collection.PlatformID
		} else {
			applog.WithComponentAndFields(component, applog.Fields{
				"collection_name": name,
				"title":           title,
			}).Warn("요청한 컬렉션을 찾을 수 없어 전체 상품 대상 할인으로 생성합니다")

			record.Warnings = append(record.Warnings, fmt.Sprintf("collection %q not found; discount applies to all products", name))
		}
	}

	if intent.DiscountType == TypeAutomatic {
		rule.OncePerCustomer = false
	} else {
		usageLimit := 1
		rule.UsageLimit = &usageLimit
		rule.OncePerCustomer = true
	}

	ruleID, err := s.platform.CreatePriceRule(ctx, rule)
	if err != nil {
		return nil, err
	}
	record.PlatformRuleID = ruleID

	if intent.DiscountType != TypeAutomatic {
		code, err := s.platform.CreateDiscountCode(ctx, ruleID, CodeFromTitle(title))
		if err != nil {
			return nil, apperrors.Wrap(&OrphanedRuleError{RuleID: ruleID, Err: err}, apperrors.ExecutionFailed, fmt.Sprintf("할인 규칙(price_rule_id=%d)은 생성되었으나 할인 코드 발급에 실패하여 코드 없이 남아 있습니다", ruleID))
		}
		record.Code = code
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"price_rule_id": record.PlatformRuleID,
		"type":          record.Type,
		"code":          record.Code,
		"collection_id": record.CollectionID,
	}).Info("할인 생성이 완료되었습니다")

	return record, nil
}

// resolveCollection 대소문자와 앞뒤 공백을 무시하고 제목이 일치하는 컬렉션을 찾습니다. 없으면 nil 을 반환합니다.
func (s *Service) resolveCollection(ctx context.Context, name string) (*Collection, error) {
	collections, err := s.ListCollections(ctx)
	if err != nil {
		return nil, err
	}

	// Caser 는 상태를 가지므로 호출마다 새로 만듭니다.
	fold := cases.Fold()
	target := fold.String(strings.TrimSpace(name))
	found, ok := lo.Find(collections, func(c Collection) bool {
		return fold.String(strings.TrimSpace(c.Title)) == target
	})
	if !ok {
		return nil, nil
	}

	return &found, nil
}

// ListCollections 커머스 플랫폼의 컬렉션 목록을 조회합니다. 매 호출마다 플랫폼에서 새로 읽습니다.
func (s *Service) ListCollections(ctx context.Context) ([]Collection, error) {
	collections, err := s.platform.ListCollections(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(collections, func(c shopify.CustomCollection, _ int) Collection {
		return Collection{PlatformID: c.ID, Title: c.Title}
	}), nil
}

// ListDiscounts 커머스 플랫폼에 등록된 할인 규칙을 조회하여 DiscountSummary 로 재구성합니다.
//
// 할인 코드가 하나 이상 발급된 규칙은 코드형(첫 번째 코드 사용), 그렇지 않으면 자동 적용형으로 분류합니다.
func (s *Service) ListDiscounts(ctx context.Context) ([]DiscountSummary, error) {
	rules, err := s.platform.ListPriceRules(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]DiscountSummary, 0, len(rules))
	for _, rule := range rules {
		codes, err := s.platform.ListDiscountCodes(ctx, rule.ID)
		if err != nil {
			return nil, err
		}

		summary := DiscountSummary{
			PlatformRuleID:  rule.ID,
			Title:           rule.Title,
			DiscountPercent: percentFromRuleValue(rule.Value),
			StartsAt:        rule.StartsAt,
			EndsAt:          rule.EndsAt,
			CollectionIDs:   rule.EntitledCollectionIDs,
			Type:            TypeAutomatic,
		}
		if len(codes) > 0 {
			summary.Type = TypeCode
			summary.Code = codes[0].Code
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// percentFromRuleValue 플랫폼의 음수 할인 값("-20.0")을 양수 할인율로 되돌립니다.
func percentFromRuleValue(value string) Percent {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Percent{}
	}
	return Percent{d.Neg()}
}
