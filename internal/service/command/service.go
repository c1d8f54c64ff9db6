// Package command 자연어 할인 명령어의 미리보기(해석만)와 실행(해석, 할인 생성, 안내 메일 발송)을 제공합니다.
//
// 운영자의 확인 절차는 호출자가 미리보기와 실행 두 번의 요청으로 관리하며, 이 패키지는 요청 간 상태를 보관하지 않습니다.
package command

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	"github.com/darkkaiser/discount-bot/internal/service/discount"
	"github.com/darkkaiser/discount-bot/internal/service/notification"
	"github.com/darkkaiser/discount-bot/internal/service/notification/operator"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
)

const component = "command.service"

// Parser 자연어 명령어 해석기
type Parser interface {
	Parse(ctx context.Context, commandText string) (*discount.DiscountIntent, bool)
}

// Orchestrator 할인 생성기
type Orchestrator interface {
	CreateDiscount(ctx context.Context, intent *discount.DiscountIntent) (*discount.DiscountRecord, error)
}

// Announcer 할인 안내 메일 발송기
type Announcer interface {
	Announce(ctx context.Context, subject, htmlBody string) (int, error)
}

// Result 명령어 실행 결과
type Result struct {
	Intent     *discount.DiscountIntent `json:"intent"`
	Record     *discount.DiscountRecord `json:"record"`
	Recipients int                      `json:"recipients"`
}

// Service 명령어 처리 파사드
type Service struct {
	parser       Parser
	orchestrator Orchestrator
	announcer    Announcer
	alerter      operator.Alerter
}

// NewService 새로운 Service 를 생성합니다. alerter 가 nil 이면 운영자 알림을 보내지 않습니다.
func NewService(parser Parser, orchestrator Orchestrator, announcer Announcer, alerter operator.Alerter) *Service {
	if alerter == nil {
		alerter = operator.Nop{}
	}

	return &Service{
		parser:       parser,
		orchestrator: orchestrator,
		announcer:    announcer,
		alerter:      alerter,
	}
}

// newParseFailure 명령어를 해석하지 못했을 때의 에러를 생성합니다.
func newParseFailure() error {
	return apperrors.New(apperrors.InvalidInput, "명령어를 해석할 수 없습니다. 할인율, 상품, 기간을 포함하여 다시 입력해 주세요")
}

// Preview 명령어를 해석만 하고 결과를 반환합니다. 외부 부수 효과가 없습니다.
func (s *Service) Preview(ctx context.Context, text string) (*discount.DiscountIntent, error) {
	intent, ok := s.parser.Parse(ctx, text)
	if !ok || intent == nil {
		return nil, newParseFailure()
	}
	return intent, nil
}

// Execute 명령어를 해석하여 할인을 생성하고 수신자 전체에게 안내 메일을 발송합니다.
//
// 해석에 실패하면 커머스 플랫폼과 메일 API 를 호출하지 않고 InvalidInput 에러를 반환합니다.
// 할인 생성에 실패하면 ExecutionFailed 에러를 반환합니다.
// 메일 발송에 실패하면 할인은 이미 생성된 상태이므로 Result 와 Unavailable 에러를 함께 반환합니다.
func (s *Service) Execute(ctx context.Context, text string) (*Result, error) {
	intent, ok := s.parser.Parse(ctx, text)
	if !ok || intent == nil {
		return nil, newParseFailure()
	}

	record, err := s.orchestrator.CreateDiscount(ctx, intent)
	if err != nil {
		s.alerter.Alert(ctx, fmt.Sprintf("할인 생성이 실패하였습니다: %s\r\n\r\n%v", intent.Title(), err))

		// 정리가 필요한 규칙 ID 가 응답 메시지에 그대로 드러나도록 다시 감싸지 않습니다.
		var orphan *discount.OrphanedRuleError
		if errors.As(err, &orphan) {
			return nil, err
		}

		return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, "커머스 플랫폼에 할인을 생성하지 못했습니다")
	}

	result := &Result{Intent: intent, Record: record}

	announcement, err := notification.BuildAnnouncement(intent, record)
	if err != nil {
		return result, apperrors.Wrap(err, apperrors.Unavailable, "할인 안내 메일 본문을 만들지 못했습니다")
	}

	s.alerter.Alert(ctx, fmt.Sprintf("할인이 생성되었습니다: %s (price_rule_id=%d, type=%s, code=%s)", intent.Title(), record.PlatformRuleID, record.Type, record.Code))

	count, err := s.announcer.Announce(ctx, announcement.Subject, announcement.HTML)
	result.Recipients = count
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"price_rule_id": record.PlatformRuleID,
			"error":         err,
		}).Error("할인은 생성되었으나 안내 메일 발송이 실패하였습니다")

		s.alerter.Alert(ctx, fmt.Sprintf("할인 안내 메일 발송이 실패하였습니다 (price_rule_id=%d): %v", record.PlatformRuleID, err))

		return result, apperrors.Wrap(err, apperrors.Unavailable, "할인은 생성되었으나 안내 메일 발송이 실패하였습니다")
	}

	return result, nil
}
