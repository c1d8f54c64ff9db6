// Package notification 할인 안내 메일을 수신자 목록 전체에 발송합니다.
package notification

import (
	"context"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	"github.com/darkkaiser/discount-bot/internal/service/notification/mailjet"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/samber/lo"
)

const component = "notification.notifier"

// customerName 수신자 이름을 알 수 없으므로 모든 수신자에게 사용하는 표시 이름
const customerName = "Customer"

// RecipientSource 발송 시점의 수신자 목록을 제공합니다.
type RecipientSource interface {
	List(ctx context.Context) ([]string, error)
}

// Sender 메일 발송 API
type Sender interface {
	Send(ctx context.Context, messages []mailjet.Message) error
}

// Notifier 할인 안내 메일 발송기
type Notifier struct {
	recipients RecipientSource
	sender     Sender
	from       mailjet.Contact
}

// NewNotifier 새로운 Notifier 를 생성합니다.
func NewNotifier(recipients RecipientSource, sender Sender, from mailjet.Contact) *Notifier {
	return &Notifier{
		recipients: recipients,
		sender:     sender,
		from:       from,
	}
}

// Announce 저장된 수신자 전체에게 메일을 발송하고 대상 수신자 수를 반환합니다.
//
// # 목적
//
// 생성된 할인을 등록된 고객 전원에게 안내합니다. 수신자별로 메시지를 하나씩 만들어 한 번의 발송 요청으로 보내므로
// 수신자끼리 서로의 주소를 볼 수 없습니다.
//
// 매개변수:
//   - ctx: 수신자 조회와 발송 요청의 취소를 제어하는 컨텍스트
//   - subject: 메일 제목
//   - htmlBody: HTML 본문 (텍스트 본문은 여기서 태그를 제거하여 만듦)
//
// 반환값:
//   - 발송 대상 수신자 수
//   - 수신자 조회 또는 발송 실패 시 에러
//
// 주의사항:
//   - 수신자 목록은 호출할 때마다 새로 읽습니다
//   - 수신자가 없으면 발송 API 를 호출하지 않고 (0, nil) 을 반환합니다
func (n *Notifier) Announce(ctx context.Context, subject, htmlBody string) (int, error) {
	recipients, err := n.recipients.List(ctx)
	if err != nil {
		return 0, err
	}

	if len(recipients) == 0 {
		applog.WithComponent(component).Info("등록된 수신자가 없어 메일을 발송하지 않습니다")
		return 0, nil
	}

	textBody := htmlToText(htmlBody)
	messages := lo.Map(recipients, func(email string, _ int) mailjet.Message {
		return mailjet.Message{
			From:     n.from,
			To:       []mailjet.Contact{{Email: email, Name: customerName}},
			Subject:  subject,
			TextPart: textBody,
			HTMLPart: htmlBody,
		}
	})

	if err := n.sender.Send(ctx, messages); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"recipients": len(recipients),
			"subject":    subject,
			"error":      err,
		}).Error("할인 안내 메일 발송이 실패하였습니다")

		if !apperrors.Is(err, apperrors.Unavailable) {
			err = apperrors.Wrap(err, apperrors.Unavailable, "할인 안내 메일 발송이 실패하였습니다")
		}
		return len(recipients), err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"recipients": len(recipients),
		"subject":    subject,
	}).Info("할인 안내 메일을 발송하였습니다")

	return len(recipients), nil
}
