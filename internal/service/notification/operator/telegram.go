package operator

import (
	"context"
	"net/http"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const (
	component = "notification.operator"

	// queueSize 발송 대기열 크기. 가득 차면 새 알림은 버려집니다.
	queueSize = 32

	// clientTimeout 텔레그램 API 요청 제한 시간
	clientTimeout = 10 * time.Second

	// 텔레그램 API 정책(채팅방당 초당 1건)에 맞춘 발송 속도
	sendRate  = 1
	sendBurst = 3
)

// botClient 텔레그램 봇 API 중 사용하는 메서드만 추상화합니다.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram 텔레그램 채팅방으로 알림을 보내는 Alerter
type Telegram struct {
	client  botClient
	chatID  int64
	limiter *rate.Limiter
	queue   chan string

	running   bool
	runningMu sync.Mutex
}

// NewTelegram 봇 토큰으로 텔레그램 클라이언트를 초기화하여 Telegram 을 생성합니다.
func NewTelegram(botToken string, chatID int64, debug bool) (*Telegram, error) {
	botAPI, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, &http.Client{Timeout: clientTimeout})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken 이 올바른지 확인해주세요")
	}
	botAPI.Debug = debug

	return newTelegramWithClient(botAPI, chatID), nil
}

func newTelegramWithClient(client botClient, chatID int64) *Telegram {
	return &Telegram{
		client:  client,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Limit(sendRate), sendBurst),
		queue:   make(chan string, queueSize),
	}
}

// Alert 알림을 대기열에 넣습니다. 대기열이 가득 차면 알림을 버리고 경고 로그를 남깁니다.
func (t *Telegram) Alert(ctx context.Context, message string) {
	select {
	case t.queue <- message:
	default:
		applog.WithComponentAndFields(component, applog.Fields{
			"message": message,
		}).Warn("운영자 알림 대기열이 가득 차 알림을 버립니다")
	}
}

// Start 대기열의 알림을 발송하는 작업을 시작합니다. ctx 가 취소되면 남은 알림은 버리고 종료합니다.
func (t *Telegram) Start(ctx context.Context, wg *sync.WaitGroup) error {
	t.runningMu.Lock()
	defer t.runningMu.Unlock()

	if t.running {
		wg.Done()
		applog.WithComponent(component).Warn("운영자 알림 서비스가 이미 시작됨!!!")
		return nil
	}
	t.running = true

	go t.run(ctx, wg)

	applog.WithComponentAndFields(component, applog.Fields{
		"chat_id": t.chatID,
	}).Info("운영자 알림 서비스 시작됨")

	return nil
}

func (t *Telegram) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	defer func() {
		t.runningMu.Lock()
		t.running = false
		t.runningMu.Unlock()

		applog.WithComponent(component).Info("운영자 알림 서비스 중지됨")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case message := <-t.queue:
			if err := t.limiter.Wait(ctx); err != nil {
				return
			}

			if _, err := t.client.Send(tgbotapi.NewMessage(t.chatID, message)); err != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"chat_id": t.chatID,
					"error":   err,
				}).Error("운영자 알림 발송이 실패하였습니다")
			}
		}
	}
}
