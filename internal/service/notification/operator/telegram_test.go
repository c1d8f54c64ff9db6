package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeBot struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		b.sent = append(b.sent, msg)
	}
	return tgbotapi.Message{}, b.err
}

func (b *fakeBot) messages() []tgbotapi.MessageConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]tgbotapi.MessageConfig(nil), b.sent...)
}

func TestTelegram_Alert(t *testing.T) {
	defer goleak.VerifyNone(t)

	bot := &fakeBot{}
	tg := newTelegramWithClient(bot, 12345)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, tg.Start(ctx, wg))

	tg.Alert(ctx, "할인이 생성되었습니다")
	tg.Alert(ctx, "메일 발송 실패")

	require.Eventually(t, func() bool { return len(bot.messages()) == 2 }, 2*time.Second, 10*time.Millisecond)

	sent := bot.messages()
	assert.Equal(t, int64(12345), sent[0].ChatID)
	assert.Equal(t, "할인이 생성되었습니다", sent[0].Text)

	cancel()
	wg.Wait()
}

func TestTelegram_SendFailureIsSwallowed(t *testing.T) {
	defer goleak.VerifyNone(t)

	bot := &fakeBot{err: errors.New("forbidden")}
	tg := newTelegramWithClient(bot, 1)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, tg.Start(ctx, wg))

	tg.Alert(ctx, "x")
	require.Eventually(t, func() bool { return len(bot.messages()) == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	wg.Wait()
}

func TestTelegram_StartTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	tg := newTelegramWithClient(&fakeBot{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(2)
	require.NoError(t, tg.Start(ctx, wg))
	require.NoError(t, tg.Start(ctx, wg))

	cancel()
	wg.Wait()
}

func TestTelegram_QueueFullDropsAlert(t *testing.T) {
	t.Parallel()

	tg := newTelegramWithClient(&fakeBot{}, 1)
	for i := 0; i < queueSize+5; i++ {
		tg.Alert(context.Background(), "x")
	}
	assert.Len(t, tg.queue, queueSize)
}

func TestNop(t *testing.T) {
	t.Parallel()

	var a Alerter = Nop{}
	a.Alert(context.Background(), "ignored")

	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, Nop{}.Start(context.Background(), wg))
	wg.Wait()
}
