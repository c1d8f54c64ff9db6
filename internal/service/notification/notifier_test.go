package notification

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	"github.com/darkkaiser/discount-bot/internal/service/notification/mailjet"
	"github.com/darkkaiser/discount-bot/internal/service/recipient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, messages []mailjet.Message) error {
	return m.Called(ctx, messages).Error(0)
}

var testFrom = mailjet.Contact{Email: "shop@example.com", Name: "Discount Bot"}

func newStore(t *testing.T, emails ...string) *recipient.Store {
	t.Helper()

	s := recipient.NewStore(filepath.Join(t.TempDir(), "emails.json"))
	for _, email := range emails {
		_, err := s.Add(context.Background(), email)
		require.NoError(t, err)
	}
	return s
}

func TestNotifier_Announce(t *testing.T) {
	t.Parallel()

	t.Run("수신자 없음: 발송하지 않음", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		n := NewNotifier(newStore(t), sender, testFrom)

		count, err := n.Announce(context.Background(), "subject", "<p>body</p>")
		require.NoError(t, err)
		assert.Zero(t, count)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("성공: 수신자별 메시지 일괄 발송", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.MatchedBy(func(messages []mailjet.Message) bool {
			if len(messages) != 2 {
				return false
			}
			return messages[0].To[0].Email == "a@x.com" &&
				messages[1].To[0].Email == "b@x.com" &&
				messages[0].To[0].Name == "Customer" &&
				messages[0].From == testFrom &&
				messages[0].Subject == "subject" &&
				messages[0].HTMLPart == "<p>body</p>" &&
				messages[0].TextPart == "body"
		})).Return(nil).Once()

		n := NewNotifier(newStore(t, "a@x.com", "b@x.com"), sender, testFrom)

		count, err := n.Announce(context.Background(), "subject", "<p>body</p>")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		sender.AssertExpectations(t)
	})

	t.Run("실패: 발송 거부는 Unavailable", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("rejected")).Once()

		n := NewNotifier(newStore(t, "a@x.com"), sender, testFrom)

		count, err := n.Announce(context.Background(), "subject", "<p>body</p>")
		require.Error(t, err)
		assert.Equal(t, 1, count)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	})

	t.Run("실패: 수신자 목록 읽기 실패", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		n := NewNotifier(recipient.NewStore(t.TempDir()), sender, testFrom)

		_, err := n.Announce(context.Background(), "subject", "<p>body</p>")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}
