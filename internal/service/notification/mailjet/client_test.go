package mailjet

import (
	"context"
	"net/http"
	"testing"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	"github.com/darkkaiser/discount-bot/internal/service/fetcher"
	"github.com/darkkaiser/discount-bot/internal/service/fetcher/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const testBaseURL = "https://api.mailjet.test"

func newMessage(to string) Message {
	return Message{
		From:     Contact{Email: "shop@example.com", Name: "Discount Bot"},
		To:       []Contact{{Email: to, Name: "Customer"}},
		Subject:  "20% OFF",
		HTMLPart: "<p>hi</p>",
	}
}

func TestClient_Send(t *testing.T) {
	t.Parallel()

	t.Run("성공: 한 번의 요청으로 일괄 발송", func(t *testing.T) {
		t.Parallel()

		f := mocks.NewRecordingFetcher()
		f.SetResponse(http.MethodPost, testBaseURL+"/v3.1/send", http.StatusOK, `{"Messages":[{"Status":"success"},{"Status":"success"}]}`)

		c := NewClient(f, testBaseURL+"/", "key", "secret")
		require.NoError(t, c.Send(context.Background(), []Message{newMessage("a@x.com"), newMessage("b@x.com")}))

		reqs := f.Requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, "b@x.com", gjson.GetBytes(reqs[0].Body, "Messages.1.To.0.Email").String())
		assert.Equal(t, "Customer", gjson.GetBytes(reqs[0].Body, "Messages.0.To.0.Name").String())
		assert.Equal(t, "Discount Bot", gjson.GetBytes(reqs[0].Body, "Messages.0.From.Name").String())
		assert.Contains(t, reqs[0].Header.Get("Authorization"), "Basic ")
	})

	t.Run("실패: 개별 메시지 발송 실패", func(t *testing.T) {
		t.Parallel()

		f := mocks.NewRecordingFetcher()
		f.SetResponse(http.MethodPost, testBaseURL+"/v3.1/send", http.StatusOK, `{"Messages":[{"Status":"success"},{"Status":"error","Errors":[{"ErrorMessage":"blocked"}]}]}`)

		err := NewClient(f, testBaseURL, "key", "secret").Send(context.Background(), []Message{newMessage("a@x.com"), newMessage("b@x.com")})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))

		var failure *DeliveryFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, []string{"b@x.com"}, failure.Recipients)
	})

	t.Run("실패: 업스트림 거부", func(t *testing.T) {
		t.Parallel()

		f := mocks.NewRecordingFetcher()
		f.SetResponse(http.MethodPost, testBaseURL+"/v3.1/send", http.StatusUnauthorized, `{"ErrorMessage":"API key authentication/authorization failure"}`)

		err := NewClient(f, testBaseURL, "key", "secret").Send(context.Background(), []Message{newMessage("a@x.com")})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))

		statusErr, ok := fetcher.AsHTTPStatusError(err)
		require.True(t, ok)
		assert.Contains(t, statusErr.BodySnippet, "authentication")
	})

	t.Run("메시지 없음은 호출하지 않음", func(t *testing.T) {
		t.Parallel()

		f := mocks.NewRecordingFetcher()
		require.NoError(t, NewClient(f, testBaseURL, "key", "secret").Send(context.Background(), nil))
		assert.Zero(t, f.RequestCount())
	})
}

func TestClient_Probe(t *testing.T) {
	t.Parallel()

	f := mocks.NewRecordingFetcher()
	f.SetResponse(http.MethodGet, testBaseURL+"/v3/REST/user", http.StatusOK, `{"Count":1}`)
	assert.NoError(t, NewClient(f, testBaseURL, "key", "secret").Probe(context.Background()))
}
