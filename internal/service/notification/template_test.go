package notification

import (
	"testing"
	"time"

	"github.com/darkkaiser/discount-bot/internal/service/discount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntent(t discount.DiscountType, collection string) *discount.DiscountIntent {
	return &discount.DiscountIntent{
		DiscountPercent: discount.NewPercent(20),
		ProductLabel:    "hoodies",
		StartDate:       discount.NewDate(2025, time.April, 20),
		EndDate:         discount.NewDate(2025, time.April, 25),
		DiscountType:    t,
		CollectionName:  collection,
	}
}

func TestBuildAnnouncement(t *testing.T) {
	t.Parallel()

	t.Run("코드형", func(t *testing.T) {
		t.Parallel()

		intent := newIntent(discount.TypeCode, "")
		a, err := BuildAnnouncement(intent, &discount.DiscountRecord{Type: discount.TypeCode, Code: "DISCOUNT-FOR-HOODIES", Intent: *intent})
		require.NoError(t, err)

		assert.Equal(t, "20% OFF on hoodies – Limited Time Only!", a.Subject)
		assert.Contains(t, a.HTML, "Use discount code: <strong>DISCOUNT-FOR-HOODIES</strong> at checkout!")
		assert.NotContains(t, a.HTML, "automatically applied")
		assert.NotContains(t, a.HTML, "Applies only to collection")
		assert.Contains(t, a.HTML, "2025-04-20")
		assert.Contains(t, a.HTML, "2025-04-25")
	})

	t.Run("자동 적용형 + 컬렉션", func(t *testing.T) {
		t.Parallel()

		intent := newIntent(discount.TypeAutomatic, "Hoodies")
		a, err := BuildAnnouncement(intent, &discount.DiscountRecord{Type: discount.TypeAutomatic, CollectionID: 111, Intent: *intent})
		require.NoError(t, err)

		assert.Contains(t, a.HTML, "This discount will be automatically applied at checkout.")
		assert.NotContains(t, a.HTML, "Use discount code")
		assert.Contains(t, a.HTML, "Applies only to collection: <strong>Hoodies</strong>")
	})

	t.Run("컬렉션을 찾지 못한 경우 컬렉션 안내 없음", func(t *testing.T) {
		t.Parallel()

		intent := newIntent(discount.TypeAutomatic, "Jackets")
		a, err := BuildAnnouncement(intent, &discount.DiscountRecord{Type: discount.TypeAutomatic, Intent: *intent})
		require.NoError(t, err)
		assert.NotContains(t, a.HTML, "Jackets")
	})

	t.Run("HTML 이스케이프", func(t *testing.T) {
		t.Parallel()

		intent := newIntent(discount.TypeAutomatic, "")
		intent.ProductLabel = `<script>alert("x")</script>`
		a, err := BuildAnnouncement(intent, &discount.DiscountRecord{Type: discount.TypeAutomatic, Intent: *intent})
		require.NoError(t, err)
		assert.NotContains(t, a.HTML, "<script>")
		assert.Contains(t, a.HTML, "&lt;script&gt;")
	})
}

func TestHTMLToText(t *testing.T) {
	t.Parallel()

	intent := newIntent(discount.TypeCode, "")
	a, err := BuildAnnouncement(intent, &discount.DiscountRecord{Type: discount.TypeCode, Code: "SAVE-20", Intent: *intent})
	require.NoError(t, err)

	text := htmlToText(a.HTML)
	assert.NotContains(t, text, "<")
	assert.Contains(t, text, "New Discount Available!")
	assert.Contains(t, text, "We're offering 20% off on hoodies!")
	assert.Contains(t, text, "Use discount code: SAVE-20 at checkout!")
	assert.Contains(t, text, "Your Store Team")
	assert.NotContains(t, text, "  ")
}
