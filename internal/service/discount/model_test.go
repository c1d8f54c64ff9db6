package discount

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "20", want: "20"},
		{in: "12.5", want: "12.5"},
		{in: "20%", want: "20"},
		{in: " 15 % ", want: "15"},
		{in: "twenty", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		p, err := ParsePercent(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, p.String(), tt.in)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2025-04-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), d.Time)

	d, err = ParseDate("2025-04-25T13:45:00+09:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-04-25", d.String())

	_, err = ParseDate("April 20")
	assert.Error(t, err)

	assert.Equal(t, "", Date{}.String())
}

func TestParseDiscountType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TypeAutomatic, ParseDiscountType("automatic"))
	assert.Equal(t, TypeAutomatic, ParseDiscountType(" Automatic "))
	assert.Equal(t, TypeCode, ParseDiscountType("code"))
	assert.Equal(t, TypeCode, ParseDiscountType(""))
	assert.Equal(t, TypeCode, ParseDiscountType("coupon"))
}

func TestDiscountIntent_JSON(t *testing.T) {
	t.Parallel()

	intent := DiscountIntent{
		DiscountPercent: NewPercent(20),
		ProductLabel:    "hoodies",
		StartDate:       NewDate(2025, time.April, 20),
		EndDate:         NewDate(2025, time.April, 25),
		DiscountType:    TypeAutomatic,
		CollectionName:  "Hoodies",
	}

	b, err := json.Marshal(intent)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"discountPercent": 20,
		"productLabel": "hoodies",
		"startDate": "2025-04-20",
		"endDate": "2025-04-25",
		"discountType": "automatic",
		"collectionName": "Hoodies"
	}`, string(b))

	var decoded DiscountIntent
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.True(t, intent.DiscountPercent.Equal(decoded.DiscountPercent.Decimal))
	assert.Equal(t, intent.StartDate, decoded.StartDate)
	assert.Equal(t, "Discount for hoodies", decoded.Title())

	intent.CollectionName = ""
	b, err = json.Marshal(intent)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "collectionName")
}
