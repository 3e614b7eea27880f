package value

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		want *float64
		name string
		raw  string
	}{
		{name: "plain", raw: "1621.84", want: ptr(1621.84)},
		{name: "thousands separator", raw: "12,345.67", want: ptr(12345.67)},
		{name: "shekel sign", raw: "₪ 8,000.00", want: ptr(8000)},
		{name: "shekel abbreviation", raw: `5,100.50 ש"ח`, want: ptr(5100.50)},
		{name: "dollar", raw: "$12", want: ptr(12)},
		{name: "trailing minus", raw: "250.00-", want: ptr(-250)},
		{name: "leading minus", raw: "-250.00", want: ptr(-250)},
		{name: "directional mark", raw: "\u200f100.00", want: ptr(100)},
		{name: "not recognised text", raw: "לא זוהה", want: nil},
		{name: "empty", raw: "", want: nil},
		{name: "only separators", raw: ",,", want: nil},
		{name: "nan literal", raw: "NaN", want: nil},
		{name: "infinity literal", raw: "Inf", want: nil},
		{name: "overflow", raw: "1" + strings.Repeat("0", 400), want: nil},
		{name: "two dots", raw: "1.2.3", want: nil},
		{name: "zero is a value", raw: "0.00", want: ptr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amount(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestNumber(t *testing.T) {
	assert.InDelta(t, 182.0, *Number("182.0"), 1e-9)
	assert.InDelta(t, 75.52, *Number(" 75.52 "), 1e-9)
	assert.InDelta(t, 1234.5, *Number("1,234.5"), 1e-9)
	assert.Nil(t, Number("₪100"))
	assert.Nil(t, Number("abc"))
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 12.5, *Percent("12.5%"), 1e-9)
	assert.InDelta(t, 150, *Percent("%150"), 1e-9)
	assert.Nil(t, Percent("%"))
}

func TestInteger(t *testing.T) {
	tests := []struct {
		want *int
		name string
		raw  string
	}{
		{name: "plain", raw: "10", want: iptr(10)},
		{name: "leading zero", raw: "07", want: iptr(7)},
		{name: "whole decimal", raw: "21.00", want: iptr(21)},
		{name: "fractional", raw: "21.5", want: nil},
		{name: "thousands", raw: "2,025", want: iptr(2025)},
		{name: "text", raw: "אין", want: nil},
		{name: "empty", raw: "  ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Integer(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestDate(t *testing.T) {
	for _, raw := range []string{"01.03.15", "01/03/2015", "1-3-2015"} {
		got := Date(raw)
		require.NotNil(t, got, raw)
		assert.Equal(t, raw, *got, "source format is kept")
	}
	assert.Nil(t, Date("2015"))
	assert.Nil(t, Date("32/13"))
	assert.Nil(t, Date("לא ידוע"))
}

func TestText(t *testing.T) {
	got := Text("  ישראל \t ישראלי\u200f ")
	require.NotNil(t, got)
	assert.Equal(t, "ישראל ישראלי", *got)
	assert.Nil(t, Text(" \n "))
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" Amount ")
	require.NoError(t, err)
	assert.Equal(t, KindAmount, got)

	_, err = ParseKind("currency")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestCoerce(t *testing.T) {
	assert.IsType(t, (*float64)(nil), Coerce(KindAmount, "x"))
	assert.IsType(t, (*float64)(nil), Coerce(KindNumber, "1"))
	assert.IsType(t, (*float64)(nil), Coerce(KindPercent, "1%"))
	assert.IsType(t, (*int)(nil), Coerce(KindInteger, "1"))
	assert.IsType(t, (*string)(nil), Coerce(KindDate, "01/01/2020"))
	assert.IsType(t, (*string)(nil), Coerce(KindText, "a"))

	amount, ok := Coerce(KindAmount, "לא זוהה").(*float64)
	require.True(t, ok)
	assert.Nil(t, amount)

	assert.True(t, KindAmount.IsNumeric())
	assert.False(t, KindInteger.IsNumeric())
	assert.False(t, KindText.IsNumeric())
}

func ptr(f float64) *float64 { return &f }

func iptr(n int) *int { return &n }
