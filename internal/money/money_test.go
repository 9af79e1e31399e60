package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ling-4j/prosperpath/internal/apperrors"
)

func TestEqualShare(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		count  int
		want   string
	}{
		{"even split", "30.00", 3, "10.00"},
		{"repeating third rounds down", "10.00", 3, "3.33"},
		{"two thirds rounds up", "20.00", 3, "6.67"},
		{"half cent rounds away from zero", "0.05", 2, "0.03"},
		{"negative half cent rounds away from zero", "-0.05", 2, "-0.03"},
		{"single member gets everything", "12.34", 1, "12.34"},
		{"zero members", "12.34", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EqualShare(decimal.RequireFromString(tt.amount), tt.count)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestEqualShareDrift(t *testing.T) {
	// 100.00 / 3 -> 33.33 each, 99.99 in total: one cent short.
	amount := decimal.RequireFromString("100.00")
	share := EqualShare(amount, 3)
	total := share.Mul(decimal.NewFromInt(3))

	assert.True(t, total.Equal(decimal.RequireFromString("99.99")))
	assert.True(t, amount.Sub(total).Abs().LessThanOrEqual(decimal.RequireFromString("0.02")))
}

func TestParse(t *testing.T) {
	d, err := Parse(" 12.30 ")
	require.NoError(t, err)
	assert.Equal(t, "12.3", d.String())

	_, err = Parse("12.345")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = Parse("twelve")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Trailing zeros beyond the scale are not significant.
	_, err = Parse("1.2300")
	assert.NoError(t, err)
}

func TestValidatePositive(t *testing.T) {
	assert.NoError(t, ValidatePositive("amount", decimal.RequireFromString("0.01")))
	assert.Error(t, ValidatePositive("amount", decimal.Zero))
	assert.Error(t, ValidatePositive("amount", decimal.RequireFromString("-5")))
	assert.Error(t, ValidatePositive("amount", decimal.RequireFromString("1.001")))
}

func TestCentsRoundTrip(t *testing.T) {
	assert.Equal(t, int64(1234), ToCents(decimal.RequireFromString("12.34")))
	assert.Equal(t, int64(-500), ToCents(decimal.RequireFromString("-5")))
	assert.True(t, FromCents(1234).Equal(decimal.RequireFromString("12.34")))
	assert.Equal(t, "12.34", FromCents(1234).StringFixed(2))
}

func TestSum(t *testing.T) {
	got := Sum(decimal.RequireFromString("0.10"), decimal.RequireFromString("0.20"))
	assert.True(t, got.Equal(decimal.RequireFromString("0.30")))
	assert.True(t, Sum().IsZero())
}

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "1.234.567", FormatVND(decimal.NewFromInt(1234567)))
	assert.Equal(t, "100,01", FormatVND(decimal.RequireFromString("100.01")))
	assert.Equal(t, "1.234.567,5", FormatVND(decimal.RequireFromString("1234567.50")))
	assert.Equal(t, "0,05", FormatVND(decimal.RequireFromString("0.05")))
	assert.Equal(t, "-12.345,67", FormatVND(decimal.RequireFromString("-12345.67")))
	// 18 integer digits: a float64 would lose the cents here.
	assert.Equal(t, "123.456.789.012.345.678,91", FormatVND(decimal.RequireFromString("123456789012345678.91")))
}
