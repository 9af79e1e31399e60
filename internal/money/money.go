// Package money provides currency helpers on top of shopspring/decimal.
//
// All amounts in ProsperPath use a 2-place currency scale. Rounding is
// HALF_UP (half away from zero) at that scale, and storage keeps amounts as
// integer minor units so SQL aggregates stay exact.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ling-4j/prosperpath/internal/apperrors"
)

// Scale is the number of decimal places of every stored amount.
const Scale = 2

// Round rounds d to the currency scale, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// EqualShare splits amount into count equal shares rounded HALF_UP to the
// currency scale. The remainder is not redistributed, so count shares may add
// up to a few cents more or less than amount. A non-positive count yields zero.
func EqualShare(amount decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return amount.DivRound(decimal.NewFromInt(int64(count)), Scale)
}

// HasValidScale reports whether d has no more than Scale significant decimal places.
func HasValidScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(Scale))
}

// Parse reads an amount from its decimal string form ("12.34").
// It rejects values with more than two significant decimal places.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, apperrors.ValidationFailed("invalid amount format", err.Error())
	}
	if !HasValidScale(d) {
		return decimal.Zero, apperrors.ValidationFailed(
			"invalid amount",
			fmt.Sprintf("amount %s has more than %d decimal places", d.String(), Scale),
		)
	}
	return d, nil
}

// ValidatePositive checks an amount that must be strictly greater than zero
// and fit the currency scale.
func ValidatePositive(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return apperrors.ValidationFailed("invalid "+field, field+" must be greater than zero")
	}
	if !HasValidScale(d) {
		return apperrors.ValidationFailed(
			"invalid "+field,
			fmt.Sprintf("%s cannot have more than %d decimal places", field, Scale),
		)
	}
	return nil
}

// ToCents converts d to integer minor units, rounding to the currency scale first.
func ToCents(d decimal.Decimal) int64 {
	return Round(d).Shift(Scale).IntPart()
}

// FromCents converts integer minor units back into a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -Scale)
}

// Sum adds amounts exactly.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
