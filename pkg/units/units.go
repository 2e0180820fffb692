package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits of the native currency.
const Decimals = 18

var ErrInvalidAmount error = errors.New("invalid amount")

// ToSmallestUnit converts a human decimal amount such as "1.5" into its
// smallest-unit integer (1.5 * 10^18).
func ToSmallestUnit(amount string) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidAmount, amount, err)
	}

	if d.IsNegative() {
		return nil, fmt.Errorf("%w %q: negative value", ErrInvalidAmount, amount)
	}

	shifted := d.Shift(Decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("%w %q: more than %d fractional digits", ErrInvalidAmount, amount, Decimals)
	}

	return shifted.BigInt(), nil
}

// FromSmallestUnit is the inverse of ToSmallestUnit. Trailing zeros are dropped.
func FromSmallestUnit(value *big.Int) string {
	if value == nil {
		return "0"
	}
	return decimal.NewFromBigInt(value, -Decimals).String()
}
