// Package mathutil provides common decimal utility functions.
package mathutil

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AlainEkh/heloc-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(constants.PercentageMultiplier)

	// plainNumber accepts digits with an optional fractional part, no sign.
	plainNumber = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)
)

// Round rounds a value half away from zero to cents, i.e. to represent real
// currency.
func Round(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.DecimalPlaces)
}

// PercentToRate converts a percentage such as 6 into the fraction 0.06.
func PercentToRate(percentage decimal.Decimal) decimal.Decimal {
	return percentage.Div(hundred)
}

// ParseAmount parses a user-entered non-negative amount. Thousands
// separators, surrounding whitespace and a leading dollar sign are ignored.
func ParseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	if !plainNumber.MatchString(cleaned) {
		return decimal.Zero, fmt.Errorf("%q is not a non-negative number", value)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return amount, nil
}
