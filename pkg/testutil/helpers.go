// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"
	"time"

	"github.com/AlainEkh/heloc-calculator/internal/calculator"
	"github.com/AlainEkh/heloc-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

// FixedClock returns a clock that always reports noon UTC on date.
// It panics when date is not YYYY-MM-DD.
func FixedClock(date string) func() time.Time {
	t, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		panic(err)
	}
	noon := t.Add(12 * time.Hour)
	return func() time.Time { return noon }
}

// NewCalculator returns a quiet calculator whose today is date in UTC.
func NewCalculator(date string) *calculator.Calculator {
	return calculator.New(nil, calculator.WithClock(FixedClock(date)), calculator.WithLocation(time.UTC))
}

// MustDecimal parses s or panics.
func MustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// AssertDecimal fails the test when got does not equal want.
func AssertDecimal(t testing.TB, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(MustDecimal(want)) {
		t.Errorf("%s = %s, expected %s", name, got.String(), want)
	}
}
