// Package interest provides the simple daily interest formulas used for a
// revolving line of credit.
package interest

import (
	"github.com/AlainEkh/heloc-calculator/pkg/constants"
	"github.com/AlainEkh/heloc-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

var (
	daysPerYear    = decimal.NewFromInt(constants.DaysPerYear)
	projectionDays = decimal.NewFromInt(constants.ProjectionDays)
)

// DailyRate converts an annual percentage rate into a daily rate under the
// Actual/365 fixed convention.
func DailyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return mathutil.PercentToRate(annualRatePercent).Div(daysPerYear)
}

// DailyAccrual calculates the interest one day adds to balance.
func DailyAccrual(balance, annualRatePercent decimal.Decimal) decimal.Decimal {
	return balance.Mul(DailyRate(annualRatePercent))
}

// PeriodAccrual calculates the interest accrued on balance over days.
func PeriodAccrual(balance, annualRatePercent decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	return DailyAccrual(balance, annualRatePercent).Mul(decimal.NewFromInt(int64(days)))
}

// ProjectedMonthAccrual estimates a full month of interest using a fixed
// 30-day month.
func ProjectedMonthAccrual(balance, annualRatePercent decimal.Decimal) decimal.Decimal {
	return DailyAccrual(balance, annualRatePercent).Mul(projectionDays)
}
