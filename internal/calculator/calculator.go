// Package calculator validates HELOC interest inputs and computes the interest
// accrued within one accrual cycle.
package calculator

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/AlainEkh/heloc-calculator/internal/metrics"
	"github.com/AlainEkh/heloc-calculator/pkg/datetime"
	"github.com/AlainEkh/heloc-calculator/pkg/interest"
	"github.com/AlainEkh/heloc-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const tracerName = "github.com/AlainEkh/heloc-calculator/internal/calculator"

// Actions recorded in metrics and spans.
const (
	ActionCalculate = "calculate"
	ActionToday     = "today"
)

// Input holds the form values as entered.
type Input struct {
	Balance        string `json:"balance" yaml:"balance"`
	Rate           string `json:"rate" yaml:"rate"`
	StartDate      string `json:"startDate" yaml:"startDate"`
	EvaluationDate string `json:"evaluationDate,omitempty" yaml:"evaluationDate,omitempty"`
}

// ValidatedInput is an Input that passed every rule.
type ValidatedInput struct {
	Balance             decimal.Decimal
	AnnualRatePercent   decimal.Decimal
	StartDate           civil.Date
	EvaluationDate      civil.Date
	CycleEnd            civil.Date
	EvaluationDefaulted bool
}

// Result holds the derived figures for one calculation.
type Result struct {
	Balance               decimal.Decimal
	AnnualRatePercent     decimal.Decimal
	StartDate             civil.Date
	EvaluationDate        civil.Date
	CycleEnd              civil.Date
	DaysElapsed           int
	DailyRate             decimal.Decimal
	DailyAccrual          decimal.Decimal
	PeriodAccrual         decimal.Decimal
	ProjectedMonthAccrual decimal.Decimal
}

// Calculator runs validation and computation against a clock.
type Calculator struct {
	logger   *zap.Logger
	location *time.Location
	now      func() time.Time
}

// Option customises a Calculator.
type Option func(*Calculator)

// WithLocation sets the time zone that decides what "today" is.
func WithLocation(loc *time.Location) Option {
	return func(c *Calculator) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// New constructs a Calculator.
func New(logger *zap.Logger, opts ...Option) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Calculator{
		logger:   logger,
		location: time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Today returns the current calendar date in the calculator's time zone.
func (c *Calculator) Today() civil.Date {
	return datetime.DateIn(c.now(), c.location)
}

// Validate checks in against today's date.
func (c *Calculator) Validate(in Input) (ValidatedInput, error) {
	return ValidateWithFixedTime(in, c.Today())
}

// ValidateWithFixedTime checks in against the given date standing in for
// today. The first broken rule is returned as a *ValidationError.
func ValidateWithFixedTime(in Input, today civil.Date) (ValidatedInput, error) {
	var v ValidatedInput

	for _, field := range []struct {
		name  string
		value string
	}{
		{FieldBalance, in.Balance},
		{FieldRate, in.Rate},
		{FieldStartDate, in.StartDate},
	} {
		if strings.TrimSpace(field.value) == "" {
			return v, &ValidationError{Reason: ReasonMissingField, Field: field.name}
		}
	}

	start, err := datetime.ParseDate(in.StartDate)
	if err != nil {
		return v, &ValidationError{Reason: ReasonInvalidDate, Field: FieldStartDate, Value: in.StartDate, Err: err}
	}

	evaluation := today
	defaulted := strings.TrimSpace(in.EvaluationDate) == ""
	if !defaulted {
		evaluation, err = datetime.ParseDate(in.EvaluationDate)
		if err != nil {
			return v, &ValidationError{Reason: ReasonInvalidDate, Field: FieldEvaluationDate, Value: in.EvaluationDate, Err: err}
		}
	}

	if start.After(today) {
		return v, &ValidationError{Reason: ReasonStartInFuture, Field: FieldStartDate, Value: start.String()}
	}

	if evaluation.Before(start) {
		return v, &ValidationError{Reason: ReasonEvaluationBeforeStart, Field: FieldEvaluationDate, Value: evaluation.String()}
	}

	cycleEnd := datetime.CycleEnd(start)
	if evaluation.After(cycleEnd) {
		return v, &ValidationError{Reason: ReasonEvaluationAfterCycle, Field: FieldEvaluationDate, Value: evaluation.String()}
	}

	balance, err := mathutil.ParseAmount(in.Balance)
	if err != nil {
		return v, &ValidationError{Reason: ReasonInvalidBalance, Field: FieldBalance, Value: in.Balance, Err: err}
	}

	rate, err := mathutil.ParseAmount(in.Rate)
	if err != nil {
		return v, &ValidationError{Reason: ReasonInvalidRate, Field: FieldRate, Value: in.Rate, Err: err}
	}

	return ValidatedInput{
		Balance:             balance,
		AnnualRatePercent:   rate,
		StartDate:           start,
		EvaluationDate:      evaluation,
		CycleEnd:            cycleEnd,
		EvaluationDefaulted: defaulted,
	}, nil
}

// Compute derives the accrual figures from a validated input.
func Compute(v ValidatedInput) Result {
	days := datetime.DaysBetween(v.StartDate, v.EvaluationDate)

	return Result{
		Balance:               v.Balance,
		AnnualRatePercent:     v.AnnualRatePercent,
		StartDate:             v.StartDate,
		EvaluationDate:        v.EvaluationDate,
		CycleEnd:              v.CycleEnd,
		DaysElapsed:           days,
		DailyRate:             interest.DailyRate(v.AnnualRatePercent),
		DailyAccrual:          interest.DailyAccrual(v.Balance, v.AnnualRatePercent),
		PeriodAccrual:         interest.PeriodAccrual(v.Balance, v.AnnualRatePercent, days),
		ProjectedMonthAccrual: interest.ProjectedMonthAccrual(v.Balance, v.AnnualRatePercent),
	}
}

// Calculate validates in and computes its result.
func (c *Calculator) Calculate(ctx context.Context, in Input) (Result, error) {
	return c.run(ctx, ActionCalculate, in)
}

// CalculateToday sets the evaluation date to today and calculates.
func (c *Calculator) CalculateToday(ctx context.Context, in Input) (Result, error) {
	in.EvaluationDate = c.Today().String()
	return c.run(ctx, ActionToday, in)
}

func (c *Calculator) run(ctx context.Context, action string, in Input) (Result, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "calculator.Calculate")
	defer span.End()
	span.SetAttributes(attribute.String("action", action))

	v, err := c.Validate(in)
	if err != nil {
		reason := "unknown"
		var verr *ValidationError
		if errors.As(err, &verr) {
			reason = string(verr.Reason)
		}
		metrics.Calculations.WithLabelValues(action, metrics.StatusInvalid).Inc()
		metrics.ValidationFailures.WithLabelValues(reason).Inc()
		span.SetAttributes(attribute.String("reason", reason))
		span.SetStatus(codes.Error, err.Error())

		c.logger.Debug("calculation input rejected",
			zap.String("op", "calculator.Calculate"),
			zap.String("action", action),
			zap.String("reason", reason),
			zap.Error(err),
		)
		return Result{}, err
	}

	result := Compute(v)
	metrics.Calculations.WithLabelValues(action, metrics.StatusOK).Inc()
	span.SetAttributes(
		attribute.Int("days_elapsed", result.DaysElapsed),
		attribute.Bool("evaluation_defaulted", v.EvaluationDefaulted),
	)

	c.logger.Debug("calculation completed",
		zap.String("op", "calculator.Calculate"),
		zap.String("action", action),
		zap.String("start", result.StartDate.String()),
		zap.String("evaluation", result.EvaluationDate.String()),
		zap.Int("daysElapsed", result.DaysElapsed),
	)
	return result, nil
}
