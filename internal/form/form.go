// Package form models one calculator form session. The state travels in the
// submitted form fields; nothing is kept on the server between requests.
package form

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/AlainEkh/heloc-calculator/internal/brand"
	"github.com/AlainEkh/heloc-calculator/internal/calculator"
	"github.com/AlainEkh/heloc-calculator/internal/i18n"
	"github.com/AlainEkh/heloc-calculator/pkg/format"
	"github.com/AlainEkh/heloc-calculator/pkg/mathutil"
)

// Action is a button on the form.
type Action string

// Form actions.
const (
	ActionCalculate Action = "calculate"
	ActionToday     Action = "today"
	ActionClear     Action = "clear"
	ActionLocale    Action = "locale"
	ActionBrand     Action = "brand"
)

// Posted field names.
const (
	FieldBalance        = "balance"
	FieldRate           = "rate"
	FieldStartDate      = "startDate"
	FieldEvaluationDate = "evaluationDate"
	FieldLocale         = "lang"
	FieldBrand          = "brand"
	FieldShown          = "shown"
	FieldAction         = "action"
)

// ErrUnknownAction is returned for an action the form does not offer.
var ErrUnknownAction = errors.New("unknown form action")

// Form is the state of the calculator form.
type Form struct {
	Balance        string
	Rate           string
	StartDate      string
	EvaluationDate string
	Locale         string
	Brand          string

	// Shown is set when the previous response displayed a result.
	Shown bool

	Result *calculator.Result
	Err    error
}

// FromValues reads a posted form.
func FromValues(values url.Values) Form {
	return Form{
		Balance:        strings.TrimSpace(values.Get(FieldBalance)),
		Rate:           strings.TrimSpace(values.Get(FieldRate)),
		StartDate:      strings.TrimSpace(values.Get(FieldStartDate)),
		EvaluationDate: strings.TrimSpace(values.Get(FieldEvaluationDate)),
		Locale:         strings.TrimSpace(values.Get(FieldLocale)),
		Brand:          strings.TrimSpace(values.Get(FieldBrand)),
		Shown:          values.Get(FieldShown) == "1",
	}
}

// Input converts the form fields into calculator input.
func (f *Form) Input() calculator.Input {
	return calculator.Input{
		Balance:        f.Balance,
		Rate:           f.Rate,
		StartDate:      f.StartDate,
		EvaluationDate: f.EvaluationDate,
	}
}

// Complete reports whether every required field has a value.
func (f *Form) Complete() bool {
	return f.Balance != "" && f.Rate != "" && f.StartDate != ""
}

// NormalizeBalance rewrites a parseable balance with thousands separators
// and two decimals, e.g. 100000 becomes 100,000.00.
func (f *Form) NormalizeBalance() {
	amount, err := mathutil.ParseAmount(f.Balance)
	if err != nil {
		return
	}
	f.Balance = format.NumericCurrency(amount)
}

// SetToday puts today's date in the evaluation field.
func (f *Form) SetToday(today civil.Date) {
	f.EvaluationDate = today.String()
}

// Clear resets every field and the result. Locale and brand are kept.
func (f *Form) Clear() {
	*f = Form{Locale: f.Locale, Brand: f.Brand}
}

// ToggleLocale switches between English and French.
func (f *Form) ToggleLocale() {
	f.Locale = i18n.Toggle(f.Locale)
}

// ToggleBrand switches to the next configured brand.
func (f *Form) ToggleBrand(brands *brand.Registry) {
	f.Brand = brands.Next(f.Brand).Name
}

// ValidationError returns the rejection held by the form, if any.
func (f *Form) ValidationError() *calculator.ValidationError {
	var verr *calculator.ValidationError
	if errors.As(f.Err, &verr) {
		return verr
	}
	return nil
}

// Apply performs action. Rejected input is recorded in f.Err, not returned;
// the returned error is reserved for unknown actions.
func (f *Form) Apply(ctx context.Context, calc *calculator.Calculator, brands *brand.Registry, action Action) error {
	switch action {
	case ActionCalculate, "":
		f.calculate(ctx, calc, false)
	case ActionToday:
		f.SetToday(calc.Today())
		f.calculate(ctx, calc, true)
	case ActionClear:
		f.Clear()
	case ActionLocale:
		f.ToggleLocale()
		f.recalculate(ctx, calc)
	case ActionBrand:
		f.ToggleBrand(brands)
		f.recalculate(ctx, calc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return nil
}

func (f *Form) recalculate(ctx context.Context, calc *calculator.Calculator) {
	if f.Shown {
		f.calculate(ctx, calc, false)
	}
}

func (f *Form) calculate(ctx context.Context, calc *calculator.Calculator, today bool) {
	var (
		result calculator.Result
		err    error
	)
	if today {
		result, err = calc.CalculateToday(ctx, f.Input())
	} else {
		result, err = calc.Calculate(ctx, f.Input())
	}

	if err != nil {
		f.Result = nil
		f.Err = err
		f.Shown = false
		return
	}
	f.NormalizeBalance()
	f.Result = &result
	f.Err = nil
	f.Shown = true
}
