// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/AlainEkh/heloc-calculator/internal/calculator"
	"github.com/AlainEkh/heloc-calculator/internal/i18n"
	"github.com/AlainEkh/heloc-calculator/pkg/constants"
	"github.com/AlainEkh/heloc-calculator/pkg/format"
	"github.com/AlainEkh/heloc-calculator/pkg/validation"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// dailyRatePlaces keeps enough precision to show rates like 0.0001643836.
const dailyRatePlaces = 10

// Record is the machine-readable form of a calculation result. Amounts are
// strings rounded to cents so no precision is lost in transit.
type Record struct {
	Balance               string `json:"balance" yaml:"balance"`
	AnnualRatePercent     string `json:"annualRatePercent" yaml:"annualRatePercent"`
	StartDate             string `json:"startDate" yaml:"startDate"`
	EvaluationDate        string `json:"evaluationDate" yaml:"evaluationDate"`
	CycleEnd              string `json:"cycleEnd" yaml:"cycleEnd"`
	DaysElapsed           int    `json:"daysElapsed" yaml:"daysElapsed"`
	DailyRate             string `json:"dailyRate" yaml:"dailyRate"`
	DailyAccrual          string `json:"dailyAccrual" yaml:"dailyAccrual"`
	PeriodAccrual         string `json:"periodAccrual" yaml:"periodAccrual"`
	ProjectedMonthAccrual string `json:"projectedMonthAccrual" yaml:"projectedMonthAccrual"`
}

// NewRecord converts a result into a Record.
func NewRecord(r calculator.Result) Record {
	return Record{
		Balance:               format.Plain(r.Balance),
		AnnualRatePercent:     r.AnnualRatePercent.String(),
		StartDate:             r.StartDate.String(),
		EvaluationDate:        r.EvaluationDate.String(),
		CycleEnd:              r.CycleEnd.String(),
		DaysElapsed:           r.DaysElapsed,
		DailyRate:             r.DailyRate.StringFixed(dailyRatePlaces),
		DailyAccrual:          format.Plain(r.DailyAccrual),
		PeriodAccrual:         format.Plain(r.PeriodAccrual),
		ProjectedMonthAccrual: format.Plain(r.ProjectedMonthAccrual),
	}
}

// Write renders r to w in the named format. Labels in the pretty format use
// locale.
func Write(w io.Writer, outputFormat string, r calculator.Result, locale string) error {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}
	switch outputFormat {
	case constants.OutputFormatCSV:
		return CsvFormat(w, r)
	case constants.OutputFormatJSON:
		return JSONFormat(w, r)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, r)
	default:
		return PrettyFormat(w, r, locale)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable summary.
func PrettyFormat(w io.Writer, r calculator.Result, locale string) error {
	t := i18n.New(locale)
	p := message.NewPrinter(language.English)

	lines := []struct {
		label string
		value string
	}{
		{t.T(i18n.KeyBalance), p.Sprintf("$%.2f", cents(r.Balance))},
		{t.T(i18n.KeyRate), r.AnnualRatePercent.String()},
		{t.T(i18n.KeyStartDate), r.StartDate.String()},
		{t.T(i18n.KeyEvaluationDate), r.EvaluationDate.String()},
		{t.T(i18n.KeyDaysAccrued), strconv.Itoa(r.DaysElapsed)},
		{t.T(i18n.KeyDailyInterest), p.Sprintf("$%.2f", cents(r.DailyAccrual))},
		{t.T(i18n.KeyInterestAccrued), p.Sprintf("$%.2f", cents(r.PeriodAccrual))},
		{t.T(i18n.KeyEstimatedInterest), p.Sprintf("$%.2f", cents(r.ProjectedMonthAccrual))},
		{t.T(i18n.KeyCycleEnds), r.CycleEnd.String()},
	}

	if _, err := fmt.Fprintf(w, "--- %s ---\n%s\n", t.T(i18n.KeyTitle), t.T(i18n.KeyInterestCycle)); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-32s %s\n", line.label, line.value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "(%s)\n", t.T(i18n.KeySubjectChange))
	return err
}

// CsvFormat outputs a header row and one value row.
func CsvFormat(w io.Writer, r calculator.Result) error {
	rec := NewRecord(r)
	cw := csv.NewWriter(w)
	rows := [][]string{
		{
			"balance", "annualRatePercent", "startDate", "evaluationDate", "cycleEnd",
			"daysElapsed", "dailyRate", "dailyAccrual", "periodAccrual", "projectedMonthAccrual",
		},
		{
			rec.Balance, rec.AnnualRatePercent, rec.StartDate, rec.EvaluationDate, rec.CycleEnd,
			strconv.Itoa(rec.DaysElapsed), rec.DailyRate, rec.DailyAccrual, rec.PeriodAccrual, rec.ProjectedMonthAccrual,
		},
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// JSONFormat outputs the result as indented JSON.
func JSONFormat(w io.Writer, r calculator.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewRecord(r)); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// YAMLFormat outputs the result as a YAML document.
func YAMLFormat(w io.Writer, r calculator.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewRecord(r)); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func cents(v decimal.Decimal) float64 {
	return v.Round(constants.DecimalPlaces).InexactFloat64()
}
