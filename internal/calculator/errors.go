package calculator

import "fmt"

// Reason identifies why an input was rejected.
type Reason string

// Rejection reasons, in the order they are checked.
const (
	ReasonMissingField          Reason = "missing_field"
	ReasonInvalidDate           Reason = "invalid_date"
	ReasonStartInFuture         Reason = "start_in_future"
	ReasonEvaluationBeforeStart Reason = "evaluation_before_start"
	ReasonEvaluationAfterCycle  Reason = "evaluation_after_cycle"
	ReasonInvalidBalance        Reason = "invalid_balance"
	ReasonInvalidRate           Reason = "invalid_rate"
)

// Input field names.
const (
	FieldBalance        = "balance"
	FieldRate           = "rate"
	FieldStartDate      = "startDate"
	FieldEvaluationDate = "evaluationDate"
)

// ValidationError reports the first rule an input broke.
type ValidationError struct {
	Reason Reason
	Field  string
	Value  string
	Err    error
}

func (e *ValidationError) Error() string {
	var msg string
	switch e.Reason {
	case ReasonMissingField:
		msg = fmt.Sprintf("%s is required", e.Field)
	case ReasonInvalidDate:
		msg = fmt.Sprintf("%s %q is not a YYYY-MM-DD date", e.Field, e.Value)
	case ReasonStartInFuture:
		msg = fmt.Sprintf("start date %s cannot be after today", e.Value)
	case ReasonEvaluationBeforeStart:
		msg = fmt.Sprintf("evaluation date %s cannot be before the start date", e.Value)
	case ReasonEvaluationAfterCycle:
		msg = fmt.Sprintf("evaluation date %s cannot be after one full calendar month from the start date", e.Value)
	case ReasonInvalidBalance:
		msg = fmt.Sprintf("balance %q is not a non-negative number", e.Value)
	case ReasonInvalidRate:
		msg = fmt.Sprintf("rate %q is not a non-negative number", e.Value)
	default:
		msg = fmt.Sprintf("invalid %s", e.Field)
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
