package timeseries

import (
	"errors"
	"fmt"
)

var (
	ErrNoData           = errors.New("no table configured")
	ErrNoTimeColumn     = errors.New("no time column detected")
	ErrNoValidColumns   = errors.New("no valid columns to analyze")
	ErrColumnNotFound   = errors.New("column not found in table")
	ErrColumnNotNumeric = errors.New("column is not numeric")
	ErrInsufficientData = errors.New("insufficient data points")
	ErrNoPeriodDetected = errors.New("could not detect seasonal period")
	ErrUnknownMethod    = errors.New("unknown forecasting method")
	ErrUnknownModel     = errors.New("unknown decomposition model")
)

// Reason is a stable machine-readable failure code surfaced to callers that
// key off strings rather than Go error identity.
type Reason string

const (
	ReasonNoData           Reason = "no_data_configured"
	ReasonNoTimeColumn     Reason = "no_time_column"
	ReasonNoValidColumns   Reason = "no_valid_columns"
	ReasonInvalidColumn    Reason = "invalid_column"
	ReasonInsufficientData Reason = "insufficient_data"
	ReasonNoPeriod         Reason = "no_period_detected"
	ReasonUnknownMethod    Reason = "unknown_method"
	ReasonUnknownModel     Reason = "unknown_model"
	ReasonInternal         Reason = "internal_error"
)

// Failure is the structured error returned by every Analyzer operation. It
// wraps one of the package sentinels so errors.Is keeps working.
type Failure struct {
	Code Reason
	Msg  string
	err  error
}

func (f *Failure) Error() string {
	if f.Msg != "" {
		return fmt.Sprintf("%s: %s", f.Code, f.Msg)
	}
	return string(f.Code)
}

func (f *Failure) Unwrap() error { return f.err }

func newFailure(code Reason, err error, format string, args ...any) *Failure {
	return &Failure{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
		err:  err,
	}
}

// failureFor maps a sentinel (possibly wrapped) to its reason code. Unmapped
// errors are reported as internal faults rather than swallowed.
func failureFor(err error, context string) *Failure {
	code := ReasonInternal
	switch {
	case errors.Is(err, ErrNoData):
		code = ReasonNoData
	case errors.Is(err, ErrNoTimeColumn):
		code = ReasonNoTimeColumn
	case errors.Is(err, ErrNoValidColumns):
		code = ReasonNoValidColumns
	case errors.Is(err, ErrColumnNotFound), errors.Is(err, ErrColumnNotNumeric):
		code = ReasonInvalidColumn
	case errors.Is(err, ErrInsufficientData):
		code = ReasonInsufficientData
	case errors.Is(err, ErrNoPeriodDetected):
		code = ReasonNoPeriod
	case errors.Is(err, ErrUnknownMethod):
		code = ReasonUnknownMethod
	case errors.Is(err, ErrUnknownModel):
		code = ReasonUnknownModel
	}
	return &Failure{
		Code: code,
		Msg:  fmt.Sprintf("%s: %v", context, err),
		err:  err,
	}
}
