package gerr

import "errors"

var (
	ErrInputNotFound  = errors.New("input not found")
	ErrSchemaMismatch = errors.New("schema mismatch")
	ErrInvalidPeriod  = errors.New("invalid period")
	ErrInvalidConfig  = errors.New("invalid configuration")

	ErrReportNotFound = errors.New("report not found")
	ErrUnknownJob     = errors.New("unknown job")
	ErrFinalized      = errors.New("aggregate already finalized")
)
