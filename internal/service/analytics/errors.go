package analytics

import "errors"

var (
	ErrInvalidPeriod = errors.New("analytics: period must be between 1 and 365 days")
	ErrInternal      = errors.New("analytics: internal error")
)
