package check_availability

import "errors"

var (
	// ErrInvalidInput не задан интервал, либо он пустой
	ErrInvalidInput = errors.New("check_availability: invalid input data")
)
