package schedule

import "errors"

var (
	ErrEmployeeScheduleNotFound = errors.New("employee schedule not found")
	ErrInvalidClockTime         = errors.New("invalid shift clock time, use HH:MM")
)
