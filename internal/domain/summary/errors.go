package summary

import "errors"

var (
	ErrDailySummaryNotFound = errors.New("daily summary not found")
)
