package summary

import (
	"context"
	"time"
)

// RangeFilter selects summaries by date. A nil CompanyID spans all companies.
type RangeFilter struct {
	CompanyID  *string
	EmployeeID *string
	From       time.Time
	To         time.Time
}

type DailySummaryRepository interface {
	// GetByEmployeeAndDate returns ErrDailySummaryNotFound when no row exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (DailySummary, error)

	// Upsert inserts or replaces the row keyed by (employee_id, summary_date).
	Upsert(ctx context.Context, s DailySummary) (DailySummary, error)

	// UpdateSpecialDay sets or clears the override and its effective minutes.
	UpdateSpecialDay(ctx context.Context, id string, specialDayTypeID *string, effectiveMinutes int) (DailySummary, error)

	ListInRange(ctx context.Context, filter RangeFilter) ([]DailySummary, error)
	Delete(ctx context.Context, id string) error
}
