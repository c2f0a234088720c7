package summary

import (
	"context"
	"time"
)

// DailyService maintains daily summaries.
type DailyService interface {
	// Recalculate rebuilds the (employee, date) row from the current sessions and
	// leave. hint may be nil; the date is then classified here.
	Recalculate(ctx context.Context, employeeID string, date time.Time, hint *Hint) (DailySummary, error)

	Get(ctx context.Context, employeeID string, date time.Time) (DailySummary, error)

	// ToggleSpecialDay applies or clears a special-day override.
	ToggleSpecialDay(ctx context.Context, req ToggleSpecialDayRequest) (DailySummary, error)
}

// MonthlyService builds the payroll-facing month report. It never writes.
type MonthlyService interface {
	Get(ctx context.Context, q MonthlySummaryQuery) (MonthlySummaryResponse, error)
}

// SweepService re-runs session and daily calculations over a range and removes
// summaries nothing backs any more.
type SweepService interface {
	Sweep(ctx context.Context, req SweepRequest) (SweepResult, error)
}
