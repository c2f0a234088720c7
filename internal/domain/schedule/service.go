package schedule

import (
	"context"
	"time"
)

// Resolver finds the shift that applies to an employee on a date.
type Resolver interface {
	Resolve(ctx context.Context, employeeID string, date time.Time) (ResolvedSchedule, error)

	// Timeline loads the employee's rows once for resolving many dates.
	Timeline(ctx context.Context, employeeID string) (Timeline, error)
}
