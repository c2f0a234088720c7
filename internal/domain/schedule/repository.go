package schedule

import "context"

type EmployeeScheduleRepository interface {
	// ListByEmployeeID returns every schedule row of the employee with its template joined.
	ListByEmployeeID(ctx context.Context, employeeID string) ([]EmployeeSchedule, error)
}
