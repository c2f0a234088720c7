package employee

import (
	"context"
	"time"
)

// ReportFilter selects the employees of a period report.
type ReportFilter struct {
	CompanyID  string
	EmployeeID *string
	From       time.Time
	To         time.Time
}

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when no employee has the id.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListForReport returns, ordered by name, the company's active employees
	// plus inactive ones with a daily summary in [From, To]. A non-nil
	// EmployeeID narrows the result to that employee whatever its status.
	ListForReport(ctx context.Context, filter ReportFilter) ([]Employee, error)
}
