package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, record LeaveRecord) (LeaveRecord, error)
	GetByID(ctx context.Context, id string) (LeaveRecord, error)
	UpdateStatus(ctx context.Context, id string, status LeaveStatus) error

	// ListActiveByEmployeeBetween returns active records overlapping [from, to].
	ListActiveByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRecord, error)
}
