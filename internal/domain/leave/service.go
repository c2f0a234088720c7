package leave

import "context"

// LeaveService records leave and recalculates every affected daily summary.
type LeaveService interface {
	Grant(ctx context.Context, req GrantLeaveRequest) (LeaveRecord, error)
	Cancel(ctx context.Context, id string) (LeaveRecord, error)
}
