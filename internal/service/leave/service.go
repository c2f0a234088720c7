package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employees employee.EmployeeRepository
	daily     summary.DailyService
}

func NewLeaveService(repo leave.LeaveRepository, employees employee.EmployeeRepository, daily summary.DailyService) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: repo,
		employees:       employees,
		daily:           daily,
	}
}

// Grant implements leave.LeaveService.
func (l *LeaveServiceImpl) Grant(ctx context.Context, req leave.GrantLeaveRequest) (leave.LeaveRecord, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRecord{}, err
	}

	emp, err := l.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRecord{}, err
	}

	start, end := req.Dates()
	record, err := l.LeaveRepository.Create(ctx, leave.LeaveRecord{
		EmployeeID: emp.ID,
		CompanyID:  emp.CompanyID,
		StartDate:  start,
		EndDate:    end,
		LeaveType:  req.LeaveType,
		Status:     leave.LeaveStatusActive,
		Reason:     req.Reason,
	})
	if err != nil {
		return leave.LeaveRecord{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	l.recalculateRange(ctx, record)
	return record, nil
}

// Cancel implements leave.LeaveService.
func (l *LeaveServiceImpl) Cancel(ctx context.Context, id string) (leave.LeaveRecord, error) {
	record, err := l.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRecord{}, err
	}
	if record.Status == leave.LeaveStatusCancelled {
		return leave.LeaveRecord{}, leave.ErrLeaveAlreadyCancelled
	}

	if err := l.LeaveRepository.UpdateStatus(ctx, id, leave.LeaveStatusCancelled); err != nil {
		return leave.LeaveRecord{}, fmt.Errorf("failed to cancel leave record: %w", err)
	}
	record.Status = leave.LeaveStatusCancelled

	l.recalculateRange(ctx, record)
	return record, nil
}

// recalculateRange rebuilds each covered day. The leave write already
// succeeded, so failures are logged and left for the sweep.
func (l *LeaveServiceImpl) recalculateRange(ctx context.Context, record leave.LeaveRecord) {
	failed := 0
	dates := record.Dates()
	for _, date := range dates {
		if _, err := l.daily.Recalculate(ctx, record.EmployeeID, date, nil); err != nil {
			failed++
			slog.Error("Failed to recalculate daily summary for leave",
				"leave_id", record.ID,
				"employee_id", record.EmployeeID,
				"date", utils.FormatDate(date),
				"error", err,
			)
		}
	}
	slog.Info("Leave days recalculated",
		"leave_id", record.ID,
		"status", record.Status,
		"days", len(dates),
		"failed", failed,
	)
}
