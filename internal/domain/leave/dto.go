package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

// MaxLeaveDays bounds how many daily summaries one grant may recalculate.
const MaxLeaveDays = 366

type GrantLeaveRequest struct {
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	LeaveType  string  `json:"leave_type"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *GrantLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("employee_id", r.EmployeeID)
	if !validator.IsEmpty(r.EmployeeID) && !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	errs.Required("leave_type", r.LeaveType)
	if !validator.IsEmpty(r.LeaveType) && !validator.IsInSlice(r.LeaveType, Types) {
		errs.Add("leave_type", "leave_type must be one of: "+strings.Join(Types, ", "))
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK {
		if end.Before(start) {
			errs.Add("end_date", "end_date must not be before start_date")
		} else if len(utils.DatesBetween(start, end)) > MaxLeaveDays {
			errs.Add("end_date", ErrLeaveRangeTooLong.Error())
		}
	}

	return errs.OrNil()
}

// Dates parses the already validated range.
func (r *GrantLeaveRequest) Dates() (time.Time, time.Time) {
	start, _ := utils.ParseDate(r.StartDate)
	end, _ := utils.ParseDate(r.EndDate)
	return start, end
}

type LeaveResponse struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"employee_id"`
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	LeaveType  string      `json:"leave_type"`
	Status     LeaveStatus `json:"status"`
	Reason     *string     `json:"reason,omitempty"`
}

func NewLeaveResponse(l LeaveRecord) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		StartDate:  utils.FormatDate(l.StartDate),
		EndDate:    utils.FormatDate(l.EndDate),
		LeaveType:  l.LeaveType,
		Status:     l.Status,
		Reason:     l.Reason,
	}
}
