package leave

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
)

type LeaveStatus string

const (
	LeaveStatusActive    LeaveStatus = "active"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

// Types lists the accepted leave_type values.
var Types = []string{"annual", "sick", "unpaid", "maternity", "paternity", "bereavement", "other"}

// LeaveRecord is an approved leave span. Both ends are inclusive.
type LeaveRecord struct {
	ID         string
	EmployeeID string
	CompanyID  string
	StartDate  time.Time
	EndDate    time.Time
	LeaveType  string
	Status     LeaveStatus
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Covers reports whether an active record includes date.
func (l LeaveRecord) Covers(date time.Time) bool {
	if l.Status != LeaveStatusActive {
		return false
	}
	date = utils.NormalizeDate(date)
	return !date.Before(utils.NormalizeDate(l.StartDate)) && !date.After(utils.NormalizeDate(l.EndDate))
}

// Dates returns every date of the span.
func (l LeaveRecord) Dates() []time.Time {
	return utils.DatesBetween(l.StartDate, l.EndDate)
}

// AnyCovers reports whether one of records covers date.
func AnyCovers(records []LeaveRecord, date time.Time) bool {
	for _, r := range records {
		if r.Covers(date) {
			return true
		}
	}
	return false
}
