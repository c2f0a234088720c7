package summary

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
)

type Status string

const (
	StatusComplete   Status = "complete"
	StatusIncomplete Status = "incomplete"
	StatusAbsent     Status = "absent"
	StatusLeave      Status = "leave"
)

// DailySummary is the one row per (employee, date) rolled up from sessions and leave.
type DailySummary struct {
	ID                   string
	EmployeeID           string
	CompanyID            string
	SummaryDate          time.Time
	TotalWorkMinutes     int
	RegularMinutes       int
	OvertimeMinutes      int
	ExpectedWorkMinutes  int
	TotalSessions        int
	IsLate               bool
	LateMinutes          int
	IsAbsent             bool
	IsLeave              bool
	Status               Status
	WorkDayType          holiday.WorkDayType
	IsHoliday            bool
	SpecialDayTypeID     *string
	EffectiveWorkMinutes int
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Joined from special_day_types
	SpecialDayCode *string
}

// HasSpecialDay reports whether a special-day override is applied.
func (s DailySummary) HasSpecialDay() bool {
	return s.SpecialDayTypeID != nil
}

// IsBossCall is the read-only projection of the legacy boss-call flag.
func (s DailySummary) IsBossCall() bool {
	return s.SpecialDayCode != nil && *s.SpecialDayCode == specialday.CodeBossCall
}

// Contribution is what the day adds to monthly totals.
func (s DailySummary) Contribution() int {
	if s.HasSpecialDay() {
		return s.EffectiveWorkMinutes
	}
	return s.TotalWorkMinutes
}

// Orphan reports whether the row no longer carries anything worth keeping.
func (s DailySummary) Orphan() bool {
	return s.TotalSessions == 0 && !s.IsLeave && !s.HasSpecialDay()
}
