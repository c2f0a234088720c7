package summary

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// DAILY SUMMARY DTOs
// ========================================

// Hint lets a caller that already looked up the holiday calendar pass the
// result forward. The work day type is always derived from the schedule.
type Hint struct {
	WorkDayType holiday.WorkDayType
	IsHoliday   bool
}

type RecalculateRequest struct {
	EmployeeID  string               `json:"employee_id"`
	Date        string               `json:"date"`
	WorkDayType *holiday.WorkDayType `json:"work_day_type,omitempty"`
	IsHoliday   *bool                `json:"is_holiday,omitempty"`

	SummaryDate time.Time `json:"-"`
}

func (r *RecalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	validateEmployeeDate(&errs, r.EmployeeID, r.Date, &r.SummaryDate)
	if r.WorkDayType != nil && !r.WorkDayType.IsValid() {
		errs.Add("work_day_type", "work_day_type must be one of regular, weekend, holiday")
	}

	return errs.OrNil()
}

// Hint returns the caller's classification, if it sent one.
func (r *RecalculateRequest) Hint() *Hint {
	if r.WorkDayType == nil && r.IsHoliday == nil {
		return nil
	}
	h := &Hint{}
	if r.WorkDayType != nil {
		h.WorkDayType = *r.WorkDayType
	}
	if r.IsHoliday != nil {
		h.IsHoliday = *r.IsHoliday
	} else {
		h.IsHoliday = h.WorkDayType == holiday.WorkDayHoliday
	}
	return h
}

type GetDailySummaryRequest struct {
	EmployeeID string
	Date       string

	SummaryDate time.Time
}

func (r *GetDailySummaryRequest) Validate() error {
	var errs validator.ValidationErrors
	validateEmployeeDate(&errs, r.EmployeeID, r.Date, &r.SummaryDate)
	return errs.OrNil()
}

// ToggleSpecialDayRequest applies a special-day type to a day, or clears it
// when SpecialDayTypeID is null.
type ToggleSpecialDayRequest struct {
	EmployeeID       string  `json:"employee_id"`
	Date             string  `json:"date"`
	SpecialDayTypeID *string `json:"special_day_type_id"`

	SummaryDate time.Time `json:"-"`
}

func (r *ToggleSpecialDayRequest) Validate() error {
	var errs validator.ValidationErrors

	validateEmployeeDate(&errs, r.EmployeeID, r.Date, &r.SummaryDate)
	if r.SpecialDayTypeID != nil && !validator.IsValidUUID(*r.SpecialDayTypeID) {
		errs.Add("special_day_type_id", "special_day_type_id must be a valid UUID")
	}

	return errs.OrNil()
}

func validateEmployeeDate(errs *validator.ValidationErrors, employeeID, date string, parsed *time.Time) {
	errs.Required("employee_id", employeeID)
	if !validator.IsEmpty(employeeID) && !validator.IsValidUUID(employeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	d, ok := validator.IsValidDate(date)
	if !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
		return
	}
	*parsed = d
}

type DailySummaryResponse struct {
	ID                   string              `json:"id"`
	EmployeeID           string              `json:"employee_id"`
	SummaryDate          string              `json:"summary_date"`
	TotalWorkMinutes     int                 `json:"total_work_minutes"`
	RegularMinutes       int                 `json:"regular_minutes"`
	OvertimeMinutes      int                 `json:"overtime_minutes"`
	ExpectedWorkMinutes  int                 `json:"expected_work_minutes"`
	TotalSessions        int                 `json:"total_sessions"`
	IsLate               bool                `json:"is_late"`
	LateMinutes          int                 `json:"late_minutes"`
	IsAbsent             bool                `json:"is_absent"`
	IsLeave              bool                `json:"is_leave"`
	Status               Status              `json:"status"`
	WorkDayType          holiday.WorkDayType `json:"work_day_type"`
	IsHoliday            bool                `json:"is_holiday"`
	SpecialDayTypeID     *string             `json:"special_day_type_id"`
	EffectiveWorkMinutes int                 `json:"effective_work_minutes"`
	IsBossCall           bool                `json:"is_boss_call"`
}

func NewDailySummaryResponse(s DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		ID:                   s.ID,
		EmployeeID:           s.EmployeeID,
		SummaryDate:          utils.FormatDate(s.SummaryDate),
		TotalWorkMinutes:     s.TotalWorkMinutes,
		RegularMinutes:       s.RegularMinutes,
		OvertimeMinutes:      s.OvertimeMinutes,
		ExpectedWorkMinutes:  s.ExpectedWorkMinutes,
		TotalSessions:        s.TotalSessions,
		IsLate:               s.IsLate,
		LateMinutes:          s.LateMinutes,
		IsAbsent:             s.IsAbsent,
		IsLeave:              s.IsLeave,
		Status:               s.Status,
		WorkDayType:          s.WorkDayType,
		IsHoliday:            s.IsHoliday,
		SpecialDayTypeID:     s.SpecialDayTypeID,
		EffectiveWorkMinutes: s.EffectiveWorkMinutes,
		IsBossCall:           s.IsBossCall(),
	}
}

// ========================================
// MONTHLY SUMMARY DTOs
// ========================================

type MonthlySummaryQuery struct {
	CompanyID  string
	Month      string // YYYY-MM
	EmployeeID *string

	From time.Time
	To   time.Time
}

func (q *MonthlySummaryQuery) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("company_id", q.CompanyID)
	if !validator.IsEmpty(q.CompanyID) && !validator.IsValidUUID(q.CompanyID) {
		errs.Add("company_id", "company_id must be a valid UUID")
	}
	if month, ok := validator.IsValidMonth(q.Month); !ok {
		errs.Add("month", "month must be in YYYY-MM format")
	} else {
		q.From, q.To = utils.MonthBounds(month)
	}
	if q.EmployeeID != nil && !validator.IsValidUUID(*q.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}

	return errs.OrNil()
}

type SpecialDayStat struct {
	SpecialDayTypeID string `json:"special_day_type_id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	Days             int    `json:"days"`
	Minutes          int    `json:"minutes"`
}

// DayDetail is one calendar day of the monthly drill-down.
type DayDetail struct {
	Date                 string              `json:"date"`
	WorkDayType          holiday.WorkDayType `json:"work_day_type"`
	IsHoliday            bool                `json:"is_holiday"`
	IsScheduled          bool                `json:"is_scheduled"`
	IsCounted            bool                `json:"is_counted"`
	HasSummary           bool                `json:"has_summary"`
	ExpectedMinutes      int                 `json:"expected_minutes"`
	TotalWorkMinutes     int                 `json:"total_work_minutes"`
	EffectiveWorkMinutes int                 `json:"effective_work_minutes"`
	ContributionMinutes  int                 `json:"contribution_minutes"`
	DeficitMinutes       int                 `json:"deficit_minutes"`
	IsLate               bool                `json:"is_late"`
	LateMinutes          int                 `json:"late_minutes"`
	IsAbsent             bool                `json:"is_absent"`
	IsLeave              bool                `json:"is_leave"`
	Status               *Status             `json:"status,omitempty"`
	SpecialDayTypeID     *string             `json:"special_day_type_id,omitempty"`
	SpecialDayCode       *string             `json:"special_day_code,omitempty"`
	IsBossCall           bool                `json:"is_boss_call"`
}

type EmployeeMonthlySummary struct {
	EmployeeID         string           `json:"employee_id"`
	EmployeeName       string           `json:"employee_name"`
	WorkDays           int              `json:"work_days"`
	TotalMinutes       int              `json:"total_minutes"`
	ExpectedMinutes    int              `json:"expected_minutes"`
	SpecialDays        []SpecialDayStat `json:"special_days"`
	SpecialDayDays     int              `json:"special_day_days"`
	SpecialDayMinutes  int              `json:"special_day_minutes"`
	WeekendWorkMinutes int              `json:"weekend_work_minutes"`
	HolidayWorkMinutes int              `json:"holiday_work_minutes"`
	NetMinutes         int              `json:"net_minutes"`
	DeficitMinutes     int              `json:"deficit_minutes"`
	OvertimeValue      int              `json:"overtime_value"`
	OvertimeDays       decimal.Decimal  `json:"overtime_days"`
	OvertimePercentage decimal.Decimal  `json:"overtime_percentage"`
	LateDays           int              `json:"late_days"`
	AbsentDays         int              `json:"absent_days"`
	LeaveDays          int              `json:"leave_days"`
	Days               []DayDetail      `json:"days"`
}

type MonthlySummaryResponse struct {
	CompanyID string                    `json:"company_id"`
	Month     string                    `json:"month"`
	Summaries []EmployeeMonthlySummary  `json:"summaries"`
	Settings  settings.SettingsResponse `json:"settings"`
}

// ========================================
// SWEEP DTOs
// ========================================

// SweepRequest re-runs calculations over a date range. A nil CompanyID sweeps all companies.
type SweepRequest struct {
	CompanyID *string `json:"company_id,omitempty"`
	From      string  `json:"from"`
	To        string  `json:"to"`

	FromDate time.Time `json:"-"`
	ToDate   time.Time `json:"-"`
}

// MaxSweepDays bounds one on-demand sweep.
const MaxSweepDays = 93

func (r *SweepRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyID != nil && !validator.IsValidUUID(*r.CompanyID) {
		errs.Add("company_id", "company_id must be a valid UUID")
	}
	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs.Add("from", "from must be in YYYY-MM-DD format")
	}
	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs.Add("to", "to must be in YYYY-MM-DD format")
	}
	if fromOK && toOK {
		if to.Before(from) {
			errs.Add("to", "to must not be before from")
		} else if len(utils.DatesBetween(from, to)) > MaxSweepDays {
			errs.Add("to", "range must not exceed 93 days")
		}
	}
	r.FromDate, r.ToDate = from, to

	return errs.OrNil()
}

type SweepResult struct {
	SessionsRecalculated  int `json:"sessions_recalculated"`
	SummariesRecalculated int `json:"summaries_recalculated"`
	SummariesDeleted      int `json:"summaries_deleted"`
	Failures              int `json:"failures"`
}
