package session

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ClockInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	return validateEmployeeID(r.EmployeeID)
}

type ClockOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	return validateEmployeeID(r.EmployeeID)
}

func validateEmployeeID(id string) error {
	var errs validator.ValidationErrors
	errs.Required("employee_id", id)
	if !validator.IsEmpty(id) && !validator.IsValidUUID(id) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	return errs.OrNil()
}

// CreateSessionRequest records a session after the fact. Times are RFC3339.
type CreateSessionRequest struct {
	EmployeeID string  `json:"employee_id"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   string  `json:"clock_out"`
	Notes      *string `json:"notes,omitempty"`

	ClockInTime  time.Time `json:"-"`
	ClockOutTime time.Time `json:"-"`
}

func (r *CreateSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := validateEmployeeID(r.EmployeeID); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	in, ok := validator.IsValidDateTime(r.ClockIn)
	if !ok {
		errs.Add("clock_in", "clock_in must be an RFC3339 timestamp")
	}
	r.ClockInTime = in

	out, ok := validator.IsValidDateTime(r.ClockOut)
	if !ok {
		errs.Add("clock_out", "clock_out must be an RFC3339 timestamp")
	}
	r.ClockOutTime = out

	return errs.OrNil()
}

// EditSessionRequest changes the times or notes of a closed session.
// Omitted fields keep their current value.
type EditSessionRequest struct {
	ID       string  `json:"-"`
	ClockIn  *string `json:"clock_in,omitempty"`
	ClockOut *string `json:"clock_out,omitempty"`
	Notes    *string `json:"notes,omitempty"`

	ClockInTime  *time.Time `json:"-"`
	ClockOutTime *time.Time `json:"-"`
}

func (r *EditSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("id", r.ID)
	if r.ClockIn == nil && r.ClockOut == nil && r.Notes == nil {
		errs.Add("body", "at least one of clock_in, clock_out or notes is required")
	}
	if r.ClockIn != nil {
		if t, ok := validator.IsValidDateTime(*r.ClockIn); ok {
			r.ClockInTime = &t
		} else {
			errs.Add("clock_in", "clock_in must be an RFC3339 timestamp")
		}
	}
	if r.ClockOut != nil {
		if t, ok := validator.IsValidDateTime(*r.ClockOut); ok {
			r.ClockOutTime = &t
		} else {
			errs.Add("clock_out", "clock_out must be an RFC3339 timestamp")
		}
	}

	return errs.OrNil()
}

type SessionResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	CompanyID          string          `json:"company_id"`
	ClockIn            string          `json:"clock_in"`
	ClockOut           *string         `json:"clock_out,omitempty"`
	SessionDate        string          `json:"session_date"`
	TotalMinutes       int             `json:"total_minutes"`
	RegularMinutes     int             `json:"regular_minutes"`
	OvertimeMinutes    int             `json:"overtime_minutes"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier"`
	Status             Status          `json:"status"`
	Notes              *string         `json:"notes,omitempty"`
}

func NewSessionResponse(s WorkSession) SessionResponse {
	resp := SessionResponse{
		ID:                 s.ID,
		EmployeeID:         s.EmployeeID,
		CompanyID:          s.CompanyID,
		ClockIn:            s.ClockIn.Format(time.RFC3339),
		SessionDate:        utils.FormatDate(s.SessionDate),
		TotalMinutes:       s.TotalMinutes,
		RegularMinutes:     s.RegularMinutes,
		OvertimeMinutes:    s.OvertimeMinutes,
		OvertimeMultiplier: s.OvertimeMultiplier,
		Status:             s.Status,
		Notes:              s.Notes,
	}
	if s.ClockOut != nil {
		out := s.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &out
	}
	return resp
}

type CalculationResponse struct {
	SessionID          string              `json:"session_id"`
	SessionDate        string              `json:"session_date"`
	TotalMinutes       int                 `json:"total_minutes"`
	RegularMinutes     int                 `json:"regular_minutes"`
	OvertimeMinutes    int                 `json:"overtime_minutes"`
	OvertimeMultiplier decimal.Decimal     `json:"overtime_multiplier"`
	WorkDayType        holiday.WorkDayType `json:"work_day_type"`
	IsHoliday          bool                `json:"is_holiday"`
	Status             Status              `json:"status"`
	DailySummaryError  *string             `json:"daily_summary_error,omitempty"`
}

func NewCalculationResponse(r CalculationResult) CalculationResponse {
	resp := CalculationResponse{
		SessionID:          r.SessionID,
		SessionDate:        utils.FormatDate(r.SessionDate),
		TotalMinutes:       r.TotalMinutes,
		RegularMinutes:     r.RegularMinutes,
		OvertimeMinutes:    r.OvertimeMinutes,
		OvertimeMultiplier: r.OvertimeMultiplier,
		WorkDayType:        r.WorkDayType,
		IsHoliday:          r.IsHoliday,
		Status:             r.Status,
	}
	if r.DailySummaryError != nil {
		msg := r.DailySummaryError.Error()
		resp.DailySummaryError = &msg
	}
	return resp
}
