package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type DailyServiceImpl struct {
	summaries    summary.DailySummaryRepository
	sessions     session.SessionRepository
	employees    employee.EmployeeRepository
	leaves       leave.LeaveRepository
	specialTypes specialday.SpecialDayTypeRepository
	resolver     schedule.Resolver
	classifier   holiday.Classifier
	specialDays  specialday.SpecialDayService
	settingsSvc  settings.SettingsService
	loc          *time.Location
}

func NewDailyService(
	summaries summary.DailySummaryRepository,
	sessions session.SessionRepository,
	employees employee.EmployeeRepository,
	leaves leave.LeaveRepository,
	specialTypes specialday.SpecialDayTypeRepository,
	resolver schedule.Resolver,
	classifier holiday.Classifier,
	specialDays specialday.SpecialDayService,
	settingsSvc settings.SettingsService,
	loc *time.Location,
) summary.DailyService {
	if loc == nil {
		loc = time.UTC
	}
	return &DailyServiceImpl{
		summaries:    summaries,
		sessions:     sessions,
		employees:    employees,
		leaves:       leaves,
		specialTypes: specialTypes,
		resolver:     resolver,
		classifier:   classifier,
		specialDays:  specialDays,
		settingsSvc:  settingsSvc,
		loc:          loc,
	}
}

// Recalculate implements summary.DailyService.
func (s *DailyServiceImpl) Recalculate(ctx context.Context, employeeID string, date time.Time, hint *summary.Hint) (summary.DailySummary, error) {
	date = utils.NormalizeDate(date)

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return summary.DailySummary{}, err
	}

	sessions, err := s.sessions.ListCountedByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return summary.DailySummary{}, fmt.Errorf("failed to list work sessions: %w", err)
	}

	resolved, err := s.resolver.Resolve(ctx, emp.ID, date)
	if err != nil {
		return summary.DailySummary{}, err
	}

	// A hint saves the holiday lookup. The schedule still decides the day type.
	var isHoliday bool
	if hint != nil {
		isHoliday = hint.IsHoliday
	} else {
		isHoliday, err = s.classifier.IsHoliday(ctx, emp.CompanyID, date)
		if err != nil {
			return summary.DailySummary{}, err
		}
	}
	workDayType := holiday.ClassifyDay(isHoliday, date, resolved.IsWorkDay)
	if hint != nil && hint.WorkDayType.IsValid() && hint.WorkDayType != workDayType {
		slog.Warn("Ignoring work day type hint that disagrees with the schedule",
			"employee_id", emp.ID,
			"date", utils.FormatDate(date),
			"hint", hint.WorkDayType,
			"work_day_type", workDayType,
		)
	}

	leaves, err := s.leaves.ListActiveByEmployeeBetween(ctx, emp.ID, date, date)
	if err != nil {
		return summary.DailySummary{}, fmt.Errorf("failed to list leave records: %w", err)
	}
	onLeave := leave.AnyCovers(leaves, date)

	ds := summary.DailySummary{
		EmployeeID:    emp.ID,
		CompanyID:     emp.CompanyID,
		SummaryDate:   date,
		TotalSessions: len(sessions),
		WorkDayType:   workDayType,
		IsHoliday:     isHoliday,
	}
	if workDayType == holiday.WorkDayRegular && !onLeave {
		ds.ExpectedWorkMinutes = resolved.ExpectedMinutes
	}

	hasActive := false
	for _, ws := range sessions {
		ds.TotalWorkMinutes += ws.TotalMinutes
		ds.RegularMinutes += ws.RegularMinutes
		ds.OvertimeMinutes += ws.OvertimeMinutes
		if ws.Status == session.StatusActive {
			hasActive = true
		}
	}

	if resolved.HasStartTime() && len(sessions) > 0 {
		start, err := utils.At(date, resolved.StartTime, s.loc)
		if err == nil && sessions[0].ClockIn.After(start) {
			ds.IsLate = true
			ds.LateMinutes = roundMinutes(sessions[0].ClockIn.Sub(start))
		}
	}

	switch {
	case onLeave:
		ds.Status = summary.StatusLeave
		ds.IsLeave = true
	case len(sessions) == 0:
		ds.Status = summary.StatusAbsent
		ds.IsAbsent = true
	case hasActive:
		ds.Status = summary.StatusIncomplete
	default:
		ds.Status = summary.StatusComplete
	}

	ds.EffectiveWorkMinutes = ds.TotalWorkMinutes
	if err := s.keepSpecialDay(ctx, &ds, resolved.ExpectedMinutes); err != nil {
		return summary.DailySummary{}, err
	}

	saved, err := s.summaries.Upsert(ctx, ds)
	if err != nil {
		return summary.DailySummary{}, fmt.Errorf("failed to upsert daily summary: %w", err)
	}
	return saved, nil
}

// keepSpecialDay carries an existing override into the rebuilt row and
// recomputes its effective minutes from the new totals. An override whose type
// was deleted is dropped. A deactivated type still applies to days it was set on.
func (s *DailyServiceImpl) keepSpecialDay(ctx context.Context, ds *summary.DailySummary, expected int) error {
	existing, err := s.summaries.GetByEmployeeAndDate(ctx, ds.EmployeeID, ds.SummaryDate)
	if err != nil {
		if errors.Is(err, summary.ErrDailySummaryNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get daily summary: %w", err)
	}
	if !existing.HasSpecialDay() {
		return nil
	}

	t, err := s.specialTypes.GetByID(ctx, *existing.SpecialDayTypeID)
	if err != nil {
		if errors.Is(err, specialday.ErrSpecialDayTypeNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get special day type: %w", err)
	}

	cs, err := s.settingsSvc.Get(ctx, ds.CompanyID)
	if err != nil {
		return err
	}

	id := t.ID
	ds.SpecialDayTypeID = &id
	ds.EffectiveWorkMinutes = specialday.EffectiveMinutes(ds.TotalWorkMinutes, expected, t.Config(cs.BossCallMultiplier))
	return nil
}

// Get implements summary.DailyService.
func (s *DailyServiceImpl) Get(ctx context.Context, employeeID string, date time.Time) (summary.DailySummary, error) {
	ds, err := s.summaries.GetByEmployeeAndDate(ctx, employeeID, utils.NormalizeDate(date))
	if err != nil {
		if errors.Is(err, summary.ErrDailySummaryNotFound) {
			return summary.DailySummary{}, err
		}
		return summary.DailySummary{}, fmt.Errorf("failed to get daily summary: %w", err)
	}
	return ds, nil
}

// ToggleSpecialDay implements summary.DailyService.
func (s *DailyServiceImpl) ToggleSpecialDay(ctx context.Context, req summary.ToggleSpecialDayRequest) (summary.DailySummary, error) {
	if err := req.Validate(); err != nil {
		return summary.DailySummary{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return summary.DailySummary{}, err
	}

	existing, err := s.summaries.GetByEmployeeAndDate(ctx, emp.ID, req.SummaryDate)
	if err != nil {
		if !errors.Is(err, summary.ErrDailySummaryNotFound) {
			return summary.DailySummary{}, fmt.Errorf("failed to get daily summary: %w", err)
		}
		existing, err = s.Recalculate(ctx, emp.ID, req.SummaryDate, nil)
		if err != nil {
			return summary.DailySummary{}, err
		}
	}

	if req.SpecialDayTypeID == nil {
		cleared, err := s.summaries.UpdateSpecialDay(ctx, existing.ID, nil, existing.TotalWorkMinutes)
		if err != nil {
			return summary.DailySummary{}, fmt.Errorf("failed to clear special day: %w", err)
		}
		return cleared, nil
	}

	t, err := s.specialDays.Eligible(ctx, emp.ID, *req.SpecialDayTypeID)
	if err != nil {
		return summary.DailySummary{}, err
	}

	resolved, err := s.resolver.Resolve(ctx, emp.ID, req.SummaryDate)
	if err != nil {
		return summary.DailySummary{}, err
	}
	cs, err := s.settingsSvc.Get(ctx, emp.CompanyID)
	if err != nil {
		return summary.DailySummary{}, err
	}

	effective := specialday.EffectiveMinutes(existing.TotalWorkMinutes, resolved.ExpectedMinutes, t.Config(cs.BossCallMultiplier))
	applied, err := s.summaries.UpdateSpecialDay(ctx, existing.ID, &t.ID, effective)
	if err != nil {
		return summary.DailySummary{}, fmt.Errorf("failed to apply special day: %w", err)
	}
	return applied, nil
}

func roundMinutes(d time.Duration) int {
	return int(decimal.NewFromInt(d.Milliseconds()).Div(decimal.NewFromInt(60000)).Round(0).IntPart())
}
