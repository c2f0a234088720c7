package summary

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// DefaultMonthlyConcurrency bounds how many employees are aggregated at once.
const DefaultMonthlyConcurrency = 8

type MonthlyServiceImpl struct {
	employees    employee.EmployeeRepository
	summaries    summary.DailySummaryRepository
	leaves       leave.LeaveRepository
	specialTypes specialday.SpecialDayTypeRepository
	resolver     schedule.Resolver
	classifier   holiday.Classifier
	settingsSvc  settings.SettingsService
	concurrency  int
}

func NewMonthlyService(
	employees employee.EmployeeRepository,
	summaries summary.DailySummaryRepository,
	leaves leave.LeaveRepository,
	specialTypes specialday.SpecialDayTypeRepository,
	resolver schedule.Resolver,
	classifier holiday.Classifier,
	settingsSvc settings.SettingsService,
	concurrency int,
) summary.MonthlyService {
	if concurrency < 1 {
		concurrency = DefaultMonthlyConcurrency
	}
	return &MonthlyServiceImpl{
		employees:    employees,
		summaries:    summaries,
		leaves:       leaves,
		specialTypes: specialTypes,
		resolver:     resolver,
		classifier:   classifier,
		settingsSvc:  settingsSvc,
		concurrency:  concurrency,
	}
}

// monthContext is loaded once per request and shared read-only by every employee.
type monthContext struct {
	from, to time.Time
	calendar holiday.Calendar
	types    []specialday.SpecialDayType
	settings settings.CompanyWorkSettings
}

// Get implements summary.MonthlyService.
func (s *MonthlyServiceImpl) Get(ctx context.Context, q summary.MonthlySummaryQuery) (summary.MonthlySummaryResponse, error) {
	if err := q.Validate(); err != nil {
		return summary.MonthlySummaryResponse{}, err
	}

	cs, err := s.settingsSvc.Get(ctx, q.CompanyID)
	if err != nil {
		return summary.MonthlySummaryResponse{}, err
	}

	employees, err := s.employees.ListForReport(ctx, employee.ReportFilter{
		CompanyID:  q.CompanyID,
		EmployeeID: q.EmployeeID,
		From:       q.From,
		To:         q.To,
	})
	if err != nil {
		return summary.MonthlySummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	if q.EmployeeID != nil && len(employees) == 0 {
		return summary.MonthlySummaryResponse{}, employee.ErrEmployeeNotFound
	}

	types, err := s.specialTypes.ListByCompanyID(ctx, q.CompanyID)
	if err != nil {
		return summary.MonthlySummaryResponse{}, fmt.Errorf("failed to list special day types: %w", err)
	}

	cal, err := s.classifier.Calendar(ctx, q.CompanyID)
	if err != nil {
		return summary.MonthlySummaryResponse{}, err
	}

	mc := monthContext{from: q.From, to: q.To, calendar: cal, types: types, settings: cs}

	results := make([]summary.EmployeeMonthlySummary, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			res, err := s.employeeMonth(gctx, emp, mc)
			if err != nil {
				return fmt.Errorf("employee %s: %w", emp.ID, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary.MonthlySummaryResponse{}, err
	}

	return summary.MonthlySummaryResponse{
		CompanyID: q.CompanyID,
		Month:     q.From.Format(utils.MonthLayout),
		Summaries: results,
		Settings:  settings.NewSettingsResponse(cs),
	}, nil
}

func (s *MonthlyServiceImpl) employeeMonth(ctx context.Context, emp employee.Employee, mc monthContext) (summary.EmployeeMonthlySummary, error) {
	tl, err := s.resolver.Timeline(ctx, emp.ID)
	if err != nil {
		return summary.EmployeeMonthlySummary{}, err
	}

	rows, err := s.summaries.ListInRange(ctx, summary.RangeFilter{EmployeeID: &emp.ID, From: mc.from, To: mc.to})
	if err != nil {
		return summary.EmployeeMonthlySummary{}, fmt.Errorf("failed to list daily summaries: %w", err)
	}
	byDate := make(map[string]summary.DailySummary, len(rows))
	for _, ds := range rows {
		byDate[utils.FormatDate(ds.SummaryDate)] = ds
	}

	leaves, err := s.leaves.ListActiveByEmployeeBetween(ctx, emp.ID, mc.from, mc.to)
	if err != nil {
		return summary.EmployeeMonthlySummary{}, fmt.Errorf("failed to list leave records: %w", err)
	}

	return aggregateMonth(emp, mc, tl, byDate, leaves), nil
}

// aggregateMonth walks every calendar day of the month. It does no I/O.
func aggregateMonth(
	emp employee.Employee,
	mc monthContext,
	tl schedule.Timeline,
	byDate map[string]summary.DailySummary,
	leaves []leave.LeaveRecord,
) summary.EmployeeMonthlySummary {
	out := summary.EmployeeMonthlySummary{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
	}
	var totals summary.MonthTotals
	stats := make(map[string]*summary.SpecialDayStat)

	for _, date := range utils.DatesBetween(mc.from, mc.to) {
		resolved := tl.At(date)
		isHoliday := mc.calendar.IsHoliday(date)
		workDayType := holiday.ClassifyDay(isHoliday, date, resolved.IsWorkDay)

		ds, hasSummary := byDate[utils.FormatDate(date)]
		onLeave := leave.AnyCovers(leaves, date) || (hasSummary && ds.IsLeave)

		scheduled := workDayType == holiday.WorkDayRegular && !onLeave
		expected := 0
		if scheduled {
			expected = resolved.ExpectedMinutes
		}

		special := hasSummary && ds.HasSpecialDay()
		contribution := 0
		if hasSummary {
			contribution = ds.Contribution()
		}
		counted := scheduled || contribution > 0 || special
		absent := scheduled && !special && (!hasSummary || ds.IsAbsent)

		deficit := 0
		if counted && expected > contribution {
			deficit = expected - contribution
		}

		detail := summary.DayDetail{
			Date:                utils.FormatDate(date),
			WorkDayType:         workDayType,
			IsHoliday:           isHoliday,
			IsScheduled:         scheduled,
			IsCounted:           counted,
			HasSummary:          hasSummary,
			ExpectedMinutes:     expected,
			ContributionMinutes: contribution,
			DeficitMinutes:      deficit,
			IsAbsent:            absent,
			IsLeave:             onLeave,
		}
		if hasSummary {
			status := ds.Status
			detail.Status = &status
			detail.TotalWorkMinutes = ds.TotalWorkMinutes
			detail.EffectiveWorkMinutes = ds.EffectiveWorkMinutes
			detail.IsLate = ds.IsLate
			detail.LateMinutes = ds.LateMinutes
			detail.SpecialDayTypeID = ds.SpecialDayTypeID
			detail.SpecialDayCode = ds.SpecialDayCode
			detail.IsBossCall = ds.IsBossCall()
		}
		out.Days = append(out.Days, detail)

		totals.TotalMinutes += contribution
		if counted {
			totals.WorkDays++
			totals.ExpectedMinutes += expected
		}

		switch {
		case special:
			stat, ok := stats[*ds.SpecialDayTypeID]
			if !ok {
				stat = &summary.SpecialDayStat{SpecialDayTypeID: *ds.SpecialDayTypeID}
				stats[*ds.SpecialDayTypeID] = stat
			}
			stat.Days++
			stat.Minutes += contribution
			totals.SpecialDayDays++
			totals.SpecialDayMinutes += contribution
		case workDayType == holiday.WorkDayWeekend:
			totals.WeekendWorkMinutes += contribution
		case workDayType == holiday.WorkDayHoliday:
			totals.HolidayWorkMinutes += contribution
		}

		if hasSummary && ds.IsLate {
			out.LateDays++
		}
		if absent {
			out.AbsentDays++
		}
		if onLeave {
			out.LeaveDays++
		}
		out.DeficitMinutes += deficit
	}

	out.SpecialDays = orderStats(stats, mc.types)

	figures := summary.ComputeOvertime(totals, mc.settings)
	out.WorkDays = totals.WorkDays
	out.TotalMinutes = totals.TotalMinutes
	out.ExpectedMinutes = totals.ExpectedMinutes
	out.SpecialDayDays = totals.SpecialDayDays
	out.SpecialDayMinutes = totals.SpecialDayMinutes
	out.WeekendWorkMinutes = totals.WeekendWorkMinutes
	out.HolidayWorkMinutes = totals.HolidayWorkMinutes
	out.NetMinutes = figures.NetMinutes
	out.OvertimeValue = figures.OvertimeValue
	out.OvertimeDays = figures.OvertimeDays
	out.OvertimePercentage = figures.OvertimePercentage
	return out
}

// orderStats lists the used types in display order. Rows pointing at a type
// that no longer exists come last.
func orderStats(stats map[string]*summary.SpecialDayStat, types []specialday.SpecialDayType) []summary.SpecialDayStat {
	out := make([]summary.SpecialDayStat, 0, len(stats))
	for _, t := range types {
		stat, ok := stats[t.ID]
		if !ok {
			continue
		}
		stat.Code = t.Code
		stat.Name = t.Name
		out = append(out, *stat)
		delete(stats, t.ID)
	}
	orphans := make([]summary.SpecialDayStat, 0, len(stats))
	for _, stat := range stats {
		orphans = append(orphans, *stat)
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].SpecialDayTypeID < orphans[j].SpecialDayTypeID })
	return append(out, orphans...)
}
