// Package servicetest wires every service against the in-memory store for tests.
package servicetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/worktime-backend-go/internal/repository/memory"
	holidaySvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/holiday"
	leaveSvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/leave"
	overtimeSvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/overtime"
	scheduleSvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/schedule"
	sessionSvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/session"
	settingsSvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/settings"
	specialdaySvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/specialday"
	summarySvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/summary"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Clock is a settable time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type Env struct {
	T         testing.TB
	Ctx       context.Context
	Store     *memory.Store
	Defaults  settings.Defaults
	Loc       *time.Location
	Clock     *Clock
	CompanyID string

	SessionRepo session.SessionRepository
	SummaryRepo summary.DailySummaryRepository
	LeaveRepo   leave.LeaveRepository

	Settings    settings.SettingsService
	Resolver    schedule.Resolver
	Classifier  holiday.Classifier
	Evaluator   overtime.Evaluator
	SpecialDays specialday.SpecialDayService
	Daily       summary.DailyService
	Sessions    session.SessionService
	Monthly     summary.MonthlyService
	Sweep       summary.SweepService
	Leaves      leave.LeaveService
}

// New wires a fresh environment in UTC.
func New(t testing.TB) *Env {
	return NewIn(t, time.UTC)
}

// NewIn wires a fresh environment whose session dates are taken in loc.
func NewIn(t testing.TB, loc *time.Location) *Env {
	t.Helper()

	store := memory.NewStore()
	store.SetClock(func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) })
	defaults := settings.StandardDefaults()
	clock := &Clock{now: time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)}

	employees := memory.NewEmployeeRepository(store)
	schedules := memory.NewEmployeeScheduleRepository(store)
	rules := memory.NewOvertimeRuleRepository(store)
	holidays := memory.NewHolidayRepository(store)
	types := memory.NewSpecialDayTypeRepository(store)
	settingsRepo := memory.NewSettingsRepository(store)
	sessions := memory.NewSessionRepository(store)
	leaves := memory.NewLeaveRepository(store)
	summaries := memory.NewDailySummaryRepository(store)

	e := &Env{
		T:           t,
		Ctx:         context.Background(),
		Store:       store,
		Defaults:    defaults,
		Loc:         loc,
		Clock:       clock,
		CompanyID:   uuid.NewString(),
		SessionRepo: sessions,
		SummaryRepo: summaries,
		LeaveRepo:   leaves,
	}

	e.Settings = settingsSvc.NewSettingsService(settingsRepo, defaults)
	e.Resolver = scheduleSvc.NewResolver(schedules, defaults)
	e.Classifier = holidaySvc.NewClassifier(holidays)
	e.Evaluator = overtimeSvc.NewEvaluator(rules, sessions, e.Settings, defaults)
	e.SpecialDays = specialdaySvc.NewSpecialDayService(types, employees)
	e.Daily = summarySvc.NewDailyService(summaries, sessions, employees, leaves, types, e.Resolver, e.Classifier, e.SpecialDays, e.Settings, loc)
	e.Sessions = sessionSvc.NewSessionService(sessions, employees, e.Resolver, e.Classifier, e.Evaluator, e.Daily, loc, sessionSvc.WithClock(clock.Now))
	e.Monthly = summarySvc.NewMonthlyService(employees, summaries, leaves, types, e.Resolver, e.Classifier, e.Settings, 4)
	e.Sweep = summarySvc.NewSweepService(sessions, summaries, e.Sessions, e.Daily)
	e.Leaves = leaveSvc.NewLeaveService(leaves, employees, e.Daily)
	return e
}

// Employee adds an active employee of the environment's company.
func (e *Env) Employee(name string) employee.Employee {
	return e.Store.AddEmployee(employee.Employee{
		ID:        uuid.NewString(),
		CompanyID: e.CompanyID,
		FullName:  name,
		IsActive:  true,
	})
}

// Date parses YYYY-MM-DD.
func (e *Env) Date(s string) time.Time {
	e.T.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(e.T, err)
	return d
}

// At returns the instant of "YYYY-MM-DD HH:MM" in the environment's location.
func (e *Env) At(s string) time.Time {
	e.T.Helper()
	t, err := time.ParseInLocation("2006-01-02 15:04", s, e.Loc)
	require.NoError(e.T, err)
	return t
}

// Session records a manual session between two "YYYY-MM-DD HH:MM" instants.
func (e *Env) Session(emp employee.Employee, from, to string) (session.WorkSession, session.CalculationResult) {
	e.T.Helper()
	ws, res, err := e.Sessions.CreateManual(e.Ctx, session.CreateSessionRequest{
		EmployeeID: emp.ID,
		ClockIn:    e.At(from).Format(time.RFC3339),
		ClockOut:   e.At(to).Format(time.RFC3339),
	})
	require.NoError(e.T, err)
	return ws, res
}

// Shift assigns a template-backed schedule starting at from.
func (e *Env) Shift(emp employee.Employee, start, end string, breakMinutes int, workDays []int, from string) schedule.EmployeeSchedule {
	tpl := e.Store.AddShiftTemplate(schedule.ShiftTemplate{
		CompanyID:    e.CompanyID,
		Name:         start + "-" + end,
		StartTime:    start,
		EndTime:      end,
		BreakMinutes: breakMinutes,
		WorkDays:     workDays,
	})
	return e.Store.AddEmployeeSchedule(schedule.EmployeeSchedule{
		EmployeeID:      emp.ID,
		ShiftTemplateID: &tpl.ID,
		EffectiveFrom:   e.Date(from),
	})
}
