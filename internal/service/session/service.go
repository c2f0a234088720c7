package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
)

type SessionServiceImpl struct {
	sessions   session.SessionRepository
	employees  employee.EmployeeRepository
	resolver   schedule.Resolver
	classifier holiday.Classifier
	evaluator  overtime.Evaluator
	daily      summary.DailyService
	loc        *time.Location
	now        func() time.Time
}

type Option func(*SessionServiceImpl)

// WithClock replaces time.Now for clock-in and clock-out.
func WithClock(now func() time.Time) Option {
	return func(s *SessionServiceImpl) { s.now = now }
}

func NewSessionService(
	sessions session.SessionRepository,
	employees employee.EmployeeRepository,
	resolver schedule.Resolver,
	classifier holiday.Classifier,
	evaluator overtime.Evaluator,
	daily summary.DailyService,
	loc *time.Location,
	opts ...Option,
) session.SessionService {
	if loc == nil {
		loc = time.UTC
	}
	s := &SessionServiceImpl{
		sessions:   sessions,
		employees:  employees,
		resolver:   resolver,
		classifier: classifier,
		evaluator:  evaluator,
		daily:      daily,
		loc:        loc,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calculate implements session.Calculator.
func (s *SessionServiceImpl) Calculate(ctx context.Context, sessionID string) (session.CalculationResult, error) {
	ws, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return session.CalculationResult{}, err
	}
	if ws.Status == session.StatusCancelled {
		return session.CalculationResult{}, session.ErrSessionCancelled
	}

	total, err := ws.DurationMinutes()
	if err != nil {
		return session.CalculationResult{}, err
	}

	resolved, err := s.resolver.Resolve(ctx, ws.EmployeeID, ws.SessionDate)
	if err != nil {
		return session.CalculationResult{}, err
	}
	isHoliday, err := s.classifier.IsHoliday(ctx, ws.CompanyID, ws.SessionDate)
	if err != nil {
		return session.CalculationResult{}, err
	}
	workDayType := holiday.ClassifyDay(isHoliday, ws.SessionDate, resolved.IsWorkDay)

	expected := 0
	if workDayType == holiday.WorkDayRegular {
		expected = resolved.ExpectedMinutes
	}

	split, err := s.evaluator.Evaluate(ctx, overtime.EvaluateRequest{
		SessionID:       ws.ID,
		EmployeeID:      ws.EmployeeID,
		CompanyID:       ws.CompanyID,
		SessionDate:     ws.SessionDate,
		TotalMinutes:    total,
		ExpectedMinutes: expected,
		IsRegularDay:    workDayType == holiday.WorkDayRegular,
	})
	if err != nil {
		return session.CalculationResult{}, err
	}

	status := session.StatusCompleted
	if ws.Status == session.StatusEdited {
		status = session.StatusEdited
	}

	calc := session.Calculation{
		TotalMinutes:       total,
		RegularMinutes:     split.RegularMinutes,
		OvertimeMinutes:    split.OvertimeMinutes,
		OvertimeMultiplier: split.Multiplier,
		Status:             status,
	}
	if err := s.sessions.UpdateCalculation(ctx, ws.ID, calc); err != nil {
		return session.CalculationResult{}, fmt.Errorf("failed to save session calculation: %w", err)
	}

	result := session.CalculationResult{
		SessionID:          ws.ID,
		EmployeeID:         ws.EmployeeID,
		SessionDate:        ws.SessionDate,
		TotalMinutes:       total,
		RegularMinutes:     split.RegularMinutes,
		OvertimeMinutes:    split.OvertimeMinutes,
		OvertimeMultiplier: split.Multiplier,
		WorkDayType:        workDayType,
		IsHoliday:          isHoliday,
		Status:             status,
	}

	hint := &summary.Hint{WorkDayType: workDayType, IsHoliday: isHoliday}
	if _, err := s.daily.Recalculate(ctx, ws.EmployeeID, ws.SessionDate, hint); err != nil {
		slog.Error("Failed to recalculate daily summary after session calculation",
			"session_id", ws.ID,
			"employee_id", ws.EmployeeID,
			"date", utils.FormatDate(ws.SessionDate),
			"error", err,
		)
		result.DailySummaryError = err
	}

	return result, nil
}

func (s *SessionServiceImpl) activeEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if !emp.IsActive {
		return employee.Employee{}, employee.ErrEmployeeInactive
	}
	return emp, nil
}

// recalculateDay refreshes a summary outside of Calculate. Failures are logged only.
func (s *SessionServiceImpl) recalculateDay(ctx context.Context, employeeID string, date time.Time) error {
	if _, err := s.daily.Recalculate(ctx, employeeID, date, nil); err != nil {
		slog.Error("Failed to recalculate daily summary",
			"employee_id", employeeID,
			"date", utils.FormatDate(date),
			"error", err,
		)
		return err
	}
	return nil
}

// ClockIn implements session.SessionService.
func (s *SessionServiceImpl) ClockIn(ctx context.Context, req session.ClockInRequest) (session.WorkSession, error) {
	if err := req.Validate(); err != nil {
		return session.WorkSession{}, err
	}

	emp, err := s.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return session.WorkSession{}, err
	}

	_, err = s.sessions.GetActiveByEmployeeID(ctx, emp.ID)
	if err == nil {
		return session.WorkSession{}, session.ErrAlreadyClockedIn
	}
	if !errors.Is(err, session.ErrSessionNotFound) {
		return session.WorkSession{}, fmt.Errorf("failed to check active session: %w", err)
	}

	now := s.now().UTC()
	created, err := s.sessions.Create(ctx, session.WorkSession{
		EmployeeID:  emp.ID,
		CompanyID:   emp.CompanyID,
		ClockIn:     now,
		SessionDate: utils.DateOf(now, s.loc),
		Status:      session.StatusActive,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, session.ErrAlreadyClockedIn) {
			return session.WorkSession{}, err
		}
		return session.WorkSession{}, fmt.Errorf("failed to create work session: %w", err)
	}

	slog.Info("Employee clocked in", "employee_id", emp.ID, "session_id", created.ID)
	s.recalculateDay(ctx, emp.ID, created.SessionDate)
	return created, nil
}

// ClockOut implements session.SessionService.
func (s *SessionServiceImpl) ClockOut(ctx context.Context, req session.ClockOutRequest) (session.WorkSession, session.CalculationResult, error) {
	if err := req.Validate(); err != nil {
		return session.WorkSession{}, session.CalculationResult{}, err
	}

	active, err := s.sessions.GetActiveByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return session.WorkSession{}, session.CalculationResult{}, session.ErrNotClockedIn
		}
		return session.WorkSession{}, session.CalculationResult{}, fmt.Errorf("failed to get active session: %w", err)
	}

	now := s.now().UTC()
	if now.Before(active.ClockIn) {
		return session.WorkSession{}, session.CalculationResult{}, session.ErrInvalidInterval
	}
	active.ClockOut = &now
	active.Status = session.StatusCompleted
	if req.Notes != nil {
		active.Notes = req.Notes
	}
	if err := s.sessions.Update(ctx, active); err != nil {
		return session.WorkSession{}, session.CalculationResult{}, fmt.Errorf("failed to close work session: %w", err)
	}

	return s.calculateAndReload(ctx, active.ID)
}

// CreateManual implements session.SessionService.
func (s *SessionServiceImpl) CreateManual(ctx context.Context, req session.CreateSessionRequest) (session.WorkSession, session.CalculationResult, error) {
	if err := req.Validate(); err != nil {
		return session.WorkSession{}, session.CalculationResult{}, err
	}
	if req.ClockOutTime.Before(req.ClockInTime) {
		return session.WorkSession{}, session.CalculationResult{}, session.ErrInvalidInterval
	}

	emp, err := s.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return session.WorkSession{}, session.CalculationResult{}, err
	}

	clockIn, clockOut := req.ClockInTime.UTC(), req.ClockOutTime.UTC()
	created, err := s.sessions.Create(ctx, session.WorkSession{
		EmployeeID:  emp.ID,
		CompanyID:   emp.CompanyID,
		ClockIn:     clockIn,
		ClockOut:    &clockOut,
		SessionDate: utils.DateOf(clockIn, s.loc),
		Status:      session.StatusCompleted,
		Notes:       req.Notes,
	})
	if err != nil {
		return session.WorkSession{}, session.CalculationResult{}, fmt.Errorf("failed to create work session: %w", err)
	}

	return s.calculateAndReload(ctx, created.ID)
}

// Edit implements session.SessionService.
func (s *SessionServiceImpl) Edit(ctx context.Context, req session.EditSessionRequest) (session.WorkSession, session.CalculationResult, error) {
	if err := req.Validate(); err != nil {
		return session.WorkSession{}, session.CalculationResult{}, err
	}

	cur, err := s.sessions.GetByID(ctx, req.ID)
	if err != nil {
		return session.WorkSession{}, session.CalculationResult{}, err
	}
	if cur.Status == session.StatusCancelled {
		return session.WorkSession{}, session.CalculationResult{}, session.ErrSessionCancelled
	}
	if cur.Status == session.StatusActive && req.ClockOutTime == nil {
		return session.WorkSession{}, session.CalculationResult{}, session.ErrSessionNotClosed
	}

	oldDate := cur.SessionDate
	if req.ClockInTime != nil {
		cur.ClockIn = req.ClockInTime.UTC()
	}
	if req.ClockOutTime != nil {
		out := req.ClockOutTime.UTC()
		cur.ClockOut = &out
	}
	if req.Notes != nil {
		cur.Notes = req.Notes
	}
	if cur.ClockOut != nil && cur.ClockOut.Before(cur.ClockIn) {
		return session.WorkSession{}, session.CalculationResult{}, session.ErrInvalidInterval
	}
	cur.SessionDate = utils.DateOf(cur.ClockIn, s.loc)
	cur.Status = session.StatusEdited

	if err := s.sessions.Update(ctx, cur); err != nil {
		return session.WorkSession{}, session.CalculationResult{}, fmt.Errorf("failed to update work session: %w", err)
	}

	ws, result, err := s.calculateAndReload(ctx, cur.ID)
	if err != nil {
		return ws, result, err
	}
	if !oldDate.Equal(cur.SessionDate) {
		if err := s.recalculateDay(ctx, cur.EmployeeID, oldDate); err != nil && result.DailySummaryError == nil {
			result.DailySummaryError = err
		}
	}
	return ws, result, nil
}

// Cancel implements session.SessionService.
func (s *SessionServiceImpl) Cancel(ctx context.Context, id string) (session.WorkSession, error) {
	cur, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return session.WorkSession{}, err
	}
	if cur.Status == session.StatusCancelled {
		return session.WorkSession{}, session.ErrSessionCancelled
	}

	cur.Status = session.StatusCancelled
	if err := s.sessions.Update(ctx, cur); err != nil {
		return session.WorkSession{}, fmt.Errorf("failed to cancel work session: %w", err)
	}

	slog.Info("Work session cancelled", "session_id", cur.ID, "employee_id", cur.EmployeeID)
	s.recalculateDay(ctx, cur.EmployeeID, cur.SessionDate)
	return s.sessions.GetByID(ctx, cur.ID)
}

func (s *SessionServiceImpl) calculateAndReload(ctx context.Context, id string) (session.WorkSession, session.CalculationResult, error) {
	result, err := s.Calculate(ctx, id)
	if err != nil {
		return session.WorkSession{}, session.CalculationResult{}, err
	}
	ws, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return session.WorkSession{}, result, fmt.Errorf("failed to reload work session: %w", err)
	}
	return ws, result, nil
}
