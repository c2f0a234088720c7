package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
)

type SweepServiceImpl struct {
	sessions   session.SessionRepository
	summaries  summary.DailySummaryRepository
	calculator session.Calculator
	daily      summary.DailyService
}

func NewSweepService(
	sessions session.SessionRepository,
	summaries summary.DailySummaryRepository,
	calculator session.Calculator,
	daily summary.DailyService,
) summary.SweepService {
	return &SweepServiceImpl{
		sessions:   sessions,
		summaries:  summaries,
		calculator: calculator,
		daily:      daily,
	}
}

type dayKey struct {
	employeeID string
	date       string
}

// Sweep implements summary.SweepService.
//
// Closed sessions are recalculated in clock-in order so weekly thresholds see
// their earlier siblings already corrected. Every (employee, date) touched by
// a session or an existing summary is then rebuilt, and rebuilt rows with no
// session, leave or special day are deleted.
func (s *SweepServiceImpl) Sweep(ctx context.Context, req summary.SweepRequest) (summary.SweepResult, error) {
	if err := req.Validate(); err != nil {
		return summary.SweepResult{}, err
	}

	var result summary.SweepResult

	sessions, err := s.sessions.ListCountedInRange(ctx, session.RangeFilter{
		CompanyID: req.CompanyID,
		From:      req.FromDate,
		To:        req.ToDate,
	})
	if err != nil {
		return result, fmt.Errorf("failed to list work sessions: %w", err)
	}

	pending := make(map[dayKey]time.Time)
	var order []dayKey
	track := func(employeeID string, date time.Time) {
		k := dayKey{employeeID: employeeID, date: utils.FormatDate(date)}
		if _, ok := pending[k]; !ok {
			order = append(order, k)
		}
		pending[k] = date
	}
	done := make(map[dayKey]bool)

	for _, ws := range sessions {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		track(ws.EmployeeID, ws.SessionDate)
		if !ws.Status.Closed() {
			continue
		}

		calc, err := s.calculator.Calculate(ctx, ws.ID)
		if err != nil {
			result.Failures++
			slog.Error("Failed to recalculate work session", "session_id", ws.ID, "error", err)
			continue
		}
		result.SessionsRecalculated++
		if calc.DailySummaryError == nil {
			done[dayKey{employeeID: ws.EmployeeID, date: utils.FormatDate(ws.SessionDate)}] = true
		}
	}

	existing, err := s.summaries.ListInRange(ctx, summary.RangeFilter{
		CompanyID: req.CompanyID,
		From:      req.FromDate,
		To:        req.ToDate,
	})
	if err != nil {
		return result, fmt.Errorf("failed to list daily summaries: %w", err)
	}
	for _, ds := range existing {
		track(ds.EmployeeID, ds.SummaryDate)
	}

	for _, k := range order {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if done[k] {
			result.SummariesRecalculated++
			continue
		}

		ds, err := s.daily.Recalculate(ctx, k.employeeID, pending[k], nil)
		if err != nil {
			result.Failures++
			slog.Error("Failed to recalculate daily summary", "employee_id", k.employeeID, "date", k.date, "error", err)
			continue
		}
		result.SummariesRecalculated++

		if ds.Orphan() {
			if err := s.summaries.Delete(ctx, ds.ID); err != nil {
				result.Failures++
				slog.Error("Failed to delete orphan daily summary", "summary_id", ds.ID, "error", err)
				continue
			}
			result.SummariesDeleted++
		}
	}

	slog.Info("Work time sweep finished",
		"from", req.From,
		"to", req.To,
		"sessions_recalculated", result.SessionsRecalculated,
		"summaries_recalculated", result.SummariesRecalculated,
		"summaries_deleted", result.SummariesDeleted,
		"failures", result.Failures,
	)
	return result, nil
}
