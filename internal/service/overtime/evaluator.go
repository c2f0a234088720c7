package overtime

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
)

type EvaluatorImpl struct {
	rules       overtime.OvertimeRuleRepository
	sessions    session.SessionRepository
	settingsSvc settings.SettingsService
	defaults    settings.Defaults
}

func NewEvaluator(
	rules overtime.OvertimeRuleRepository,
	sessions session.SessionRepository,
	settingsSvc settings.SettingsService,
	defaults settings.Defaults,
) overtime.Evaluator {
	return &EvaluatorImpl{
		rules:       rules,
		sessions:    sessions,
		settingsSvc: settingsSvc,
		defaults:    defaults,
	}
}

// Evaluate implements overtime.Evaluator.
func (e *EvaluatorImpl) Evaluate(ctx context.Context, req overtime.EvaluateRequest) (overtime.Split, error) {
	in := overtime.Input{
		TotalMinutes:       req.TotalMinutes,
		ExpectedMinutes:    req.ExpectedMinutes,
		IsRegularDay:       req.IsRegularDay,
		FallbackMultiplier: e.defaults.OvertimeMultiplier,
	}
	if !req.IsRegularDay {
		return overtime.Evaluate(nil, in), nil
	}

	stored, err := e.rules.ListActiveByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return overtime.Split{}, fmt.Errorf("failed to list overtime rules: %w", err)
	}
	rules := make([]overtime.Rule, 0, len(stored))
	for _, r := range stored {
		rules = append(rules, r.ToRule(e.defaults.OvertimeMultiplier))
	}
	rules = overtime.SortRules(rules)

	if overtime.HasWeekly(rules) {
		monday, sunday := utils.ISOWeekBounds(req.SessionDate)
		in.WeekOtherMinutes, err = e.sessions.SumClosedMinutes(ctx, req.EmployeeID, monday, sunday, req.SessionID)
		if err != nil {
			return overtime.Split{}, fmt.Errorf("failed to sum weekly minutes: %w", err)
		}
	}

	cs, err := e.settingsSvc.Get(ctx, req.CompanyID)
	if err != nil {
		return overtime.Split{}, err
	}
	in.FallbackMultiplier = cs.OvertimeMultiplier

	return overtime.Evaluate(rules, in), nil
}
