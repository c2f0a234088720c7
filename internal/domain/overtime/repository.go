package overtime

import "context"

type OvertimeRuleRepository interface {
	// ListActiveByEmployeeID returns active rules assigned to the employee through employee_overtime_rules.
	ListActiveByEmployeeID(ctx context.Context, employeeID string) ([]OvertimeRule, error)
}
