package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
)

type overtimeRuleRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRuleRepository(db *database.DB) overtime.OvertimeRuleRepository {
	return &overtimeRuleRepositoryImpl{db: db}
}

// ListActiveByEmployeeID implements overtime.OvertimeRuleRepository.
func (r *overtimeRuleRepositoryImpl) ListActiveByEmployeeID(ctx context.Context, employeeID string) ([]overtime.OvertimeRule, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT o.id, o.company_id, o.name, o.rule_type, o.threshold_minutes, o.multiplier,
			   o.priority, o.is_active, o.created_at, o.updated_at
		FROM overtime_rules o
		JOIN employee_overtime_rules eo ON eo.overtime_rule_id = o.id
		WHERE eo.employee_id = $1 AND o.is_active = TRUE
		ORDER BY o.priority DESC, o.created_at
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime rules: %w", err)
	}
	defer rows.Close()

	var out []overtime.OvertimeRule
	for rows.Next() {
		var o overtime.OvertimeRule
		err := rows.Scan(
			&o.ID, &o.CompanyID, &o.Name, &o.RuleType, &o.ThresholdMinutes, &o.Multiplier,
			&o.Priority, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime rule: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
