package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
)

type employeeScheduleRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeScheduleRepository(db *database.DB) schedule.EmployeeScheduleRepository {
	return &employeeScheduleRepositoryImpl{db: db}
}

// ListByEmployeeID implements schedule.EmployeeScheduleRepository.
func (r *employeeScheduleRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]schedule.EmployeeSchedule, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT
			es.id, es.employee_id, es.shift_template_id,
			es.custom_start_time, es.custom_end_time, es.custom_break_minutes, es.custom_work_days,
			es.effective_from, es.effective_to, es.created_at, es.updated_at,
			st.id, st.company_id, st.name, st.start_time, st.end_time, st.break_minutes, st.work_days,
			st.created_at, st.updated_at
		FROM employee_schedules es
		LEFT JOIN shift_templates st ON st.id = es.shift_template_id
		WHERE es.employee_id = $1
		ORDER BY es.effective_from DESC, es.created_at DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee schedules: %w", err)
	}
	defer rows.Close()

	var out []schedule.EmployeeSchedule
	for rows.Next() {
		var es schedule.EmployeeSchedule
		var (
			tplID, tplCompanyID, tplName, tplStart, tplEnd *string
			tplBreak                                       *int
			tplWorkDays                                    []int
			tplCreatedAt, tplUpdatedAt                     *time.Time
		)
		err := rows.Scan(
			&es.ID, &es.EmployeeID, &es.ShiftTemplateID,
			&es.CustomStartTime, &es.CustomEndTime, &es.CustomBreakMinutes, &es.CustomWorkDays,
			&es.EffectiveFrom, &es.EffectiveTo, &es.CreatedAt, &es.UpdatedAt,
			&tplID, &tplCompanyID, &tplName, &tplStart, &tplEnd, &tplBreak, &tplWorkDays,
			&tplCreatedAt, &tplUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee schedule: %w", err)
		}
		if tplID != nil {
			es.Template = &schedule.ShiftTemplate{
				ID:           *tplID,
				CompanyID:    *tplCompanyID,
				Name:         *tplName,
				StartTime:    *tplStart,
				EndTime:      *tplEnd,
				BreakMinutes: *tplBreak,
				WorkDays:     tplWorkDays,
				CreatedAt:    *tplCreatedAt,
				UpdatedAt:    *tplUpdatedAt,
			}
		}
		out = append(out, es)
	}
	return out, rows.Err()
}
