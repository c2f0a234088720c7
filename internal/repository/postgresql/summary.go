package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dailySummaryRepositoryImpl struct {
	db *database.DB
}

func NewDailySummaryRepository(db *database.DB) summary.DailySummaryRepository {
	return &dailySummaryRepositoryImpl{db: db}
}

// Rows written before effective minutes existed carry NULL; they fall back to
// the worked total.
const summarySelect = `
	SELECT
		ds.id, ds.employee_id, ds.company_id, ds.summary_date,
		ds.total_work_minutes, ds.regular_minutes, ds.overtime_minutes, ds.expected_work_minutes,
		ds.total_sessions, ds.is_late, ds.late_minutes, ds.is_absent, ds.is_leave,
		ds.status, ds.work_day_type, ds.is_holiday, ds.special_day_type_id,
		COALESCE(ds.effective_work_minutes, ds.total_work_minutes),
		ds.created_at, ds.updated_at,
		sdt.code
	FROM daily_summaries ds
	LEFT JOIN special_day_types sdt ON sdt.id = ds.special_day_type_id
`

func scanSummary(row pgx.Row) (summary.DailySummary, error) {
	var ds summary.DailySummary
	err := row.Scan(
		&ds.ID, &ds.EmployeeID, &ds.CompanyID, &ds.SummaryDate,
		&ds.TotalWorkMinutes, &ds.RegularMinutes, &ds.OvertimeMinutes, &ds.ExpectedWorkMinutes,
		&ds.TotalSessions, &ds.IsLate, &ds.LateMinutes, &ds.IsAbsent, &ds.IsLeave,
		&ds.Status, &ds.WorkDayType, &ds.IsHoliday, &ds.SpecialDayTypeID,
		&ds.EffectiveWorkMinutes,
		&ds.CreatedAt, &ds.UpdatedAt,
		&ds.SpecialDayCode,
	)
	return ds, err
}

func (r *dailySummaryRepositoryImpl) getByID(ctx context.Context, id string) (summary.DailySummary, error) {
	q := GetQuerier(ctx, r.db)
	ds, err := scanSummary(q.QueryRow(ctx, summarySelect+` WHERE ds.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return summary.DailySummary{}, summary.ErrDailySummaryNotFound
		}
		return summary.DailySummary{}, fmt.Errorf("failed to get daily summary by id %s: %w", id, err)
	}
	return ds, nil
}

// GetByEmployeeAndDate implements summary.DailySummaryRepository.
func (r *dailySummaryRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (summary.DailySummary, error) {
	q := GetQuerier(ctx, r.db)
	ds, err := scanSummary(q.QueryRow(ctx, summarySelect+` WHERE ds.employee_id = $1 AND ds.summary_date = $2`, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return summary.DailySummary{}, summary.ErrDailySummaryNotFound
		}
		return summary.DailySummary{}, fmt.Errorf("failed to get daily summary: %w", err)
	}
	return ds, nil
}

// Upsert implements summary.DailySummaryRepository.
func (r *dailySummaryRepositoryImpl) Upsert(ctx context.Context, s summary.DailySummary) (summary.DailySummary, error) {
	var saved summary.DailySummary
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)
		query := `
			INSERT INTO daily_summaries (
				employee_id, company_id, summary_date,
				total_work_minutes, regular_minutes, overtime_minutes, expected_work_minutes,
				total_sessions, is_late, late_minutes, is_absent, is_leave,
				status, work_day_type, is_holiday, special_day_type_id, effective_work_minutes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			ON CONFLICT (employee_id, summary_date) DO UPDATE SET
				company_id = EXCLUDED.company_id,
				total_work_minutes = EXCLUDED.total_work_minutes,
				regular_minutes = EXCLUDED.regular_minutes,
				overtime_minutes = EXCLUDED.overtime_minutes,
				expected_work_minutes = EXCLUDED.expected_work_minutes,
				total_sessions = EXCLUDED.total_sessions,
				is_late = EXCLUDED.is_late,
				late_minutes = EXCLUDED.late_minutes,
				is_absent = EXCLUDED.is_absent,
				is_leave = EXCLUDED.is_leave,
				status = EXCLUDED.status,
				work_day_type = EXCLUDED.work_day_type,
				is_holiday = EXCLUDED.is_holiday,
				special_day_type_id = EXCLUDED.special_day_type_id,
				effective_work_minutes = EXCLUDED.effective_work_minutes,
				updated_at = NOW()
			WHERE (
				daily_summaries.company_id, daily_summaries.total_work_minutes, daily_summaries.regular_minutes,
				daily_summaries.overtime_minutes, daily_summaries.expected_work_minutes, daily_summaries.total_sessions,
				daily_summaries.is_late, daily_summaries.late_minutes, daily_summaries.is_absent, daily_summaries.is_leave,
				daily_summaries.status, daily_summaries.work_day_type, daily_summaries.is_holiday,
				daily_summaries.special_day_type_id, daily_summaries.effective_work_minutes
			) IS DISTINCT FROM (
				EXCLUDED.company_id, EXCLUDED.total_work_minutes, EXCLUDED.regular_minutes,
				EXCLUDED.overtime_minutes, EXCLUDED.expected_work_minutes, EXCLUDED.total_sessions,
				EXCLUDED.is_late, EXCLUDED.late_minutes, EXCLUDED.is_absent, EXCLUDED.is_leave,
				EXCLUDED.status, EXCLUDED.work_day_type, EXCLUDED.is_holiday,
				EXCLUDED.special_day_type_id, EXCLUDED.effective_work_minutes
			)
			RETURNING id
		`
		var id string
		err := q.QueryRow(ctx, query,
			s.EmployeeID, s.CompanyID, s.SummaryDate,
			s.TotalWorkMinutes, s.RegularMinutes, s.OvertimeMinutes, s.ExpectedWorkMinutes,
			s.TotalSessions, s.IsLate, s.LateMinutes, s.IsAbsent, s.IsLeave,
			s.Status, s.WorkDayType, s.IsHoliday, s.SpecialDayTypeID, s.EffectiveWorkMinutes,
		).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			// unchanged row, updated_at stays as it was
			saved, err = r.GetByEmployeeAndDate(ctx, s.EmployeeID, s.SummaryDate)
			return err
		}
		if err != nil {
			return fmt.Errorf("failed to upsert daily summary: %w", err)
		}

		saved, err = r.getByID(ctx, id)
		return err
	})
	if err != nil {
		return summary.DailySummary{}, err
	}
	return saved, nil
}

// UpdateSpecialDay implements summary.DailySummaryRepository.
func (r *dailySummaryRepositoryImpl) UpdateSpecialDay(ctx context.Context, id string, specialDayTypeID *string, effectiveMinutes int) (summary.DailySummary, error) {
	var saved summary.DailySummary
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)
		query := `
			UPDATE daily_summaries
			SET special_day_type_id = $2, effective_work_minutes = $3, updated_at = NOW()
			WHERE id = $1
		`
		commandTag, err := q.Exec(ctx, query, id, specialDayTypeID, effectiveMinutes)
		if err != nil {
			return err
		}
		if commandTag.RowsAffected() != 1 {
			return summary.ErrDailySummaryNotFound
		}

		saved, err = r.getByID(ctx, id)
		return err
	})
	if err != nil {
		return summary.DailySummary{}, err
	}
	return saved, nil
}

// ListInRange implements summary.DailySummaryRepository.
func (r *dailySummaryRepositoryImpl) ListInRange(ctx context.Context, filter summary.RangeFilter) ([]summary.DailySummary, error) {
	q := GetQuerier(ctx, r.db)
	query := summarySelect + `
		WHERE ($1::uuid IS NULL OR ds.company_id = $1::uuid)
		  AND ($2::uuid IS NULL OR ds.employee_id = $2::uuid)
		  AND ds.summary_date BETWEEN $3 AND $4
		ORDER BY ds.summary_date, ds.employee_id
	`
	rows, err := q.Query(ctx, query, filter.CompanyID, filter.EmployeeID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily summaries: %w", err)
	}
	defer rows.Close()

	var out []summary.DailySummary
	for rows.Next() {
		ds, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily summary: %w", err)
		}
		out = append(out, ds)
	}
	return out, rows.Err()
}

// Delete implements summary.DailySummaryRepository.
func (r *dailySummaryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM daily_summaries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return summary.ErrDailySummaryNotFound
	}
	return nil
}
