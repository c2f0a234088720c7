package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `id, employee_id, company_id, start_date, end_date, leave_type, status, reason, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.LeaveRecord, error) {
	var l leave.LeaveRecord
	err := row.Scan(&l.ID, &l.EmployeeID, &l.CompanyID, &l.StartDate, &l.EndDate, &l.LeaveType, &l.Status, &l.Reason, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_records (employee_id, company_id, start_date, end_date, leave_type, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.CompanyID, record.StartDate, record.EndDate,
		record.LeaveType, record.Status, record.Reason,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return leave.LeaveRecord{}, err
	}
	return record, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)
	l, err := scanLeave(q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leave_records WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRecord{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRecord{}, fmt.Errorf("failed to get leave record by id %s: %w", id, err)
	}
	return l, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `UPDATE leave_records SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

// ListActiveByEmployeeBetween implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListActiveByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_records
		WHERE employee_id = $1
		  AND status = 'active'
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date
	`
	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var out []leave.LeaveRecord
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
