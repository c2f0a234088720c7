package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) session.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

const sessionColumns = `
	id, employee_id, company_id, clock_in, clock_out, session_date,
	COALESCE(total_minutes, 0), COALESCE(regular_minutes, 0), COALESCE(overtime_minutes, 0),
	overtime_multiplier, status, notes, created_at, updated_at
`

func scanSession(row pgx.Row) (session.WorkSession, error) {
	var ws session.WorkSession
	var multiplier decimal.NullDecimal
	err := row.Scan(
		&ws.ID, &ws.EmployeeID, &ws.CompanyID, &ws.ClockIn, &ws.ClockOut, &ws.SessionDate,
		&ws.TotalMinutes, &ws.RegularMinutes, &ws.OvertimeMinutes,
		&multiplier, &ws.Status, &ws.Notes, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		return session.WorkSession{}, err
	}
	if multiplier.Valid {
		ws.OvertimeMultiplier = multiplier.Decimal
	}
	return ws, nil
}

func collectSessions(rows pgx.Rows) ([]session.WorkSession, error) {
	defer rows.Close()
	var out []session.WorkSession
	for rows.Next() {
		ws, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work session: %w", err)
		}
		out = append(out, ws)
	}
	return out, rows.Err()
}

// Create implements session.SessionRepository.
func (r *sessionRepositoryImpl) Create(ctx context.Context, ws session.WorkSession) (session.WorkSession, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO work_sessions (employee_id, company_id, clock_in, clock_out, session_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		ws.EmployeeID, ws.CompanyID, ws.ClockIn, ws.ClockOut, ws.SessionDate, ws.Status, ws.Notes,
	).Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return session.WorkSession{}, session.ErrAlreadyClockedIn
		}
		return session.WorkSession{}, err
	}
	return ws, nil
}

// GetByID implements session.SessionRepository.
func (r *sessionRepositoryImpl) GetByID(ctx context.Context, id string) (session.WorkSession, error) {
	q := GetQuerier(ctx, r.db)
	ws, err := scanSession(q.QueryRow(ctx, `SELECT `+sessionColumns+` FROM work_sessions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.WorkSession{}, session.ErrSessionNotFound
		}
		return session.WorkSession{}, fmt.Errorf("failed to get work session by id %s: %w", id, err)
	}
	return ws, nil
}

// GetActiveByEmployeeID implements session.SessionRepository.
func (r *sessionRepositoryImpl) GetActiveByEmployeeID(ctx context.Context, employeeID string) (session.WorkSession, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE employee_id = $1 AND status = 'active'`
	ws, err := scanSession(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.WorkSession{}, session.ErrSessionNotFound
		}
		return session.WorkSession{}, fmt.Errorf("failed to get active work session: %w", err)
	}
	return ws, nil
}

// Update implements session.SessionRepository.
func (r *sessionRepositoryImpl) Update(ctx context.Context, ws session.WorkSession) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE work_sessions
		SET clock_in = $2, clock_out = $3, session_date = $4, status = $5, notes = $6, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, ws.ID, ws.ClockIn, ws.ClockOut, ws.SessionDate, ws.Status, ws.Notes)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return session.ErrSessionNotFound
	}
	return nil
}

// UpdateCalculation implements session.SessionRepository.
func (r *sessionRepositoryImpl) UpdateCalculation(ctx context.Context, id string, c session.Calculation) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE work_sessions
		SET total_minutes = $2, regular_minutes = $3, overtime_minutes = $4,
			overtime_multiplier = $5, status = $6, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id, c.TotalMinutes, c.RegularMinutes, c.OvertimeMinutes, c.OvertimeMultiplier, c.Status)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return session.ErrSessionNotFound
	}
	return nil
}

// ListCountedByEmployeeAndDate implements session.SessionRepository.
func (r *sessionRepositoryImpl) ListCountedByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]session.WorkSession, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + sessionColumns + `
		FROM work_sessions
		WHERE employee_id = $1 AND session_date = $2 AND status <> 'cancelled'
		ORDER BY clock_in
	`
	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sessions: %w", err)
	}
	return collectSessions(rows)
}

// SumClosedMinutes implements session.SessionRepository.
func (r *sessionRepositoryImpl) SumClosedMinutes(ctx context.Context, employeeID string, from, to time.Time, excludeID string) (int, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT COALESCE(SUM(total_minutes), 0)
		FROM work_sessions
		WHERE employee_id = $1
		  AND session_date BETWEEN $2 AND $3
		  AND status IN ('completed', 'edited')
		  AND id::text <> $4
	`
	var sum int
	if err := q.QueryRow(ctx, query, employeeID, from, to, excludeID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum closed session minutes: %w", err)
	}
	return sum, nil
}

// ListCountedInRange implements session.SessionRepository.
func (r *sessionRepositoryImpl) ListCountedInRange(ctx context.Context, filter session.RangeFilter) ([]session.WorkSession, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + sessionColumns + `
		FROM work_sessions
		WHERE ($1::uuid IS NULL OR company_id = $1::uuid)
		  AND session_date BETWEEN $2 AND $3
		  AND status <> 'cancelled'
		ORDER BY clock_in, id
	`
	rows, err := q.Query(ctx, query, filter.CompanyID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sessions in range: %w", err)
	}
	return collectSessions(rows)
}
