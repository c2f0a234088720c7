package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, company_id, full_name, is_active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`
	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(&e.ID, &e.CompanyID, &e.FullName, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id %s: %w", id, err)
	}
	return e, nil
}

// ListForReport implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListForReport(ctx context.Context, filter employee.ReportFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT e.id, e.company_id, e.full_name, e.is_active, e.created_at, e.updated_at
		FROM employees e
		WHERE e.company_id = $1
		  AND (
		    e.id = $2::uuid
		    OR ($2::uuid IS NULL AND (
		      e.is_active = TRUE
		      OR EXISTS (
		        SELECT 1 FROM daily_summaries ds
		        WHERE ds.employee_id = e.id
		          AND ds.summary_date BETWEEN $3 AND $4
		      )
		    ))
		  )
		ORDER BY LOWER(e.full_name), e.id
	`
	rows, err := q.Query(ctx, query, filter.CompanyID, filter.EmployeeID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var out []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.FullName, &e.IsActive, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
