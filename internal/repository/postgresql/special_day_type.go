package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type specialDayTypeRepositoryImpl struct {
	db *database.DB
}

func NewSpecialDayTypeRepository(db *database.DB) specialday.SpecialDayTypeRepository {
	return &specialDayTypeRepositoryImpl{db: db}
}

const specialDayTypeColumns = `
	id, company_id, code, name, calculation_mode, multiplier,
	base_minutes, extra_minutes, extra_multiplier,
	applies_to_all, display_order, is_active, created_at, updated_at
`

func scanSpecialDayType(row pgx.Row) (specialday.SpecialDayType, error) {
	var t specialday.SpecialDayType
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.Code, &t.Name, &t.CalculationMode, &t.Multiplier,
		&t.BaseMinutes, &t.ExtraMinutes, &t.ExtraMultiplier,
		&t.AppliesToAll, &t.DisplayOrder, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// GetByID implements specialday.SpecialDayTypeRepository.
func (r *specialDayTypeRepositoryImpl) GetByID(ctx context.Context, id string) (specialday.SpecialDayType, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + specialDayTypeColumns + ` FROM special_day_types WHERE id = $1`

	t, err := scanSpecialDayType(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return specialday.SpecialDayType{}, specialday.ErrSpecialDayTypeNotFound
		}
		return specialday.SpecialDayType{}, fmt.Errorf("failed to get special day type by id %s: %w", id, err)
	}
	return t, nil
}

// ListByCompanyID implements specialday.SpecialDayTypeRepository.
func (r *specialDayTypeRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]specialday.SpecialDayType, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + specialDayTypeColumns + ` FROM special_day_types WHERE company_id = $1 ORDER BY display_order, code`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list special day types: %w", err)
	}
	defer rows.Close()

	var out []specialday.SpecialDayType
	for rows.Next() {
		t, err := scanSpecialDayType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan special day type: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// IsGranted implements specialday.SpecialDayTypeRepository.
func (r *specialDayTypeRepositoryImpl) IsGranted(ctx context.Context, employeeID, specialDayTypeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT EXISTS (
			SELECT 1 FROM employee_special_day_types
			WHERE employee_id = $1 AND special_day_type_id = $2
		)
	`
	var granted bool
	if err := q.QueryRow(ctx, query, employeeID, specialDayTypeID).Scan(&granted); err != nil {
		return false, fmt.Errorf("failed to check special day grant: %w", err)
	}
	return granted, nil
}
