package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// ListByCompanyID implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]holiday.CompanyHoliday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, company_id, holiday_date, name, is_recurring, created_at
		FROM company_holidays
		WHERE company_id = $1
		ORDER BY holiday_date
	`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company holidays: %w", err)
	}
	defer rows.Close()

	var out []holiday.CompanyHoliday
	for rows.Next() {
		var h holiday.CompanyHoliday
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.HolidayDate, &h.Name, &h.IsRecurring, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company holiday: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
