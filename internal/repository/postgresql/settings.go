package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// GetByCompanyID implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) (settings.CompanyWorkSettings, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT company_id, overtime_multiplier, weekend_multiplier, holiday_multiplier,
			   boss_call_multiplier, monthly_work_days, updated_at
		FROM company_work_settings
		WHERE company_id = $1
	`
	var cs settings.CompanyWorkSettings
	err := q.QueryRow(ctx, query, companyID).Scan(
		&cs.CompanyID, &cs.OvertimeMultiplier, &cs.WeekendMultiplier, &cs.HolidayMultiplier,
		&cs.BossCallMultiplier, &cs.MonthlyWorkDays, &cs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.CompanyWorkSettings{}, settings.ErrSettingsNotFound
		}
		return settings.CompanyWorkSettings{}, fmt.Errorf("failed to get company work settings: %w", err)
	}
	return cs, nil
}
