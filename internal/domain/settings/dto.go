package settings

import "github.com/shopspring/decimal"

type SettingsResponse struct {
	CompanyID          string          `json:"company_id"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier"`
	WeekendMultiplier  decimal.Decimal `json:"weekend_multiplier"`
	HolidayMultiplier  decimal.Decimal `json:"holiday_multiplier"`
	BossCallMultiplier decimal.Decimal `json:"boss_call_multiplier"`
	MonthlyWorkDays    decimal.Decimal `json:"monthly_work_days"`
}

func NewSettingsResponse(s CompanyWorkSettings) SettingsResponse {
	return SettingsResponse{
		CompanyID:          s.CompanyID,
		OvertimeMultiplier: s.OvertimeMultiplier,
		WeekendMultiplier:  s.WeekendMultiplier,
		HolidayMultiplier:  s.HolidayMultiplier,
		BossCallMultiplier: s.BossCallMultiplier,
		MonthlyWorkDays:    s.MonthlyWorkDays,
	}
}
