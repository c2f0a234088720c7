package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Engine-wide fallbacks. Components receive them through Defaults instead of
// hard-coding their own copies.
const (
	DefaultExpectedMinutes = 480
	DefaultMonthlyWorkDays = "21.66"

	DefaultOvertimeMultiplier = "1.5"
	DefaultWeekendMultiplier  = "1.5"
	DefaultHolidayMultiplier  = "2.0"
	DefaultBossCallMultiplier = "1.5"
)

// DefaultWorkDays is Monday through Friday (ISO weekdays).
var DefaultWorkDays = []int{1, 2, 3, 4, 5}

// Defaults is the single source of truth for fallback values injected into each component.
type Defaults struct {
	ExpectedMinutes    int
	WorkDays           []int
	OvertimeMultiplier decimal.Decimal
	WeekendMultiplier  decimal.Decimal
	HolidayMultiplier  decimal.Decimal
	BossCallMultiplier decimal.Decimal
	MonthlyWorkDays    decimal.Decimal
}

// StandardDefaults returns the built-in defaults.
func StandardDefaults() Defaults {
	return Defaults{
		ExpectedMinutes:    DefaultExpectedMinutes,
		WorkDays:           append([]int(nil), DefaultWorkDays...),
		OvertimeMultiplier: decimal.RequireFromString(DefaultOvertimeMultiplier),
		WeekendMultiplier:  decimal.RequireFromString(DefaultWeekendMultiplier),
		HolidayMultiplier:  decimal.RequireFromString(DefaultHolidayMultiplier),
		BossCallMultiplier: decimal.RequireFromString(DefaultBossCallMultiplier),
		MonthlyWorkDays:    decimal.RequireFromString(DefaultMonthlyWorkDays),
	}
}

// CompanyWorkSettings holds company-wide multipliers and the monthly work-days constant.
type CompanyWorkSettings struct {
	CompanyID          string
	OvertimeMultiplier decimal.Decimal
	WeekendMultiplier  decimal.Decimal
	HolidayMultiplier  decimal.Decimal
	BossCallMultiplier decimal.Decimal
	MonthlyWorkDays    decimal.Decimal
	UpdatedAt          time.Time
}

// FromDefaults builds settings for a company that has no settings row.
func FromDefaults(companyID string, d Defaults) CompanyWorkSettings {
	return CompanyWorkSettings{
		CompanyID:          companyID,
		OvertimeMultiplier: d.OvertimeMultiplier,
		WeekendMultiplier:  d.WeekendMultiplier,
		HolidayMultiplier:  d.HolidayMultiplier,
		BossCallMultiplier: d.BossCallMultiplier,
		MonthlyWorkDays:    d.MonthlyWorkDays,
	}
}

// WithDefaults replaces zero values with the corresponding default.
func (s CompanyWorkSettings) WithDefaults(d Defaults) CompanyWorkSettings {
	if s.OvertimeMultiplier.IsZero() {
		s.OvertimeMultiplier = d.OvertimeMultiplier
	}
	if s.WeekendMultiplier.IsZero() {
		s.WeekendMultiplier = d.WeekendMultiplier
	}
	if s.HolidayMultiplier.IsZero() {
		s.HolidayMultiplier = d.HolidayMultiplier
	}
	if s.BossCallMultiplier.IsZero() {
		s.BossCallMultiplier = d.BossCallMultiplier
	}
	if s.MonthlyWorkDays.IsZero() {
		s.MonthlyWorkDays = d.MonthlyWorkDays
	}
	return s
}
