package specialday

import (
	"time"

	"github.com/shopspring/decimal"
)

type CalculationMode string

const (
	ModeRounding   CalculationMode = "rounding"
	ModeFixedHours CalculationMode = "fixed_hours"
)

// CodeBossCall is the canonical code of the boss-call special day.
const CodeBossCall = "boss_call"

type SpecialDayType struct {
	ID              string
	CompanyID       string
	Code            string
	Name            string
	CalculationMode CalculationMode
	Multiplier      decimal.Decimal
	BaseMinutes     int
	ExtraMinutes    int
	ExtraMultiplier decimal.Decimal
	AppliesToAll    bool
	DisplayOrder    int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Config is the part of a type the effective-minutes formula needs.
type Config struct {
	Mode            CalculationMode
	Multiplier      decimal.Decimal
	BaseMinutes     int
	ExtraMinutes    int
	ExtraMultiplier decimal.Decimal
}

// Config returns the formula parameters. A zero rounding multiplier is replaced
// by fallback.
func (t SpecialDayType) Config(fallback decimal.Decimal) Config {
	mult := t.Multiplier
	if mult.IsZero() {
		mult = fallback
	}
	return Config{
		Mode:            t.CalculationMode,
		Multiplier:      mult,
		BaseMinutes:     t.BaseMinutes,
		ExtraMinutes:    t.ExtraMinutes,
		ExtraMultiplier: t.ExtraMultiplier,
	}
}

// EmployeeSpecialDayType grants an employee a type that does not apply to all.
type EmployeeSpecialDayType struct {
	EmployeeID       string
	SpecialDayTypeID string
	CreatedAt        time.Time
}
