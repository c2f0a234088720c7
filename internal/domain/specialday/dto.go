package specialday

import "github.com/shopspring/decimal"

type SpecialDayTypeResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	CalculationMode CalculationMode `json:"calculation_mode"`
	Multiplier      decimal.Decimal `json:"multiplier"`
	BaseMinutes     int             `json:"base_minutes"`
	ExtraMinutes    int             `json:"extra_minutes"`
	ExtraMultiplier decimal.Decimal `json:"extra_multiplier"`
	AppliesToAll    bool            `json:"applies_to_all"`
	DisplayOrder    int             `json:"display_order"`
}

func NewSpecialDayTypeResponse(t SpecialDayType) SpecialDayTypeResponse {
	return SpecialDayTypeResponse{
		ID:              t.ID,
		Code:            t.Code,
		Name:            t.Name,
		CalculationMode: t.CalculationMode,
		Multiplier:      t.Multiplier,
		BaseMinutes:     t.BaseMinutes,
		ExtraMinutes:    t.ExtraMinutes,
		ExtraMultiplier: t.ExtraMultiplier,
		AppliesToAll:    t.AppliesToAll,
		DisplayOrder:    t.DisplayOrder,
	}
}
