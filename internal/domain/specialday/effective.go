package specialday

import "github.com/shopspring/decimal"

// EffectiveMinutes converts worked minutes into the minutes paid for a special day.
//
// fixed_hours ignores worked and expected: base + extra*extra_multiplier.
// rounding lifts worked time to half of expected (or to expected once half is
// reached) and then applies the multiplier. Worked time above expected is kept.
func EffectiveMinutes(worked, expected int, cfg Config) int {
	if cfg.Mode == ModeFixedHours {
		extra := decimal.NewFromInt(int64(cfg.ExtraMinutes)).Mul(cfg.ExtraMultiplier)
		return int(decimal.NewFromInt(int64(cfg.BaseMinutes)).Add(extra).Round(0).IntPart())
	}
	return RoundingEffective(worked, expected, cfg.Multiplier)
}

// RoundingEffective is the rounding formula shared by boss call and custom rounding types.
func RoundingEffective(worked, expected int, multiplier decimal.Decimal) int {
	half := int(decimal.NewFromInt(int64(expected)).Div(decimal.NewFromInt(2)).Round(0).IntPart())

	var rounded int
	switch {
	case worked < half:
		rounded = half
	case worked <= expected:
		rounded = expected
	default:
		rounded = worked
	}

	return int(decimal.NewFromInt(int64(rounded)).Mul(multiplier).Round(0).IntPart())
}
