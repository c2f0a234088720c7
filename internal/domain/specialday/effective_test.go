package specialday

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundingEffective(t *testing.T) {
	mult := decimal.RequireFromString("1.5")
	cases := []struct {
		name     string
		worked   int
		expected int
		want     int
	}{
		{"nothing worked rounds to half", 0, 480, 360},
		{"negative worked rounds to half", -10, 480, 360},
		{"below half rounds to half", 100, 480, 360},
		{"exactly half rounds to expected", 240, 480, 720},
		{"between half and expected", 400, 480, 720},
		{"exactly expected", 480, 480, 720},
		{"above expected keeps worked", 500, 480, 750},
		{"odd expected rounds half up", 0, 481, 362}, // half=241, 241*1.5=361.5
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, RoundingEffective(c.worked, c.expected, mult))
		})
	}
}

func TestEffectiveMinutes_FixedHoursIgnoresWorked(t *testing.T) {
	cfg := Config{
		Mode:            ModeFixedHours,
		BaseMinutes:     600,
		ExtraMinutes:    240,
		ExtraMultiplier: decimal.RequireFromString("1.5"),
	}
	assert.Equal(t, 960, EffectiveMinutes(999, 480, cfg))
	assert.Equal(t, 960, EffectiveMinutes(0, 0, cfg))
}

func TestEffectiveMinutes_RoundingMode(t *testing.T) {
	cfg := Config{Mode: ModeRounding, Multiplier: decimal.RequireFromString("1.5")}
	assert.Equal(t, 360, EffectiveMinutes(0, 480, cfg))
	assert.Equal(t, 750, EffectiveMinutes(500, 480, cfg))
}

func TestConfig_ZeroMultiplierUsesFallback(t *testing.T) {
	typ := SpecialDayType{CalculationMode: ModeRounding}
	cfg := typ.Config(decimal.NewFromInt(2))
	assert.Equal(t, "2", cfg.Multiplier.String())
}
