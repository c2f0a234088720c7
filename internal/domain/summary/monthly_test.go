package summary

import (
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
)

func standardSettings() settings.CompanyWorkSettings {
	return settings.FromDefaults("company-1", settings.StandardDefaults())
}

func TestComputeOvertime_RegularSurplus(t *testing.T) {
	totals := MonthTotals{WorkDays: 20, TotalMinutes: 10000, ExpectedMinutes: 9600}

	got := ComputeOvertime(totals, standardSettings())

	assert.Equal(t, 400, got.NetMinutes)
	assert.Equal(t, "480", got.ExpectedPerDay.String())
	assert.Equal(t, "400", got.RegularSurplus.String())
	assert.Equal(t, 600, got.OvertimeValue)
	assert.Equal(t, "1.25", got.OvertimeDays.String())
	assert.Equal(t, "5.77", got.OvertimePercentage.String())
}

func TestComputeOvertime_NoPayoutWithoutPositiveNet(t *testing.T) {
	totals := MonthTotals{WorkDays: 20, TotalMinutes: 9000, ExpectedMinutes: 9600, WeekendWorkMinutes: 300}

	got := ComputeOvertime(totals, standardSettings())

	assert.Equal(t, -600, got.NetMinutes)
	assert.Equal(t, 0, got.OvertimeValue)
	assert.True(t, got.OvertimeDays.IsZero())
	assert.True(t, got.OvertimePercentage.IsZero())
}

func TestComputeOvertime_WeekendHolidayAndSpecialDay(t *testing.T) {
	// 20 scheduled days plus one worked weekend day and one boss-call day.
	totals := MonthTotals{
		WorkDays:           22,
		ExpectedMinutes:    10560, // 22 * 480
		TotalMinutes:       11460,
		WeekendWorkMinutes: 240,
		HolidayWorkMinutes: 120,
		SpecialDayDays:     1,
		SpecialDayMinutes:  720,
	}

	got := ComputeOvertime(totals, standardSettings())

	// net 900; surplus of the special day is 720-480=240; regular surplus 900-240-120-240=300
	assert.Equal(t, 900, got.NetMinutes)
	assert.Equal(t, "240", got.SpecialDaySurplus.String())
	assert.Equal(t, "300", got.RegularSurplus.String())
	// 300*1.5 + 240*1.5 + 120*2 + 240 = 450+360+240+240
	assert.Equal(t, 1290, got.OvertimeValue)
	assert.Equal(t, "2.69", got.OvertimeDays.String())
}

func TestComputeOvertime_NegativeRegularSurplusIsNotPaid(t *testing.T) {
	totals := MonthTotals{
		WorkDays:           1,
		ExpectedMinutes:    0,
		TotalMinutes:       300,
		WeekendWorkMinutes: 300,
	}

	got := ComputeOvertime(totals, standardSettings())

	assert.Equal(t, "0", got.RegularSurplus.String())
	assert.Equal(t, 450, got.OvertimeValue)
	// expected per day is zero so days and percentage stay zero
	assert.True(t, got.OvertimeDays.IsZero())
	assert.True(t, got.OvertimePercentage.IsZero())
}
