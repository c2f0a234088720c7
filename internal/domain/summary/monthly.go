package summary

import (
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/shopspring/decimal"
)

// MonthTotals are the accumulated month figures the overtime formula reads.
type MonthTotals struct {
	WorkDays           int
	TotalMinutes       int
	ExpectedMinutes    int
	SpecialDayDays     int
	SpecialDayMinutes  int
	WeekendWorkMinutes int
	HolidayWorkMinutes int
}

func (t MonthTotals) NetMinutes() int {
	return t.TotalMinutes - t.ExpectedMinutes
}

// OvertimeFigures is the payroll overtime output for one employee and month.
type OvertimeFigures struct {
	NetMinutes         int
	ExpectedPerDay     decimal.Decimal
	SpecialDaySurplus  decimal.Decimal
	RegularSurplus     decimal.Decimal
	OvertimeValue      int
	OvertimeDays       decimal.Decimal
	OvertimePercentage decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeOvertime applies the monthly overtime formula. Nothing is paid unless
// the month closes with a positive net. Special-day surplus is added without a
// multiplier because effective minutes already carry one.
//
// expected_per_day x special_day_days is an estimate when special days have
// different expected minutes; it is kept as is for payroll compatibility.
func ComputeOvertime(t MonthTotals, s settings.CompanyWorkSettings) OvertimeFigures {
	out := OvertimeFigures{
		NetMinutes:         t.NetMinutes(),
		ExpectedPerDay:     decimal.Zero,
		SpecialDaySurplus:  decimal.Zero,
		RegularSurplus:     decimal.Zero,
		OvertimeDays:       decimal.Zero,
		OvertimePercentage: decimal.Zero,
	}

	workDays := t.WorkDays
	if workDays < 1 {
		workDays = 1
	}
	out.ExpectedPerDay = decimal.NewFromInt(int64(t.ExpectedMinutes)).Div(decimal.NewFromInt(int64(workDays)))

	if out.NetMinutes <= 0 {
		return out
	}

	weekend := decimal.NewFromInt(int64(t.WeekendWorkMinutes))
	holiday := decimal.NewFromInt(int64(t.HolidayWorkMinutes))

	out.SpecialDaySurplus = decimal.NewFromInt(int64(t.SpecialDayMinutes)).
		Sub(decimal.NewFromInt(int64(t.SpecialDayDays)).Mul(out.ExpectedPerDay))
	positiveSpecial := decimal.Max(decimal.Zero, out.SpecialDaySurplus)

	out.RegularSurplus = decimal.NewFromInt(int64(out.NetMinutes)).
		Sub(weekend).
		Sub(holiday).
		Sub(positiveSpecial)

	value := weekend.Mul(s.WeekendMultiplier).
		Add(holiday.Mul(s.HolidayMultiplier)).
		Add(positiveSpecial)
	if out.RegularSurplus.IsPositive() {
		value = value.Add(out.RegularSurplus.Mul(s.OvertimeMultiplier))
	}
	out.OvertimeValue = int(value.Round(0).IntPart())

	if out.ExpectedPerDay.IsZero() {
		return out
	}
	days := value.Div(out.ExpectedPerDay)
	out.OvertimeDays = days.Round(2)
	if !s.MonthlyWorkDays.IsZero() {
		out.OvertimePercentage = days.Div(s.MonthlyWorkDays).Mul(hundred).Round(2)
	}
	return out
}
