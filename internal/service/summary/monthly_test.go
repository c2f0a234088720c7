package summary_test

import (
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/worktime-backend-go/internal/service/servicetest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthly(t *testing.T, env *servicetest.Env, month string, emp *employee.Employee) summary.MonthlySummaryResponse {
	t.Helper()
	q := summary.MonthlySummaryQuery{CompanyID: env.CompanyID, Month: month}
	if emp != nil {
		q.EmployeeID = &emp.ID
	}
	resp, err := env.Monthly.Get(env.Ctx, q)
	require.NoError(t, err)
	return resp
}

func TestMonthly_OvertimeFromRegularSurplus(t *testing.T) {
	env := servicetest.New(t)
	emp := env.Employee("Alice")
	env.Store.AddHoliday(holiday.CompanyHoliday{CompanyID: env.CompanyID, HolidayDate: env.Date("2024-03-29"), Name: "Good Friday"})

	first, last := utils.MonthBounds(env.Date("2024-03-01"))
	worked := 0
	for _, d := range utils.DatesBetween(first, last) {
		if utils.ISOWeekday(d) > 5 || utils.FormatDate(d) == "2024-03-29" {
			continue
		}
		day := utils.FormatDate(d)
		env.Session(emp, day+" 08:00", day+" 16:20")
		worked++
	}
	require.Equal(t, 20, worked)

	resp := monthly(t, env, "2024-03", &emp)

	require.Len(t, resp.Summaries, 1)
	got := resp.Summaries[0]
	assert.Equal(t, "2024-03", resp.Month)
	assert.Equal(t, "21.66", resp.Settings.MonthlyWorkDays.String())
	assert.Len(t, got.Days, 31)
	assert.Equal(t, 20, got.WorkDays)
	assert.Equal(t, 10000, got.TotalMinutes)
	assert.Equal(t, 9600, got.ExpectedMinutes)
	assert.Equal(t, 400, got.NetMinutes)
	assert.Equal(t, 0, got.DeficitMinutes)
	assert.Equal(t, 0, got.AbsentDays)
	assert.Equal(t, 600, got.OvertimeValue)
	assert.Equal(t, "1.25", got.OvertimeDays.String())
	assert.Equal(t, "5.77", got.OvertimePercentage.String())

	goodFriday := got.Days[28]
	assert.Equal(t, "2024-03-29", goodFriday.Date)
	assert.Equal(t, holiday.WorkDayHoliday, goodFriday.WorkDayType)
	assert.False(t, goodFriday.IsCounted)
	assert.False(t, goodFriday.IsAbsent)
}

func TestMonthly_WeekendLeaveAndSpecialDays(t *testing.T) {
	env := servicetest.New(t)
	emp := env.Employee("Alice")
	bc := bossCall(env)

	env.Session(emp, "2024-03-16 09:00", "2024-03-16 14:00")
	_, err := env.Leaves.Grant(env.Ctx, leave.GrantLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  "2024-03-18",
		EndDate:    "2024-03-18",
		LeaveType:  "sick",
	})
	require.NoError(t, err)
	_, err = toggle(env, emp, "2024-03-19", &bc.ID)
	require.NoError(t, err)

	got := monthly(t, env, "2024-03", &emp).Summaries[0]

	// 21 weekdays minus one leave day, plus the worked Saturday
	assert.Equal(t, 21, got.WorkDays)
	assert.Equal(t, 9600, got.ExpectedMinutes)
	assert.Equal(t, 660, got.TotalMinutes)
	assert.Equal(t, 300, got.WeekendWorkMinutes)
	assert.Equal(t, 0, got.HolidayWorkMinutes)
	assert.Equal(t, 1, got.SpecialDayDays)
	assert.Equal(t, 360, got.SpecialDayMinutes)
	assert.Equal(t, 19, got.AbsentDays)
	assert.Equal(t, 1, got.LeaveDays)
	assert.Equal(t, 19*480+120, got.DeficitMinutes)
	assert.Equal(t, 0, got.OvertimeValue)
	assert.True(t, got.OvertimeDays.IsZero())

	require.Len(t, got.SpecialDays, 1)
	assert.Equal(t, summary.SpecialDayStat{SpecialDayTypeID: bc.ID, Code: "boss_call", Name: "Boss Call", Days: 1, Minutes: 360}, got.SpecialDays[0])

	saturday := got.Days[15]
	assert.Equal(t, holiday.WorkDayWeekend, saturday.WorkDayType)
	assert.True(t, saturday.IsCounted)
	assert.False(t, saturday.IsScheduled)
	assert.Equal(t, 300, saturday.ContributionMinutes)

	onLeave := got.Days[17]
	assert.True(t, onLeave.IsLeave)
	assert.False(t, onLeave.IsAbsent)
	assert.False(t, onLeave.IsCounted)

	special := got.Days[18]
	assert.True(t, special.IsBossCall)
	assert.False(t, special.IsAbsent)
	assert.Equal(t, 360, special.ContributionMinutes)
	assert.Equal(t, 120, special.DeficitMinutes)
}

func TestMonthly_AllActiveEmployees(t *testing.T) {
	env := servicetest.New(t)
	env.Employee("bob")
	env.Employee("Alice")
	env.Store.AddEmployee(employee.Employee{ID: uuid.NewString(), CompanyID: env.CompanyID, FullName: "Carol", IsActive: false})

	resp := monthly(t, env, "2024-02", nil)

	require.Len(t, resp.Summaries, 2)
	assert.Equal(t, "Alice", resp.Summaries[0].EmployeeName)
	assert.Equal(t, "bob", resp.Summaries[1].EmployeeName)
	for _, s := range resp.Summaries {
		assert.Len(t, s.Days, 29)
		assert.Equal(t, 21, s.AbsentDays)
	}
}

func TestMonthly_DeactivatedEmployeeKeepsWorkedMonth(t *testing.T) {
	env := servicetest.New(t)
	alice := env.Employee("Alice")
	env.Session(alice, "2024-03-11 08:00", "2024-03-11 18:00")

	alice.IsActive = false
	env.Store.AddEmployee(alice)
	env.Store.AddEmployee(employee.Employee{ID: uuid.NewString(), CompanyID: env.CompanyID, FullName: "Carol", IsActive: false})

	resp := monthly(t, env, "2024-03", nil)
	require.Len(t, resp.Summaries, 1)
	assert.Equal(t, alice.ID, resp.Summaries[0].EmployeeID)
	assert.Equal(t, 600, resp.Summaries[0].TotalMinutes)

	filtered := monthly(t, env, "2024-03", &alice)
	require.Len(t, filtered.Summaries, 1)
	assert.Equal(t, 600, filtered.Summaries[0].TotalMinutes)

	// no summaries in April, so only an explicit request includes her
	assert.Empty(t, monthly(t, env, "2024-04", nil).Summaries)
	assert.Len(t, monthly(t, env, "2024-04", &alice).Summaries, 1)
}

func TestMonthly_Errors(t *testing.T) {
	env := servicetest.New(t)

	_, err := env.Monthly.Get(env.Ctx, summary.MonthlySummaryQuery{CompanyID: env.CompanyID, Month: "2024-13"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "month")

	missing := uuid.NewString()
	_, err = env.Monthly.Get(env.Ctx, summary.MonthlySummaryQuery{CompanyID: env.CompanyID, Month: "2024-03", EmployeeID: &missing})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
