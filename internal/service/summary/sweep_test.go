package summary_test

import (
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/worktime-backend-go/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_CorrectsWeeklyOvertime(t *testing.T) {
	env := servicetest.New(t)
	emp := env.Employee("Alice")
	env.Store.AddOvertimeRule(overtime.OvertimeRule{
		CompanyID:        env.CompanyID,
		RuleType:         overtime.RuleTypeWeeklyThreshold,
		ThresholdMinutes: 2400,
		Multiplier:       "1.5",
		Priority:         1,
		IsActive:         true,
	}, emp.ID)

	// Friday is recorded before the rest of the week.
	friday, res := env.Session(emp, "2024-03-15 08:00", "2024-03-15 11:20")
	require.Equal(t, 0, res.OvertimeMinutes)
	for _, day := range []string{"2024-03-11", "2024-03-12", "2024-03-13", "2024-03-14"} {
		env.Session(emp, day+" 08:00", day+" 17:35")
	}

	result, err := env.Sweep.Sweep(env.Ctx, summary.SweepRequest{CompanyID: &env.CompanyID, From: "2024-03-11", To: "2024-03-17"})
	require.NoError(t, err)
	assert.Equal(t, 5, result.SessionsRecalculated)
	assert.Equal(t, 5, result.SummariesRecalculated)
	assert.Equal(t, 0, result.Failures)

	fixed, err := env.SessionRepo.GetByID(env.Ctx, friday.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, fixed.OvertimeMinutes)
	assert.Equal(t, 100, fixed.RegularMinutes)

	ds, err := env.Daily.Get(env.Ctx, emp.ID, env.Date("2024-03-15"))
	require.NoError(t, err)
	assert.Equal(t, 100, ds.OvertimeMinutes)
}

func TestSweep_DeletesOrphans(t *testing.T) {
	env := servicetest.New(t)
	emp := env.Employee("Alice")
	bc := bossCall(env)

	ws, _ := env.Session(emp, "2024-03-12 09:00", "2024-03-12 17:00")
	_, err := env.Sessions.Cancel(env.Ctx, ws.ID)
	require.NoError(t, err)
	_, err = toggle(env, emp, "2024-03-13", &bc.ID)
	require.NoError(t, err)
	env.Session(emp, "2024-03-14 09:00", "2024-03-14 17:00")

	result, err := env.Sweep.Sweep(env.Ctx, summary.SweepRequest{From: "2024-03-11", To: "2024-03-17"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.SummariesDeleted)
	assert.Equal(t, 1, result.SessionsRecalculated)

	_, err = env.Daily.Get(env.Ctx, emp.ID, env.Date("2024-03-12"))
	assert.ErrorIs(t, err, summary.ErrDailySummaryNotFound)

	special, err := env.Daily.Get(env.Ctx, emp.ID, env.Date("2024-03-13"))
	require.NoError(t, err)
	assert.True(t, special.IsBossCall())

	_, err = env.Daily.Get(env.Ctx, emp.ID, env.Date("2024-03-14"))
	assert.NoError(t, err)
}

func TestSweep_Validation(t *testing.T) {
	env := servicetest.New(t)

	_, err := env.Sweep.Sweep(env.Ctx, summary.SweepRequest{From: "2024-03-17", To: "2024-03-11"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "to")

	_, err = env.Sweep.Sweep(env.Ctx, summary.SweepRequest{From: "2024-01-01", To: "2024-06-30"})
	require.ErrorAs(t, err, &verrs)
}
