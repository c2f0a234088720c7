//go:build integration

package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/worktime-backend-go/internal/repository/postgresql"
	holidaySvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/holiday"
	overtimeSvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/overtime"
	scheduleSvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/schedule"
	sessionSvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/session"
	settingsSvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/settings"
	specialdaySvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/specialday"
	summarySvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_OneActiveSessionPerEmployee(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	companyID := setup.CreateCompany(t, "Acme")
	employeeID := setup.CreateEmployee(t, companyID, "Alice")
	repo := postgresql.NewSessionRepository(setup.DB)

	now := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	first, err := repo.Create(ctx, session.WorkSession{
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		ClockIn:     now,
		SessionDate: utils.DateOf(now, time.UTC),
		Status:      session.StatusActive,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = repo.Create(ctx, session.WorkSession{
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		ClockIn:     now.Add(time.Minute),
		SessionDate: utils.DateOf(now, time.UTC),
		Status:      session.StatusActive,
	})
	assert.ErrorIs(t, err, session.ErrAlreadyClockedIn)

	active, err := repo.GetActiveByEmployeeID(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)
	assert.Nil(t, active.ClockOut)
}

func TestDailySummaryRepository_UpsertAndSpecialDay(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	companyID := setup.CreateCompany(t, "Acme")
	employeeID := setup.CreateEmployee(t, companyID, "Alice")
	bossCallID := setup.CreateBossCall(t, companyID)
	repo := postgresql.NewDailySummaryRepository(setup.DB)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	row := summary.DailySummary{
		EmployeeID:           employeeID,
		CompanyID:            companyID,
		SummaryDate:          date,
		ExpectedWorkMinutes:  480,
		Status:               summary.StatusAbsent,
		IsAbsent:             true,
		WorkDayType:          holiday.WorkDayRegular,
		EffectiveWorkMinutes: 0,
	}
	first, err := repo.Upsert(ctx, row)
	require.NoError(t, err)

	row.TotalWorkMinutes, row.TotalSessions = 300, 1
	row.Status, row.IsAbsent = summary.StatusComplete, false
	row.EffectiveWorkMinutes = 300
	second, err := repo.Upsert(ctx, row)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 300, second.TotalWorkMinutes)

	applied, err := repo.UpdateSpecialDay(ctx, second.ID, &bossCallID, 720)
	require.NoError(t, err)
	assert.True(t, applied.IsBossCall())
	assert.Equal(t, 720, applied.Contribution())

	got, err := repo.GetByEmployeeAndDate(ctx, employeeID, date)
	require.NoError(t, err)
	assert.Equal(t, date, got.SummaryDate)
	require.NotNil(t, got.SpecialDayCode)
	assert.Equal(t, "boss_call", *got.SpecialDayCode)

	rows, err := repo.ListInRange(ctx, summary.RangeFilter{CompanyID: &companyID, From: date, To: date.AddDate(0, 0, 6)})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, repo.Delete(ctx, got.ID))
	_, err = repo.GetByEmployeeAndDate(ctx, employeeID, date)
	assert.ErrorIs(t, err, summary.ErrDailySummaryNotFound)
}

func TestDailySummaryRepository_NullEffectiveMinutesFallsBack(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	companyID := setup.CreateCompany(t, "Acme")
	employeeID := setup.CreateEmployee(t, companyID, "Alice")

	_, err := setup.DB.Exec(ctx, `
		INSERT INTO daily_summaries (employee_id, company_id, summary_date, total_work_minutes, status)
		VALUES ($1, $2, '2024-03-11', 450, 'complete')
	`, employeeID, companyID)
	require.NoError(t, err)

	got, err := postgresql.NewDailySummaryRepository(setup.DB).GetByEmployeeAndDate(ctx, employeeID, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 450, got.EffectiveWorkMinutes)
}

func TestSessionService_AgainstPostgres(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	companyID := setup.CreateCompany(t, "Acme")
	employeeID := setup.CreateEmployee(t, companyID, "Alice")

	defaults := settings.StandardDefaults()
	employees := postgresql.NewEmployeeRepository(setup.DB)
	sessions := postgresql.NewSessionRepository(setup.DB)
	summaries := postgresql.NewDailySummaryRepository(setup.DB)
	types := postgresql.NewSpecialDayTypeRepository(setup.DB)
	cfg := settingsSvc.NewSettingsService(postgresql.NewSettingsRepository(setup.DB), defaults)
	resolver := scheduleSvc.NewResolver(postgresql.NewEmployeeScheduleRepository(setup.DB), defaults)
	classifier := holidaySvc.NewClassifier(postgresql.NewHolidayRepository(setup.DB))
	evaluator := overtimeSvc.NewEvaluator(postgresql.NewOvertimeRuleRepository(setup.DB), sessions, cfg, defaults)
	daily := summarySvc.NewDailyService(summaries, sessions, employees, postgresql.NewLeaveRepository(setup.DB), types,
		resolver, classifier, specialdaySvc.NewSpecialDayService(types, employees), cfg, time.UTC)
	svc := sessionSvc.NewSessionService(sessions, employees, resolver, classifier, evaluator, daily, time.UTC)

	ws, res, err := svc.CreateManual(ctx, session.CreateSessionRequest{
		EmployeeID: employeeID,
		ClockIn:    "2024-03-11T09:00:00Z",
		ClockOut:   "2024-03-11T19:00:00Z",
	})
	require.NoError(t, err)
	require.NoError(t, res.DailySummaryError)
	assert.Equal(t, 600, ws.TotalMinutes)
	assert.Equal(t, 120, ws.OvertimeMinutes)
	assert.Equal(t, "1.5", ws.OvertimeMultiplier.String())

	ds, err := daily.Get(ctx, employeeID, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 600, ds.TotalWorkMinutes)
	assert.Equal(t, summary.StatusComplete, ds.Status)
}

func TestEmployeeRepository_ListForReportKeepsWorkedInactive(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	companyID := setup.CreateCompany(t, "Acme")
	active := setup.CreateEmployee(t, companyID, "Bob")
	worked := setup.CreateEmployee(t, companyID, "Alice")
	idle := setup.CreateEmployee(t, companyID, "Carol")

	summaries := postgresql.NewDailySummaryRepository(setup.DB)
	_, err := summaries.Upsert(ctx, summary.DailySummary{
		EmployeeID:       worked,
		CompanyID:        companyID,
		SummaryDate:      time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		TotalWorkMinutes: 600,
		TotalSessions:    1,
		Status:           summary.StatusComplete,
		WorkDayType:      holiday.WorkDayRegular,
	})
	require.NoError(t, err)
	_, err = setup.DB.Exec(ctx, `UPDATE employees SET is_active = FALSE WHERE id IN ($1, $2)`, worked, idle)
	require.NoError(t, err)

	repo := postgresql.NewEmployeeRepository(setup.DB)
	march := employee.ReportFilter{
		CompanyID: companyID,
		From:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	got, err := repo.ListForReport(ctx, march)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, worked, got[0].ID)
	assert.False(t, got[0].IsActive)
	assert.Equal(t, active, got[1].ID)

	march.EmployeeID = &idle
	got, err = repo.ListForReport(ctx, march)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, idle, got[0].ID)
}

func TestDailySummaryRepository_UnchangedUpsertKeepsUpdatedAt(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	companyID := setup.CreateCompany(t, "Acme")
	employeeID := setup.CreateEmployee(t, companyID, "Alice")
	repo := postgresql.NewDailySummaryRepository(setup.DB)

	row := summary.DailySummary{
		EmployeeID:           employeeID,
		CompanyID:            companyID,
		SummaryDate:          time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		TotalWorkMinutes:     480,
		RegularMinutes:       480,
		ExpectedWorkMinutes:  480,
		TotalSessions:        1,
		Status:               summary.StatusComplete,
		WorkDayType:          holiday.WorkDayRegular,
		EffectiveWorkMinutes: 480,
	}
	first, err := repo.Upsert(ctx, row)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	same, err := repo.Upsert(ctx, row)
	require.NoError(t, err)
	assert.Equal(t, first.ID, same.ID)
	assert.True(t, first.UpdatedAt.Equal(same.UpdatedAt))

	row.TotalWorkMinutes = 500
	changed, err := repo.Upsert(ctx, row)
	require.NoError(t, err)
	assert.Equal(t, first.ID, changed.ID)
	assert.Equal(t, 500, changed.TotalWorkMinutes)
	assert.True(t, changed.UpdatedAt.After(first.UpdatedAt))
}
