package fixtures

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/repository/memory"
	scheduleSvc "github.com/cmlabs-hris/worktime-backend-go/internal/service/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedMemoryCompany(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	d := settings.StandardDefaults()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ids := SeedMemoryCompany(store, d, []string{"Alice", "Bob"}, from)

	require.Len(t, ids.EmployeeIDs, 2)
	assert.Len(t, ids.ShiftTemplateIDs, 3)
	assert.Contains(t, ids.SpecialDayTypeIDs, specialday.CodeBossCall)

	types, err := memory.NewSpecialDayTypeRepository(store).ListByCompanyID(ctx, ids.CompanyID)
	require.NoError(t, err)
	assert.Len(t, types, 2)

	cs, err := memory.NewSettingsRepository(store).GetByCompanyID(ctx, ids.CompanyID)
	require.NoError(t, err)
	assert.True(t, cs.MonthlyWorkDays.Equal(d.MonthlyWorkDays))

	resolver := scheduleSvc.NewResolver(memory.NewEmployeeScheduleRepository(store), d)
	resolved, err := resolver.Resolve(ctx, ids.EmployeeIDs["Alice"], time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, resolved.IsDefault)
	assert.Equal(t, "09:00", resolved.StartTime)
	assert.Equal(t, 480, resolved.ExpectedMinutes)
}

func TestGetDefaultShiftTemplates_NightShiftCrossesMidnight(t *testing.T) {
	for _, tpl := range GetDefaultShiftTemplates("c") {
		if tpl.Name == "Night Shift" {
			minutes, err := schedule.ExpectedMinutes(tpl.StartTime, tpl.EndTime, tpl.BreakMinutes)
			require.NoError(t, err)
			assert.Equal(t, 420, minutes)
			return
		}
	}
	t.Fatal("night shift missing")
}
