package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/worktime-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newResolver(store *memory.Store) schedule.Resolver {
	return NewResolver(memory.NewEmployeeScheduleRepository(store), settings.StandardDefaults())
}

func TestResolver_DefaultWhenNoSchedule(t *testing.T) {
	store := memory.NewStore()
	r := newResolver(store)

	got, err := r.Resolve(context.Background(), "emp-1", date(t, "2024-03-11"))

	require.NoError(t, err)
	assert.True(t, got.IsDefault)
	assert.Equal(t, 480, got.ExpectedMinutes)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.WorkDays)
	assert.False(t, got.HasStartTime())
	assert.False(t, got.IsWorkDay(6))
}

func TestResolver_OvernightShift(t *testing.T) {
	store := memory.NewStore()
	tpl := store.AddShiftTemplate(schedule.ShiftTemplate{Name: "Night", StartTime: "22:00", EndTime: "06:00", WorkDays: []int{1, 2, 3, 4, 5}})
	store.AddEmployeeSchedule(schedule.EmployeeSchedule{EmployeeID: "emp-1", ShiftTemplateID: &tpl.ID, EffectiveFrom: date(t, "2024-01-01")})

	got, err := newResolver(store).Resolve(context.Background(), "emp-1", date(t, "2024-03-11"))

	require.NoError(t, err)
	assert.False(t, got.IsDefault)
	assert.Equal(t, 480, got.ExpectedMinutes)
	assert.Equal(t, "22:00", got.StartTime)
}

func TestResolver_LatestEffectiveFromWins(t *testing.T) {
	store := memory.NewStore()
	early := store.AddShiftTemplate(schedule.ShiftTemplate{StartTime: "08:00", EndTime: "17:00", BreakMinutes: 60, WorkDays: []int{1, 2, 3, 4, 5}})
	late := store.AddShiftTemplate(schedule.ShiftTemplate{StartTime: "10:00", EndTime: "16:00", BreakMinutes: 30, WorkDays: []int{1, 2, 3}})
	store.AddEmployeeSchedule(schedule.EmployeeSchedule{EmployeeID: "emp-1", ShiftTemplateID: &early.ID, EffectiveFrom: date(t, "2024-01-01")})
	limit := date(t, "2024-03-31")
	store.AddEmployeeSchedule(schedule.EmployeeSchedule{EmployeeID: "emp-1", ShiftTemplateID: &late.ID, EffectiveFrom: date(t, "2024-03-01"), EffectiveTo: &limit})

	r := newResolver(store)
	ctx := context.Background()

	feb, err := r.Resolve(ctx, "emp-1", date(t, "2024-02-15"))
	require.NoError(t, err)
	assert.Equal(t, 480, feb.ExpectedMinutes)
	assert.Equal(t, "08:00", feb.StartTime)

	mar, err := r.Resolve(ctx, "emp-1", date(t, "2024-03-31"))
	require.NoError(t, err)
	assert.Equal(t, 330, mar.ExpectedMinutes)
	assert.Equal(t, []int{1, 2, 3}, mar.WorkDays)

	// past effective_to the older open-ended row applies again
	apr, err := r.Resolve(ctx, "emp-1", date(t, "2024-04-01"))
	require.NoError(t, err)
	assert.Equal(t, "08:00", apr.StartTime)
}

func TestResolver_TemplateBeatsCustomFields(t *testing.T) {
	store := memory.NewStore()
	tpl := store.AddShiftTemplate(schedule.ShiftTemplate{StartTime: "09:00", EndTime: "17:00", BreakMinutes: 60, WorkDays: []int{1, 2, 3, 4, 5}})
	store.AddEmployeeSchedule(schedule.EmployeeSchedule{
		EmployeeID:         "emp-1",
		ShiftTemplateID:    &tpl.ID,
		CustomStartTime:    strPtr("07:00"),
		CustomEndTime:      strPtr("19:00"),
		CustomBreakMinutes: intPtr(0),
		CustomWorkDays:     []int{6, 7},
		EffectiveFrom:      date(t, "2024-01-01"),
	})

	got, err := newResolver(store).Resolve(context.Background(), "emp-1", date(t, "2024-03-11"))

	require.NoError(t, err)
	assert.Equal(t, "09:00", got.StartTime)
	assert.Equal(t, 420, got.ExpectedMinutes)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.WorkDays)
}

func TestResolver_CustomFieldsOnly(t *testing.T) {
	store := memory.NewStore()
	store.AddEmployeeSchedule(schedule.EmployeeSchedule{
		EmployeeID:         "emp-1",
		CustomStartTime:    strPtr("12:00"),
		CustomEndTime:      strPtr("20:30"),
		CustomBreakMinutes: intPtr(30),
		CustomWorkDays:     []int{2, 4, 6},
		EffectiveFrom:      date(t, "2024-01-01"),
	})

	got, err := newResolver(store).Resolve(context.Background(), "emp-1", date(t, "2024-03-16"))

	require.NoError(t, err)
	assert.Equal(t, 480, got.ExpectedMinutes)
	assert.True(t, got.IsWorkDay(6))
	assert.False(t, got.IsWorkDay(1))
}

func TestResolver_NotYetEffectiveFallsBackToDefault(t *testing.T) {
	store := memory.NewStore()
	store.AddEmployeeSchedule(schedule.EmployeeSchedule{
		EmployeeID:      "emp-1",
		CustomStartTime: strPtr("12:00"),
		CustomEndTime:   strPtr("18:00"),
		EffectiveFrom:   date(t, "2024-06-01"),
	})

	got, err := newResolver(store).Resolve(context.Background(), "emp-1", date(t, "2024-03-11"))

	require.NoError(t, err)
	assert.True(t, got.IsDefault)
}

func TestExpectedMinutes(t *testing.T) {
	cases := []struct {
		start, end string
		brk        int
		want       int
	}{
		{"09:00", "17:00", 60, 420},
		{"22:00", "06:00", 0, 480},
		{"22:00", "07:00", 60, 480},
		{"08:00", "08:00", 0, 0},
	}
	for _, c := range cases {
		got, err := schedule.ExpectedMinutes(c.start, c.end, c.brk)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%s-%s", c.start, c.end)
	}

	for _, bad := range [][2]string{{"9am", "17:00"}, {"9:00", "17:00"}, {"09:00", "24:00"}} {
		_, err := schedule.ExpectedMinutes(bad[0], bad[1], 0)
		assert.ErrorIs(t, err, schedule.ErrInvalidClockTime, "%s-%s", bad[0], bad[1])
	}
}

func TestResolver_MalformedCustomClockFallsBack(t *testing.T) {
	store := memory.NewStore()
	r := newResolver(store)
	store.AddEmployeeSchedule(schedule.EmployeeSchedule{
		EmployeeID:      "emp-1",
		CustomStartTime: strPtr("7am"),
		CustomEndTime:   strPtr("16:00"),
		CustomWorkDays:  []int{1, 2, 3, 4, 5},
		EffectiveFrom:   date(t, "2024-01-01"),
	})

	got, err := r.Resolve(context.Background(), "emp-1", date(t, "2024-03-11"))

	require.NoError(t, err)
	assert.False(t, got.IsDefault)
	assert.Equal(t, 480, got.ExpectedMinutes)
	assert.False(t, got.HasStartTime())
}
