package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/worktime-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestClassifier_RecurringMatchesMonthDayOnly(t *testing.T) {
	store := memory.NewStore()
	store.AddHoliday(holiday.CompanyHoliday{CompanyID: "c1", HolidayDate: date(t, "2020-03-15"), Name: "Founders Day", IsRecurring: true})
	c := NewClassifier(memory.NewHolidayRepository(store))
	ctx := context.Background()

	for _, d := range []string{"2024-03-15", "2025-03-15"} {
		ok, err := c.IsHoliday(ctx, "c1", date(t, d))
		require.NoError(t, err)
		assert.True(t, ok, d)
	}

	ok, err := c.IsHoliday(ctx, "c1", date(t, "2024-03-16"))
	require.NoError(t, err)
	assert.False(t, ok)

	// holidays are company scoped
	ok, err = c.IsHoliday(ctx, "c2", date(t, "2024-03-15"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClassifier_ExactDateHoliday(t *testing.T) {
	store := memory.NewStore()
	store.AddHoliday(holiday.CompanyHoliday{CompanyID: "c1", HolidayDate: date(t, "2024-03-29"), Name: "Good Friday"})
	c := NewClassifier(memory.NewHolidayRepository(store))

	ok, err := c.IsHoliday(context.Background(), "c1", date(t, "2024-03-29"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.IsHoliday(context.Background(), "c1", date(t, "2025-03-29"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCalendar_Classify(t *testing.T) {
	cal := holiday.NewCalendar([]holiday.CompanyHoliday{
		{HolidayDate: date(t, "2024-03-16"), IsRecurring: false},
		{HolidayDate: date(t, "2000-03-13"), IsRecurring: true},
	})
	weekdays := func(d int) bool { return d <= 5 }

	// a holiday on a Saturday is a holiday, not a weekend
	assert.Equal(t, holiday.WorkDayHoliday, cal.Classify(date(t, "2024-03-16"), weekdays))
	assert.Equal(t, holiday.WorkDayHoliday, cal.Classify(date(t, "2024-03-13"), weekdays))
	assert.Equal(t, holiday.WorkDayWeekend, cal.Classify(date(t, "2024-03-17"), weekdays))
	assert.Equal(t, holiday.WorkDayRegular, cal.Classify(date(t, "2024-03-12"), weekdays))
}
