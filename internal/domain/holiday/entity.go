package holiday

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
)

type CompanyHoliday struct {
	ID          string
	CompanyID   string
	HolidayDate time.Time
	Name        string
	IsRecurring bool
	CreatedAt   time.Time
}

// Matches reports whether the holiday falls on date. Recurring holidays compare
// month and day only.
func (h CompanyHoliday) Matches(date time.Time) bool {
	if h.IsRecurring {
		return utils.MonthDay(h.HolidayDate) == utils.MonthDay(date)
	}
	return utils.NormalizeDate(h.HolidayDate).Equal(utils.NormalizeDate(date))
}

type WorkDayType string

const (
	WorkDayRegular WorkDayType = "regular"
	WorkDayWeekend WorkDayType = "weekend"
	WorkDayHoliday WorkDayType = "holiday"
)

func (t WorkDayType) IsValid() bool {
	switch t {
	case WorkDayRegular, WorkDayWeekend, WorkDayHoliday:
		return true
	}
	return false
}

// Calendar holds a company's holidays for classifying many dates without
// further lookups.
type Calendar struct {
	holidays []CompanyHoliday
}

func NewCalendar(holidays []CompanyHoliday) Calendar {
	return Calendar{holidays: holidays}
}

// IsHoliday checks exact-date holidays first, then recurring month-day matches.
func (c Calendar) IsHoliday(date time.Time) bool {
	for _, h := range c.holidays {
		if !h.IsRecurring && h.Matches(date) {
			return true
		}
	}
	for _, h := range c.holidays {
		if h.IsRecurring && h.Matches(date) {
			return true
		}
	}
	return false
}

// Classify returns the work-day type of date.
func (c Calendar) Classify(date time.Time, isWorkDay func(isoWeekday int) bool) WorkDayType {
	return ClassifyDay(c.IsHoliday(date), date, isWorkDay)
}

// ClassifyDay derives the work-day type once the holiday check is done.
// Holidays take precedence over weekends.
func ClassifyDay(isHoliday bool, date time.Time, isWorkDay func(isoWeekday int) bool) WorkDayType {
	if isHoliday {
		return WorkDayHoliday
	}
	if !isWorkDay(utils.ISOWeekday(date)) {
		return WorkDayWeekend
	}
	return WorkDayRegular
}
