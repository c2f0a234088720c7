package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
)

type ClassifierImpl struct {
	holiday.HolidayRepository
}

func NewClassifier(repo holiday.HolidayRepository) holiday.Classifier {
	return &ClassifierImpl{HolidayRepository: repo}
}

// IsHoliday implements holiday.Classifier.
func (c *ClassifierImpl) IsHoliday(ctx context.Context, companyID string, date time.Time) (bool, error) {
	cal, err := c.Calendar(ctx, companyID)
	if err != nil {
		return false, err
	}
	return cal.IsHoliday(date), nil
}

// Calendar implements holiday.Classifier.
func (c *ClassifierImpl) Calendar(ctx context.Context, companyID string) (holiday.Calendar, error) {
	holidays, err := c.HolidayRepository.ListByCompanyID(ctx, companyID)
	if err != nil {
		return holiday.Calendar{}, fmt.Errorf("failed to list company holidays: %w", err)
	}
	return holiday.NewCalendar(holidays), nil
}
