package holiday

import (
	"context"
	"time"
)

// Classifier decides whether a date is a company holiday, weekend or regular day.
type Classifier interface {
	IsHoliday(ctx context.Context, companyID string, date time.Time) (bool, error)

	// Calendar loads the company's holidays once for classifying a range of dates.
	Calendar(ctx context.Context, companyID string) (Calendar, error)
}
