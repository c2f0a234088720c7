package holiday

import "context"

type HolidayRepository interface {
	// ListByCompanyID returns both recurring and one-off holidays of the company.
	ListByCompanyID(ctx context.Context, companyID string) ([]CompanyHoliday, error)
}
