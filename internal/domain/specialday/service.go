package specialday

import "context"

type SpecialDayService interface {
	// ListTypes returns the company's active types ordered by display order.
	ListTypes(ctx context.Context, companyID string) ([]SpecialDayType, error)

	// Eligible returns the active type when the employee may use it.
	// It fails with ErrNotEligible for restricted types without a grant.
	Eligible(ctx context.Context, employeeID, specialDayTypeID string) (SpecialDayType, error)
}
