package specialday

import "context"

type SpecialDayTypeRepository interface {
	GetByID(ctx context.Context, id string) (SpecialDayType, error)

	// ListByCompanyID returns every type of the company, inactive ones included,
	// ordered by display order.
	ListByCompanyID(ctx context.Context, companyID string) ([]SpecialDayType, error)

	// IsGranted reports whether an EmployeeSpecialDayType row exists.
	IsGranted(ctx context.Context, employeeID, specialDayTypeID string) (bool, error)
}
