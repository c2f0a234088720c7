package specialday

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
)

type SpecialDayServiceImpl struct {
	types     specialday.SpecialDayTypeRepository
	employees employee.EmployeeRepository
}

func NewSpecialDayService(types specialday.SpecialDayTypeRepository, employees employee.EmployeeRepository) specialday.SpecialDayService {
	return &SpecialDayServiceImpl{
		types:     types,
		employees: employees,
	}
}

// ListTypes implements specialday.SpecialDayService.
func (s *SpecialDayServiceImpl) ListTypes(ctx context.Context, companyID string) ([]specialday.SpecialDayType, error) {
	all, err := s.types.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list special day types: %w", err)
	}
	active := make([]specialday.SpecialDayType, 0, len(all))
	for _, t := range all {
		if t.IsActive {
			active = append(active, t)
		}
	}
	return active, nil
}

// Eligible implements specialday.SpecialDayService.
func (s *SpecialDayServiceImpl) Eligible(ctx context.Context, employeeID, specialDayTypeID string) (specialday.SpecialDayType, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return specialday.SpecialDayType{}, err
	}

	t, err := s.types.GetByID(ctx, specialDayTypeID)
	if err != nil {
		if errors.Is(err, specialday.ErrSpecialDayTypeNotFound) {
			return specialday.SpecialDayType{}, err
		}
		return specialday.SpecialDayType{}, fmt.Errorf("failed to get special day type: %w", err)
	}
	if t.CompanyID != emp.CompanyID {
		return specialday.SpecialDayType{}, specialday.ErrSpecialDayTypeNotFound
	}
	if !t.IsActive {
		return specialday.SpecialDayType{}, specialday.ErrSpecialDayTypeInactive
	}
	if t.AppliesToAll {
		return t, nil
	}

	granted, err := s.types.IsGranted(ctx, emp.ID, t.ID)
	if err != nil {
		return specialday.SpecialDayType{}, fmt.Errorf("failed to check special day grant: %w", err)
	}
	if !granted {
		return specialday.SpecialDayType{}, specialday.ErrNotEligible
	}
	return t, nil
}
