package specialday

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialDayService_ListTypes(t *testing.T) {
	store := memory.NewStore()
	store.AddSpecialDayType(specialday.SpecialDayType{CompanyID: "c1", Code: "standby", DisplayOrder: 2, IsActive: true})
	store.AddSpecialDayType(specialday.SpecialDayType{CompanyID: "c1", Code: specialday.CodeBossCall, DisplayOrder: 1, IsActive: true})
	store.AddSpecialDayType(specialday.SpecialDayType{CompanyID: "c1", Code: "retired", DisplayOrder: 0, IsActive: false})
	store.AddSpecialDayType(specialday.SpecialDayType{CompanyID: "c2", Code: "other", IsActive: true})
	svc := NewSpecialDayService(memory.NewSpecialDayTypeRepository(store), memory.NewEmployeeRepository(store))

	types, err := svc.ListTypes(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, specialday.CodeBossCall, types[0].Code)
	assert.Equal(t, "standby", types[1].Code)
}

func TestSpecialDayService_Eligible(t *testing.T) {
	store := memory.NewStore()
	emp := store.AddEmployee(employee.Employee{CompanyID: "c1", FullName: "Alice", IsActive: true})
	open := store.AddSpecialDayType(specialday.SpecialDayType{CompanyID: "c1", Code: specialday.CodeBossCall, AppliesToAll: true, IsActive: true})
	granted := store.AddSpecialDayType(specialday.SpecialDayType{CompanyID: "c1", Code: "night_call", IsActive: true}, emp.ID)
	closed := store.AddSpecialDayType(specialday.SpecialDayType{CompanyID: "c1", Code: "field_trip", IsActive: true})
	svc := NewSpecialDayService(memory.NewSpecialDayTypeRepository(store), memory.NewEmployeeRepository(store))
	ctx := context.Background()

	got, err := svc.Eligible(ctx, emp.ID, open.ID)
	require.NoError(t, err)
	assert.Equal(t, open.ID, got.ID)

	_, err = svc.Eligible(ctx, emp.ID, granted.ID)
	assert.NoError(t, err)

	_, err = svc.Eligible(ctx, emp.ID, closed.ID)
	assert.ErrorIs(t, err, specialday.ErrNotEligible)

	_, err = svc.Eligible(ctx, emp.ID, "missing")
	assert.ErrorIs(t, err, specialday.ErrSpecialDayTypeNotFound)

	_, err = svc.Eligible(ctx, "nobody", open.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
