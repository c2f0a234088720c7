package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
)

// ==========================================
// EMPLOYEES
// ==========================================

type employeeRepository struct{ s *Store }

func NewEmployeeRepository(s *Store) employee.EmployeeRepository {
	return &employeeRepository{s: s}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *employeeRepository) ListForReport(ctx context.Context, filter employee.ReportFilter) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []employee.Employee
	for _, e := range r.s.employees {
		if e.CompanyID != filter.CompanyID {
			continue
		}
		if filter.EmployeeID != nil {
			if e.ID == *filter.EmployeeID {
				out = append(out, e)
			}
			continue
		}
		if e.IsActive || r.hasSummaryBetween(e.ID, filter.From, filter.To) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FullName != out[j].FullName {
			return strings.ToLower(out[i].FullName) < strings.ToLower(out[j].FullName)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// hasSummaryBetween reports whether the employee has a daily summary in range. Callers hold the lock.
func (r *employeeRepository) hasSummaryBetween(employeeID string, from, to time.Time) bool {
	for _, ds := range r.s.summaries {
		if ds.EmployeeID == employeeID && inRange(ds.SummaryDate, from, to) {
			return true
		}
	}
	return false
}

// ==========================================
// SCHEDULES
// ==========================================

type employeeScheduleRepository struct{ s *Store }

func NewEmployeeScheduleRepository(s *Store) schedule.EmployeeScheduleRepository {
	return &employeeScheduleRepository{s: s}
}

func (r *employeeScheduleRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]schedule.EmployeeSchedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []schedule.EmployeeSchedule
	for _, es := range r.s.schedules {
		if es.EmployeeID != employeeID {
			continue
		}
		if es.ShiftTemplateID != nil {
			if tpl, ok := r.s.templates[*es.ShiftTemplateID]; ok {
				es.Template = &tpl
			}
		}
		out = append(out, es)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EffectiveFrom.After(out[j].EffectiveFrom)
	})
	return out, nil
}

// ==========================================
// OVERTIME RULES
// ==========================================

type overtimeRuleRepository struct{ s *Store }

func NewOvertimeRuleRepository(s *Store) overtime.OvertimeRuleRepository {
	return &overtimeRuleRepository{s: s}
}

func (r *overtimeRuleRepository) ListActiveByEmployeeID(ctx context.Context, employeeID string) ([]overtime.OvertimeRule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []overtime.OvertimeRule
	for ruleID := range r.s.ruleAssignments[employeeID] {
		rule, ok := r.s.rules[ruleID]
		if ok && rule.IsActive {
			out = append(out, rule)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ==========================================
// HOLIDAYS
// ==========================================

type holidayRepository struct{ s *Store }

func NewHolidayRepository(s *Store) holiday.HolidayRepository {
	return &holidayRepository{s: s}
}

func (r *holidayRepository) ListByCompanyID(ctx context.Context, companyID string) ([]holiday.CompanyHoliday, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []holiday.CompanyHoliday
	for _, h := range r.s.holidays {
		if h.CompanyID == companyID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HolidayDate.Before(out[j].HolidayDate) })
	return out, nil
}

// ==========================================
// SPECIAL DAY TYPES
// ==========================================

type specialDayTypeRepository struct{ s *Store }

func NewSpecialDayTypeRepository(s *Store) specialday.SpecialDayTypeRepository {
	return &specialDayTypeRepository{s: s}
}

func (r *specialDayTypeRepository) GetByID(ctx context.Context, id string) (specialday.SpecialDayType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.specialTypes[id]
	if !ok {
		return specialday.SpecialDayType{}, specialday.ErrSpecialDayTypeNotFound
	}
	return t, nil
}

func (r *specialDayTypeRepository) ListByCompanyID(ctx context.Context, companyID string) ([]specialday.SpecialDayType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []specialday.SpecialDayType
	for _, t := range r.s.specialTypes {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

func (r *specialDayTypeRepository) IsGranted(ctx context.Context, employeeID, specialDayTypeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.specialGrants[employeeID][specialDayTypeID], nil
}

// ==========================================
// SETTINGS
// ==========================================

type settingsRepository struct{ s *Store }

func NewSettingsRepository(s *Store) settings.SettingsRepository {
	return &settingsRepository{s: s}
}

func (r *settingsRepository) GetByCompanyID(ctx context.Context, companyID string) (settings.CompanyWorkSettings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cs, ok := r.s.settings[companyID]
	if !ok {
		return settings.CompanyWorkSettings{}, settings.ErrSettingsNotFound
	}
	return cs, nil
}
