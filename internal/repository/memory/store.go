// Package memory keeps every repository in process memory. It backs the
// STORAGE_DRIVER=memory mode and the service tests.
package memory

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	employees       map[string]employee.Employee
	templates       map[string]schedule.ShiftTemplate
	schedules       map[string]schedule.EmployeeSchedule
	rules           map[string]overtime.OvertimeRule
	ruleAssignments map[string]map[string]bool // employee id -> rule ids
	holidays        map[string]holiday.CompanyHoliday
	specialTypes    map[string]specialday.SpecialDayType
	specialGrants   map[string]map[string]bool // employee id -> type ids
	settings        map[string]settings.CompanyWorkSettings
	sessions        map[string]session.WorkSession
	leaves          map[string]leave.LeaveRecord
	summaries       map[string]summary.DailySummary

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		employees:       make(map[string]employee.Employee),
		templates:       make(map[string]schedule.ShiftTemplate),
		schedules:       make(map[string]schedule.EmployeeSchedule),
		rules:           make(map[string]overtime.OvertimeRule),
		ruleAssignments: make(map[string]map[string]bool),
		holidays:        make(map[string]holiday.CompanyHoliday),
		specialTypes:    make(map[string]specialday.SpecialDayType),
		specialGrants:   make(map[string]map[string]bool),
		settings:        make(map[string]settings.CompanyWorkSettings),
		sessions:        make(map[string]session.WorkSession),
		leaves:          make(map[string]leave.LeaveRecord),
		summaries:       make(map[string]summary.DailySummary),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the time source used for created_at and updated_at.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func summaryKey(employeeID string, date time.Time) string {
	return employeeID + "|" + utils.FormatDate(date)
}

func inRange(d, from, to time.Time) bool {
	d = utils.NormalizeDate(d)
	return !d.Before(utils.NormalizeDate(from)) && !d.After(utils.NormalizeDate(to))
}

// ==========================================
// SEEDING
// ==========================================

func (s *Store) AddEmployee(e employee.Employee) employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = newID(e.ID)
	e.CreatedAt, e.UpdatedAt = s.now(), s.now()
	s.employees[e.ID] = e
	return e
}

func (s *Store) AddShiftTemplate(t schedule.ShiftTemplate) schedule.ShiftTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = newID(t.ID)
	t.CreatedAt, t.UpdatedAt = s.now(), s.now()
	s.templates[t.ID] = t
	return t
}

// AddEmployeeSchedule stores a schedule row; ShiftTemplateID must reference a stored template.
func (s *Store) AddEmployeeSchedule(es schedule.EmployeeSchedule) schedule.EmployeeSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	es.ID = newID(es.ID)
	es.EffectiveFrom = utils.NormalizeDate(es.EffectiveFrom)
	if es.EffectiveTo != nil {
		to := utils.NormalizeDate(*es.EffectiveTo)
		es.EffectiveTo = &to
	}
	es.Template = nil
	es.CreatedAt, es.UpdatedAt = s.now(), s.now()
	s.schedules[es.ID] = es
	return es
}

// AddOvertimeRule stores a rule and assigns it to each of employeeIDs.
func (s *Store) AddOvertimeRule(r overtime.OvertimeRule, employeeIDs ...string) overtime.OvertimeRule {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = newID(r.ID)
	r.CreatedAt, r.UpdatedAt = s.now(), s.now()
	s.rules[r.ID] = r
	for _, empID := range employeeIDs {
		if s.ruleAssignments[empID] == nil {
			s.ruleAssignments[empID] = make(map[string]bool)
		}
		s.ruleAssignments[empID][r.ID] = true
	}
	return r
}

func (s *Store) AddHoliday(h holiday.CompanyHoliday) holiday.CompanyHoliday {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = newID(h.ID)
	h.HolidayDate = utils.NormalizeDate(h.HolidayDate)
	h.CreatedAt = s.now()
	s.holidays[h.ID] = h
	return h
}

// AddSpecialDayType stores a type and grants it to each of employeeIDs.
func (s *Store) AddSpecialDayType(t specialday.SpecialDayType, employeeIDs ...string) specialday.SpecialDayType {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = newID(t.ID)
	t.CreatedAt, t.UpdatedAt = s.now(), s.now()
	s.specialTypes[t.ID] = t
	for _, empID := range employeeIDs {
		if s.specialGrants[empID] == nil {
			s.specialGrants[empID] = make(map[string]bool)
		}
		s.specialGrants[empID][t.ID] = true
	}
	return t
}

func (s *Store) SetSettings(cs settings.CompanyWorkSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs.UpdatedAt = s.now()
	s.settings[cs.CompanyID] = cs
}
