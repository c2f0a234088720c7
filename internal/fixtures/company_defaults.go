package fixtures

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==========================================
// SEEDED DATA RESULT
// ==========================================

// SeededDataIDs holds IDs of all seeded default data for a company
type SeededDataIDs struct {
	CompanyID string

	// Employee IDs by full name
	EmployeeIDs map[string]string

	// Shift template IDs by name, e.g. "Standard Office Hours" -> "uuid"
	ShiftTemplateIDs map[string]string

	// Special day type IDs by code, e.g. "boss_call" -> "uuid"
	SpecialDayTypeIDs map[string]string

	HolidayIDs []string
}

func NewSeededDataIDs(companyID string) *SeededDataIDs {
	return &SeededDataIDs{
		CompanyID:         companyID,
		EmployeeIDs:       make(map[string]string),
		ShiftTemplateIDs:  make(map[string]string),
		SpecialDayTypeIDs: make(map[string]string),
	}
}

// ==========================================
// DEFAULT SHIFT TEMPLATES
// ==========================================

const StandardOfficeHours = "Standard Office Hours"

// GetDefaultShiftTemplates returns the office, night and afternoon shifts, Monday to Friday.
func GetDefaultShiftTemplates(companyID string) []schedule.ShiftTemplate {
	weekdays := []int{1, 2, 3, 4, 5}
	return []schedule.ShiftTemplate{
		{CompanyID: companyID, Name: StandardOfficeHours, StartTime: "09:00", EndTime: "18:00", BreakMinutes: 60, WorkDays: weekdays},
		// ends the next morning
		{CompanyID: companyID, Name: "Night Shift", StartTime: "22:00", EndTime: "06:00", BreakMinutes: 60, WorkDays: weekdays},
		{CompanyID: companyID, Name: "Afternoon Shift", StartTime: "14:00", EndTime: "22:00", BreakMinutes: 60, WorkDays: weekdays},
	}
}

// ==========================================
// DEFAULT SPECIAL DAY TYPES
// ==========================================

// GetDefaultSpecialDayTypes returns boss call, open to everyone, and a
// fixed-hours on-call day that must be granted per employee.
func GetDefaultSpecialDayTypes(companyID string, d settings.Defaults) []specialday.SpecialDayType {
	return []specialday.SpecialDayType{
		{
			CompanyID:       companyID,
			Code:            specialday.CodeBossCall,
			Name:            "Boss Call",
			CalculationMode: specialday.ModeRounding,
			Multiplier:      d.BossCallMultiplier,
			ExtraMultiplier: decimal.NewFromInt(1),
			AppliesToAll:    true,
			DisplayOrder:    1,
			IsActive:        true,
		},
		{
			CompanyID:       companyID,
			Code:            "on_call",
			Name:            "On Call",
			CalculationMode: specialday.ModeFixedHours,
			Multiplier:      decimal.NewFromInt(1),
			BaseMinutes:     480,
			ExtraMinutes:    120,
			ExtraMultiplier: decimal.RequireFromString("1.5"),
			AppliesToAll:    false,
			DisplayOrder:    2,
			IsActive:        true,
		},
	}
}

// ==========================================
// DEFAULT HOLIDAYS
// ==========================================

// GetDefaultHolidays returns fixed-date national holidays that repeat every year.
func GetDefaultHolidays(companyID string) []holiday.CompanyHoliday {
	recurring := func(month time.Month, day int, name string) holiday.CompanyHoliday {
		return holiday.CompanyHoliday{
			CompanyID:   companyID,
			HolidayDate: time.Date(2000, month, day, 0, 0, 0, 0, time.UTC),
			Name:        name,
			IsRecurring: true,
		}
	}
	return []holiday.CompanyHoliday{
		recurring(time.January, 1, "New Year's Day"),
		recurring(time.May, 1, "Labour Day"),
		recurring(time.June, 1, "Pancasila Day"),
		recurring(time.August, 17, "Independence Day"),
		recurring(time.December, 25, "Christmas Day"),
	}
}

// ==========================================
// DEFAULT OVERTIME RULES
// ==========================================

// GetDefaultOvertimeRules returns a 40 hour weekly threshold. It is not
// assigned to anyone by default.
func GetDefaultOvertimeRules(companyID string, d settings.Defaults) []overtime.OvertimeRule {
	return []overtime.OvertimeRule{
		{
			CompanyID:        companyID,
			Name:             "Weekly 40 hours",
			RuleType:         overtime.RuleTypeWeeklyThreshold,
			ThresholdMinutes: 2400,
			Multiplier:       d.OvertimeMultiplier.String(),
			Priority:         10,
			IsActive:         true,
		},
	}
}

// ==========================================
// MEMORY SEEDING
// ==========================================

// SeedMemoryCompany fills store with a demo company: the defaults above, plus
// one active employee per name on the standard office shift from effectiveFrom.
func SeedMemoryCompany(store *memory.Store, d settings.Defaults, employeeNames []string, effectiveFrom time.Time) *SeededDataIDs {
	ids := NewSeededDataIDs(uuid.NewString())

	store.SetSettings(settings.FromDefaults(ids.CompanyID, d))

	for _, t := range GetDefaultShiftTemplates(ids.CompanyID) {
		stored := store.AddShiftTemplate(t)
		ids.ShiftTemplateIDs[stored.Name] = stored.ID
	}
	for _, t := range GetDefaultSpecialDayTypes(ids.CompanyID, d) {
		stored := store.AddSpecialDayType(t)
		ids.SpecialDayTypeIDs[stored.Code] = stored.ID
	}
	for _, h := range GetDefaultHolidays(ids.CompanyID) {
		ids.HolidayIDs = append(ids.HolidayIDs, store.AddHoliday(h).ID)
	}
	for _, r := range GetDefaultOvertimeRules(ids.CompanyID, d) {
		store.AddOvertimeRule(r)
	}

	office := ids.ShiftTemplateIDs[StandardOfficeHours]
	for _, name := range employeeNames {
		emp := store.AddEmployee(employee.Employee{
			CompanyID: ids.CompanyID,
			FullName:  name,
			IsActive:  true,
		})
		ids.EmployeeIDs[name] = emp.ID
		store.AddEmployeeSchedule(schedule.EmployeeSchedule{
			EmployeeID:      emp.ID,
			ShiftTemplateID: &office,
			EffectiveFrom:   effectiveFrom,
		})
	}

	return ids
}
