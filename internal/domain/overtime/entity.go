package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

type RuleType string

const (
	RuleTypeDailyThreshold  RuleType = "daily_threshold"
	RuleTypeWeeklyThreshold RuleType = "weekly_threshold"
	RuleTypeCustom          RuleType = "custom"
)

// OvertimeRule is the stored form of a company rule. Multiplier is kept as text
// because legacy rows may hold values that do not parse.
type OvertimeRule struct {
	ID               string
	CompanyID        string
	Name             string
	RuleType         RuleType
	ThresholdMinutes int
	Multiplier       string
	Priority         int
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Rule is one of DailyThreshold, WeeklyThreshold or Custom.
type Rule interface {
	RulePriority() int
	isRule()
}

type DailyThreshold struct {
	ID         string
	Priority   int
	Threshold  int
	Multiplier decimal.Decimal
}

type WeeklyThreshold struct {
	ID         string
	Priority   int
	Threshold  int
	Multiplier decimal.Decimal
}

// Custom rules are stored but never evaluated.
type Custom struct {
	ID       string
	Priority int
}

func (r DailyThreshold) RulePriority() int  { return r.Priority }
func (r WeeklyThreshold) RulePriority() int { return r.Priority }
func (r Custom) RulePriority() int          { return r.Priority }

func (DailyThreshold) isRule()  {}
func (WeeklyThreshold) isRule() {}
func (Custom) isRule()          {}

// ToRule converts a stored rule to its typed form. An unparsable or non-positive
// multiplier falls back to fallback. Unknown rule types are treated as Custom.
func (r OvertimeRule) ToRule(fallback decimal.Decimal) Rule {
	mult, err := decimal.NewFromString(r.Multiplier)
	if err != nil || !mult.IsPositive() {
		mult = fallback
	}
	switch r.RuleType {
	case RuleTypeDailyThreshold:
		return DailyThreshold{ID: r.ID, Priority: r.Priority, Threshold: r.ThresholdMinutes, Multiplier: mult}
	case RuleTypeWeeklyThreshold:
		return WeeklyThreshold{ID: r.ID, Priority: r.Priority, Threshold: r.ThresholdMinutes, Multiplier: mult}
	default:
		return Custom{ID: r.ID, Priority: r.Priority}
	}
}

// Split is the evaluator output for one session.
type Split struct {
	RegularMinutes  int
	OvertimeMinutes int
	Multiplier      decimal.Decimal
	RuleID          *string
}
