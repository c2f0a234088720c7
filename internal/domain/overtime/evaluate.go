package overtime

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Input carries everything Evaluate needs for one session.
type Input struct {
	TotalMinutes       int
	ExpectedMinutes    int
	IsRegularDay       bool
	WeekOtherMinutes   int // completed/edited sessions of the same ISO week, current excluded
	FallbackMultiplier decimal.Decimal
}

// SortRules orders rules by priority, highest first. Equal priorities keep their order.
func SortRules(rules []Rule) []Rule {
	sorted := append([]Rule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RulePriority() > sorted[j].RulePriority()
	})
	return sorted
}

// HasWeekly reports whether any rule needs the weekly sibling sum.
func HasWeekly(rules []Rule) bool {
	for _, r := range rules {
		if _, ok := r.(WeeklyThreshold); ok {
			return true
		}
	}
	return false
}

// Evaluate splits a session's minutes. Rules must already be sorted; the first
// matching rule wins. Without a match, regular days fall back to the expected
// minutes and other days count everything as regular at 1x.
func Evaluate(rules []Rule, in Input) Split {
	total := in.TotalMinutes
	if total < 0 {
		total = 0
	}

	if in.IsRegularDay {
		for _, rule := range rules {
			if split, ok := match(rule, total, in.WeekOtherMinutes); ok {
				return split
			}
		}

		regular := min(total, in.ExpectedMinutes)
		return Split{
			RegularMinutes:  regular,
			OvertimeMinutes: total - regular,
			Multiplier:      in.FallbackMultiplier,
		}
	}

	return Split{RegularMinutes: total, Multiplier: decimal.NewFromInt(1)}
}

func match(rule Rule, total, weekOther int) (Split, bool) {
	switch r := rule.(type) {
	case DailyThreshold:
		if total <= r.Threshold {
			return Split{}, false
		}
		return Split{
			RegularMinutes:  r.Threshold,
			OvertimeMinutes: total - r.Threshold,
			Multiplier:      r.Multiplier,
			RuleID:          &r.ID,
		}, true
	case WeeklyThreshold:
		week := weekOther + total
		if week <= r.Threshold {
			return Split{}, false
		}
		ot := min(total, week-r.Threshold)
		return Split{
			RegularMinutes:  total - ot,
			OvertimeMinutes: ot,
			Multiplier:      r.Multiplier,
			RuleID:          &r.ID,
		}, true
	case Custom:
		return Split{}, false
	default:
		return Split{}, false
	}
}
