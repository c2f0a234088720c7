package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
)

type ResolverImpl struct {
	schedule.EmployeeScheduleRepository
	defaults settings.Defaults
}

func NewResolver(repo schedule.EmployeeScheduleRepository, defaults settings.Defaults) schedule.Resolver {
	return &ResolverImpl{
		EmployeeScheduleRepository: repo,
		defaults:                   defaults,
	}
}

// Resolve implements schedule.Resolver.
func (r *ResolverImpl) Resolve(ctx context.Context, employeeID string, date time.Time) (schedule.ResolvedSchedule, error) {
	tl, err := r.Timeline(ctx, employeeID)
	if err != nil {
		return schedule.ResolvedSchedule{}, err
	}
	return tl.At(date), nil
}

// Timeline implements schedule.Resolver.
func (r *ResolverImpl) Timeline(ctx context.Context, employeeID string) (schedule.Timeline, error) {
	rows, err := r.EmployeeScheduleRepository.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return schedule.Timeline{}, fmt.Errorf("failed to list employee schedules: %w", err)
	}
	return schedule.NewTimeline(rows, r.defaults.ExpectedMinutes, r.defaults.WorkDays), nil
}
