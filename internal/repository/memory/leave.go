package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
)

type leaveRepository struct{ s *Store }

func NewLeaveRepository(s *Store) leave.LeaveRepository {
	return &leaveRepository{s: s}
}

func (r *leaveRepository) Create(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	record.ID = newID(record.ID)
	record.StartDate = utils.NormalizeDate(record.StartDate)
	record.EndDate = utils.NormalizeDate(record.EndDate)
	if record.Status == "" {
		record.Status = leave.LeaveStatusActive
	}
	record.CreatedAt, record.UpdatedAt = r.s.now(), r.s.now()
	r.s.leaves[record.ID] = record
	return record, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	record, ok := r.s.leaves[id]
	if !ok {
		return leave.LeaveRecord{}, leave.ErrLeaveNotFound
	}
	return record, nil
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	record, ok := r.s.leaves[id]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	record.Status = status
	record.UpdatedAt = r.s.now()
	r.s.leaves[id] = record
	return nil
}

func (r *leaveRepository) ListActiveByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	from, to = utils.NormalizeDate(from), utils.NormalizeDate(to)
	var out []leave.LeaveRecord
	for _, record := range r.s.leaves {
		if record.EmployeeID != employeeID || record.Status != leave.LeaveStatusActive {
			continue
		}
		if record.EndDate.Before(from) || record.StartDate.After(to) {
			continue
		}
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}
