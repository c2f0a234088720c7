package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
)

type dailySummaryRepository struct{ s *Store }

func NewDailySummaryRepository(s *Store) summary.DailySummaryRepository {
	return &dailySummaryRepository{s: s}
}

// withCode fills the joined special-day code. Callers hold the lock.
func (r *dailySummaryRepository) withCode(ds summary.DailySummary) summary.DailySummary {
	ds.SpecialDayCode = nil
	if ds.SpecialDayTypeID != nil {
		if t, ok := r.s.specialTypes[*ds.SpecialDayTypeID]; ok {
			code := t.Code
			ds.SpecialDayCode = &code
		}
	}
	return ds
}

func (r *dailySummaryRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (summary.DailySummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ds, ok := r.s.summaries[summaryKey(employeeID, date)]
	if !ok {
		return summary.DailySummary{}, summary.ErrDailySummaryNotFound
	}
	return r.withCode(ds), nil
}

func (r *dailySummaryRepository) Upsert(ctx context.Context, ds summary.DailySummary) (summary.DailySummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ds.SummaryDate = utils.NormalizeDate(ds.SummaryDate)
	key := summaryKey(ds.EmployeeID, ds.SummaryDate)
	now := r.s.now()
	if cur, ok := r.s.summaries[key]; ok {
		ds.ID = cur.ID
		ds.CreatedAt = cur.CreatedAt
		ds.UpdatedAt = cur.UpdatedAt
		ds.SpecialDayCode = nil
		if sameContent(cur, ds) {
			return r.withCode(cur), nil
		}
	} else {
		ds.ID = newID(ds.ID)
		ds.CreatedAt = now
	}
	ds.UpdatedAt = now
	ds.SpecialDayCode = nil
	r.s.summaries[key] = ds
	return r.withCode(ds), nil
}

func (r *dailySummaryRepository) UpdateSpecialDay(ctx context.Context, id string, specialDayTypeID *string, effectiveMinutes int) (summary.DailySummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for key, ds := range r.s.summaries {
		if ds.ID != id {
			continue
		}
		ds.SpecialDayTypeID = specialDayTypeID
		ds.EffectiveWorkMinutes = effectiveMinutes
		ds.UpdatedAt = r.s.now()
		r.s.summaries[key] = ds
		return r.withCode(ds), nil
	}
	return summary.DailySummary{}, summary.ErrDailySummaryNotFound
}

func (r *dailySummaryRepository) ListInRange(ctx context.Context, filter summary.RangeFilter) ([]summary.DailySummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []summary.DailySummary
	for _, ds := range r.s.summaries {
		if !inRange(ds.SummaryDate, filter.From, filter.To) {
			continue
		}
		if filter.CompanyID != nil && ds.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.EmployeeID != nil && ds.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, r.withCode(ds))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SummaryDate.Equal(out[j].SummaryDate) {
			return out[i].SummaryDate.Before(out[j].SummaryDate)
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out, nil
}

func (r *dailySummaryRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for key, ds := range r.s.summaries {
		if ds.ID == id {
			delete(r.s.summaries, key)
			return nil
		}
	}
	return summary.ErrDailySummaryNotFound
}

// sameContent compares every stored column. Callers align identity and timestamps first.
func sameContent(a, b summary.DailySummary) bool {
	if (a.SpecialDayTypeID == nil) != (b.SpecialDayTypeID == nil) {
		return false
	}
	if a.SpecialDayTypeID != nil && *a.SpecialDayTypeID != *b.SpecialDayTypeID {
		return false
	}
	a.SpecialDayTypeID, b.SpecialDayTypeID = nil, nil
	a.SpecialDayCode, b.SpecialDayCode = nil, nil
	return a == b
}
