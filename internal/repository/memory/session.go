package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
)

type sessionRepository struct{ s *Store }

func NewSessionRepository(s *Store) session.SessionRepository {
	return &sessionRepository{s: s}
}

func (r *sessionRepository) Create(ctx context.Context, ws session.WorkSession) (session.WorkSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if ws.Status == session.StatusActive {
		for _, other := range r.s.sessions {
			if other.EmployeeID == ws.EmployeeID && other.Status == session.StatusActive {
				return session.WorkSession{}, session.ErrAlreadyClockedIn
			}
		}
	}
	ws.ID = newID(ws.ID)
	ws.SessionDate = utils.NormalizeDate(ws.SessionDate)
	ws.CreatedAt, ws.UpdatedAt = r.s.now(), r.s.now()
	r.s.sessions[ws.ID] = ws
	return ws, nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (session.WorkSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ws, ok := r.s.sessions[id]
	if !ok {
		return session.WorkSession{}, session.ErrSessionNotFound
	}
	return ws, nil
}

func (r *sessionRepository) GetActiveByEmployeeID(ctx context.Context, employeeID string) (session.WorkSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, ws := range r.s.sessions {
		if ws.EmployeeID == employeeID && ws.Status == session.StatusActive {
			return ws, nil
		}
	}
	return session.WorkSession{}, session.ErrSessionNotFound
}

func (r *sessionRepository) Update(ctx context.Context, ws session.WorkSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.sessions[ws.ID]
	if !ok {
		return session.ErrSessionNotFound
	}
	cur.ClockIn = ws.ClockIn
	cur.ClockOut = ws.ClockOut
	cur.SessionDate = utils.NormalizeDate(ws.SessionDate)
	cur.Status = ws.Status
	cur.Notes = ws.Notes
	cur.UpdatedAt = r.s.now()
	r.s.sessions[ws.ID] = cur
	return nil
}

func (r *sessionRepository) UpdateCalculation(ctx context.Context, id string, c session.Calculation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.sessions[id]
	if !ok {
		return session.ErrSessionNotFound
	}
	cur.TotalMinutes = c.TotalMinutes
	cur.RegularMinutes = c.RegularMinutes
	cur.OvertimeMinutes = c.OvertimeMinutes
	cur.OvertimeMultiplier = c.OvertimeMultiplier
	cur.Status = c.Status
	cur.UpdatedAt = r.s.now()
	r.s.sessions[id] = cur
	return nil
}

func (r *sessionRepository) ListCountedByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]session.WorkSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	date = utils.NormalizeDate(date)
	var out []session.WorkSession
	for _, ws := range r.s.sessions {
		if ws.EmployeeID == employeeID && ws.SessionDate.Equal(date) && ws.Status.Counted() {
			out = append(out, ws)
		}
	}
	sortByClockIn(out)
	return out, nil
}

func (r *sessionRepository) SumClosedMinutes(ctx context.Context, employeeID string, from, to time.Time, excludeID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sum := 0
	for _, ws := range r.s.sessions {
		if ws.EmployeeID != employeeID || ws.ID == excludeID || !ws.Status.Closed() {
			continue
		}
		if inRange(ws.SessionDate, from, to) {
			sum += ws.TotalMinutes
		}
	}
	return sum, nil
}

func (r *sessionRepository) ListCountedInRange(ctx context.Context, filter session.RangeFilter) ([]session.WorkSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []session.WorkSession
	for _, ws := range r.s.sessions {
		if !ws.Status.Counted() || !inRange(ws.SessionDate, filter.From, filter.To) {
			continue
		}
		if filter.CompanyID != nil && ws.CompanyID != *filter.CompanyID {
			continue
		}
		out = append(out, ws)
	}
	sortByClockIn(out)
	return out, nil
}

func sortByClockIn(sessions []session.WorkSession) {
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].ClockIn.Equal(sessions[j].ClockIn) {
			return sessions[i].ClockIn.Before(sessions[j].ClockIn)
		}
		return sessions[i].ID < sessions[j].ID
	})
}
