package session

import "errors"

var (
	ErrSessionNotFound  = errors.New("work session not found")
	ErrInvalidInterval  = errors.New("clock_out must not be before clock_in")
	ErrIncomplete       = errors.New("work session has no clock_out yet")
	ErrAlreadyClockedIn = errors.New("employee already has an active work session")
	ErrNotClockedIn     = errors.New("employee has no active work session")
	ErrSessionCancelled = errors.New("work session is cancelled")
	ErrSessionNotClosed = errors.New("an active work session cannot be edited, clock out first")
)
