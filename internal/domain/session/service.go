package session

import "context"

// Calculator implements calculate_session.
type Calculator interface {
	// Calculate splits a closed session into regular and overtime minutes, saves
	// them and recalculates the daily summary. A failed summary step is reported
	// in CalculationResult.DailySummaryError, not as the returned error.
	Calculate(ctx context.Context, sessionID string) (CalculationResult, error)
}

// SessionService drives the session lifecycle. Every change that closes or
// moves a session ends in a calculation of the affected dates.
type SessionService interface {
	Calculator

	ClockIn(ctx context.Context, req ClockInRequest) (WorkSession, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (WorkSession, CalculationResult, error)
	CreateManual(ctx context.Context, req CreateSessionRequest) (WorkSession, CalculationResult, error)
	Edit(ctx context.Context, req EditSessionRequest) (WorkSession, CalculationResult, error)
	Cancel(ctx context.Context, id string) (WorkSession, error)
}
