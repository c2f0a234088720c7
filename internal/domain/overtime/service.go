package overtime

import (
	"context"
	"time"
)

// EvaluateRequest describes a session to split into regular and overtime minutes.
type EvaluateRequest struct {
	SessionID       string
	EmployeeID      string
	CompanyID       string
	SessionDate     time.Time
	TotalMinutes    int
	ExpectedMinutes int
	IsRegularDay    bool
}

type Evaluator interface {
	Evaluate(ctx context.Context, req EvaluateRequest) (Split, error)
}
