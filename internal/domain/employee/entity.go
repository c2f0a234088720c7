package employee

import "time"

type Employee struct {
	ID        string
	CompanyID string
	FullName  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
