package specialday

import "errors"

var (
	ErrSpecialDayTypeNotFound = errors.New("special day type not found")
	ErrSpecialDayTypeInactive = errors.New("special day type is inactive")
	ErrNotEligible            = errors.New("employee is not eligible for this special day type")
)
