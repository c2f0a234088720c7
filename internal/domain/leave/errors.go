package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave record not found")
	ErrLeaveAlreadyCancelled = errors.New("leave record is already cancelled")
	ErrLeaveRangeTooLong     = errors.New("leave range must not exceed 366 days")
)
