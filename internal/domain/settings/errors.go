package settings

import "errors"

var (
	ErrSettingsNotFound = errors.New("company work settings not found")
)
