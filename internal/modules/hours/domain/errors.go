package domain

import "errors"

var (
	ErrInvalidLocalTime = errors.New("invalid local time")
	ErrWindowOrder      = errors.New("closing time must be after opening time")
	ErrUnknownDay       = errors.New("unknown day")
	ErrInvalidSchedule  = errors.New("invalid schedule")
	ErrUnknownPreset    = errors.New("unknown schedule preset")
)
