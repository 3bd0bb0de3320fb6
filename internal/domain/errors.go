package domain

import "errors"

// Domain errors
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrInvalidSymbol   = errors.New("invalid signal symbol")
	ErrMarkerNotFound  = errors.New("template marker not found")
	ErrDuplicateMarker = errors.New("template marker appears more than once")
	ErrNoTemplate      = errors.New("no template given")
	ErrUnknownSignal   = errors.New("unknown signal")
)
