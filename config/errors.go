package config

import "errors"

// Validation errors.
var (
	ErrInvalidFloatPrecision = errors.New("config: float_precision must be > 0")
	ErrInvalidFloatTolerance = errors.New("config: float_comparison_tolerance must be >= 0")
	ErrInvalidListenAddress  = errors.New("config: listen_address must not be empty")
)

// Loading errors.
var (
	ErrConfigFileNotFound = errors.New("config: file not found")
)
