package config

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks an out-of-range or unknown user argument. These
// fail before any synthesis or file I/O happens.
var ErrInvalidArgument = errors.New("invalid argument")

// Gain bounds, inclusive.
const (
	MinGain = 0.01
	MaxGain = 1.0
)

// Rate bounds in words per minute, inclusive.
const (
	MinRate = 1
	MaxRate = 299
)

// CheckGain validates a synthesis gain value.
func CheckGain(gain float64) error {
	if gain < MinGain || gain > MaxGain {
		return fmt.Errorf("%w: gain must be between %g and %g, got %g",
			ErrInvalidArgument, MinGain, MaxGain, gain)
	}
	return nil
}

// CheckRate validates a speaking rate in words per minute.
func CheckRate(rate int) error {
	if rate < MinRate || rate > MaxRate {
		return fmt.Errorf("%w: rate must be between %d and %d, got %d",
			ErrInvalidArgument, MinRate, MaxRate, rate)
	}
	return nil
}
