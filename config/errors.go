package config

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every ConfigurationError via errors.Is
var ErrConfiguration = errors.New("invalid configuration")

// ConfigurationError reports a setting, or a relationship between settings, that prevents a race from starting
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error // Optional underlying cause
}

// Errorf builds a ConfigurationError for field
func Errorf(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Wrap builds a ConfigurationError for field caused by err
func Wrap(field string, err error) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: err.Error(), Err: err}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
