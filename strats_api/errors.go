package strats_api

import (
	"fmt"

	"github.com/pkg/errors"
)

// A ConfigError is raised when a pattern, a reference or an input file is
// described in a way that can never produce a valid mapping. These are
// detected when the configuration is built and always abort the run.
type ConfigError struct {
	err error
}

func (e *ConfigError) Error() string { return "config error: " + e.err.Error() }
func (e *ConfigError) Cause() error  { return e.err }
func (e *ConfigError) Unwrap() error { return e.err }

// A DesignError means the code itself is wrong (a mapper missing an entry
// that another mapper produced, or a layout combination with no plan).
// It is never caught or retried.
type DesignError struct {
	err error
}

func (e *DesignError) Error() string { return "design error: " + e.err.Error() }
func (e *DesignError) Cause() error  { return e.err }
func (e *DesignError) Unwrap() error { return e.err }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{err: errors.Errorf(format, args...)}
}

func designErrorf(format string, args ...interface{}) error {
	return &DesignError{err: errors.Errorf(format, args...)}
}

// IsConfigError reports whether err, or anything it wraps, is a ConfigError.
func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

// IsDesignError reports whether err, or anything it wraps, is a DesignError.
func IsDesignError(err error) bool {
	var target *DesignError
	return errors.As(err, &target)
}

// lineError annotates a parse failure with where it happened.
func lineError(err error, path string, line int) error {
	return errors.Wrap(err, fmt.Sprintf("%s: line %d", path, line))
}
