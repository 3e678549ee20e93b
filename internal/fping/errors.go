package fping

import (
	"errors"
	"fmt"
)

// ErrToolNotFound is returned when the fping binary cannot be located on PATH.
var ErrToolNotFound = errors.New("fping binary not found in PATH")

// InvalidTargetError reports a target string that is not a syntactically
// valid IPv4 or IPv6 address.
type InvalidTargetError struct {
	Target string
	Err    error
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid target %q: %v", e.Target, e.Err)
}

func (e *InvalidTargetError) Unwrap() error { return e.Err }
