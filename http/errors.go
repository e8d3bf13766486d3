package http

import "errors"

// ErrInvalidValue is wrapped by every error returned from constructors and Validate methods.
var ErrInvalidValue = errors.New("invalid value")
