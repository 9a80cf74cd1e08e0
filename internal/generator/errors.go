package generator

import "errors"

// Sentinel errors for argument validation
var (
	ErrMissingCount     = errors.New("missing test count argument")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrInvalidCount     = errors.New("test count must be a positive integer")
)
