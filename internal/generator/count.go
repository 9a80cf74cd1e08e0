package generator

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCount validates the positional arguments and returns the test count.
// Exactly one argument is accepted and it must parse as an integer >= 1.
func ParseCount(args []string) (int, error) {
	switch {
	case len(args) == 0:
		return 0, ErrMissingCount
	case len(args) > 1:
		return 0, fmt.Errorf("%w: expected 1, got %d", ErrTooManyArguments, len(args))
	}

	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCount, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	return n, nil
}
