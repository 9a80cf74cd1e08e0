package output

import "errors"

var ErrWriteFailed = errors.New("failed to write output file")
