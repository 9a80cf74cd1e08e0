package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// countingWriter counts bytes that reach the buffered writer
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteFile creates or truncates path and lets fill write its content.
// If fill, the flush or the close fails, the partial file is removed.
// It returns the number of bytes written.
func WriteFile(path string, fill func(w io.Writer) error) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	buf := bufio.NewWriter(file)
	cw := &countingWriter{w: buf}

	err = fill(cw)
	if err == nil {
		err = buf.Flush()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			err = errors.Join(err, rmErr)
		}
		return 0, fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}

	return cw.n, nil
}
