package generator

import (
	"fmt"
	"io"
	"strings"
)

// Generator produces documents of random array blocks
type Generator struct {
	// OnBlock, if set, is called after each block has been written.
	OnBlock func(Block)

	src IntSource
}

var newline = []byte{'\n'}

// New returns a Generator drawing from src
func New(src IntSource) *Generator {
	return &Generator{src: src}
}

// between draws uniformly from [lo, hi]
func (g *Generator) between(lo, hi int) int {
	return lo + g.src.IntN(hi-lo+1)
}

// Block draws the block with the given index: first its size, then each value in order.
func (g *Generator) Block(index int) Block {
	values := make([]int, g.between(MinSize, MaxSize))
	for i := range values {
		values[i] = g.between(MinValue, MaxValue)
	}
	return Block{Index: index, Values: values}
}

// Generate returns a document of n blocks indexed 0 through n-1.
func (g *Generator) Generate(n int) (string, error) {
	var sb strings.Builder
	if err := g.Stream(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Stream writes a document of n blocks to w, one block at a time.
func (g *Generator) Stream(w io.Writer, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	if _, err := w.Write(newline); err != nil {
		return err
	}

	// Reused across blocks; a full block is under 9KB.
	var scratch []byte
	for i := range n {
		b := g.Block(i)
		scratch = b.AppendText(scratch[:0])
		if _, err := w.Write(scratch); err != nil {
			return fmt.Errorf("writing block %d: %w", i, err)
		}
		if g.OnBlock != nil {
			g.OnBlock(b)
		}
	}

	return nil
}
