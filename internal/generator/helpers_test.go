package generator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// scriptedSource replays fixed draws. Each draw must lie in [0, n) for the n it is consumed with.
type scriptedSource struct {
	draws []int
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.draws) == 0 {
		panic("scriptedSource: out of draws")
	}
	d := s.draws[0]
	s.draws = s.draws[1:]
	if d < 0 || d >= n {
		panic(fmt.Sprintf("scriptedSource: draw %d outside [0, %d)", d, n))
	}
	return d
}

// parseDocument checks the document layout and returns its blocks.
func parseDocument(doc string) ([]Block, error) {
	rest, ok := strings.CutPrefix(doc, "\n")
	if !ok {
		return nil, errors.New("missing leading blank line")
	}
	if rest == "" {
		return nil, nil
	}
	if !strings.HasSuffix(rest, "\n") {
		return nil, errors.New("document does not end with a newline")
	}

	lines := strings.Split(strings.TrimSuffix(rest, "\n"), "\n")
	var blocks []Block

	for i := 0; i < len(lines); {
		index := len(blocks)
		header := fmt.Sprintf("varsize inputArray_%d[] = {", index)
		if lines[i] != header {
			return nil, fmt.Errorf("line %d: got header %q, want %q", i, lines[i], header)
		}
		i++

		var raw []string
		for {
			if i >= len(lines) {
				return nil, fmt.Errorf("block %d: missing closing line", index)
			}
			line := lines[i]
			i++
			if line == "};" {
				break
			}
			raw = append(raw, line)
		}
		if len(raw) == 0 {
			return nil, fmt.Errorf("block %d: no values", index)
		}

		b := Block{Index: index, Values: make([]int, len(raw))}
		for j, line := range raw {
			last := j == len(raw)-1
			text, hasComma := strings.CutSuffix(line, ",")
			if hasComma == last {
				return nil, fmt.Errorf("block %d value %d: bad trailing comma in %q", index, j, line)
			}
			v, err := strconv.Atoi(text)
			if err != nil {
				return nil, fmt.Errorf("block %d value %d: %w", index, j, err)
			}
			b.Values[j] = v
		}
		blocks = append(blocks, b)
	}

	return blocks, nil
}
