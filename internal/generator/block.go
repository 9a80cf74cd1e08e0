package generator

import "strconv"

// Block is one generated array declaration.
type Block struct {
	Index  int
	Values []int
}

var (
	headerPrefix = []byte("varsize inputArray_")
	headerSuffix = []byte("[] = {\n")
	footer       = []byte("};\n")
)

// Size returns the number of values in the block
func (b Block) Size() int {
	return len(b.Values)
}

// AppendText appends the block's initializer text to dst and returns the extended slice.
// Values are one per line and every value but the last carries a trailing comma.
func (b Block) AppendText(dst []byte) []byte {
	dst = append(dst, headerPrefix...)
	dst = strconv.AppendInt(dst, int64(b.Index), 10)
	dst = append(dst, headerSuffix...)

	last := len(b.Values) - 1
	for i, v := range b.Values {
		dst = strconv.AppendInt(dst, int64(v), 10)
		if i < last {
			dst = append(dst, ',')
		}
		dst = append(dst, '\n')
	}

	return append(dst, footer...)
}

// Render returns the document for blocks, leading blank line included.
func Render(blocks ...Block) string {
	buf := []byte{'\n'}
	for _, b := range blocks {
		buf = b.AppendText(buf)
	}
	return string(buf)
}
