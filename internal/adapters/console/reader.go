package console

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
)

// DefaultMaxLineLength caps a single input line.
const DefaultMaxLineLength = 1023

// LineReader reads terminal lines with a length cap.
type LineReader struct {
	r   *bufio.Reader
	max int
}

// NewLineReader wraps r. A non-positive maxLen falls back to
// DefaultMaxLineLength.
func NewLineReader(r io.Reader, maxLen int) *LineReader {
	if maxLen <= 0 {
		maxLen = DefaultMaxLineLength
	}
	return &LineReader{r: bufio.NewReader(r), max: maxLen}
}

// ReadLine returns the next line without its terminator. Bytes beyond the
// cap are dropped up to the end of the line. A final line without a
// terminator is returned as is; io.EOF is returned only once nothing is left.
func (lr *LineReader) ReadLine() (string, error) {
	buf := make([]byte, 0, 64)
	read := false
	for {
		b, err := lr.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				break
			}
			return "", err
		}
		read = true
		if b == '\n' {
			break
		}
		if len(buf) < lr.max {
			buf = append(buf, b)
		}
	}
	if n := len(buf); n > 0 && buf[n-1] == '\r' {
		buf = buf[:n-1]
	}
	return string(buf), nil
}
