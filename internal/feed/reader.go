package feed

import (
	"bufio"
	"io"
	"strings"
)

// Reader yields the input one line at a time.
type Reader struct {
	br *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next returns the next line without its terminator. A final line with no
// newline is still returned; io.EOF is reported only once nothing is left.
func (r *Reader) Next() (string, error) {
	line, err := r.br.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
