// Package words reads LC-3 machine words from their textual form: one
// word per line, either an x-prefixed hex literal or a 16-character
// binary string.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatError reports a line that is not a valid word literal.
type FormatError struct {
	Line   int // 1-based
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Parse converts a single word literal to its 16-bit value.
func Parse(s string) (uint16, error) {
	if strings.HasPrefix(s, "x") {
		v, err := strconv.ParseUint(s[1:], 16, 16)
		if err != nil {
			return 0, errors.New("invalid hex literal")
		}
		return uint16(v), nil
	}
	if len(s) == 16 {
		v, err := strconv.ParseUint(s, 2, 16)
		if err != nil {
			return 0, errors.New("invalid binary literal")
		}
		return uint16(v), nil
	}
	return 0, errors.New("want an x-prefixed hex literal or 16 binary digits")
}

// Read parses one word per line until EOF. The first malformed line
// aborts with a *FormatError; the caller gets no words from a stream it
// can't fully trust.
func Read(r io.Reader) ([]uint16, error) {
	var program []uint16
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		w, err := Parse(text)
		if err != nil {
			return nil, &FormatError{Line: n, Text: text, Reason: err.Error()}
		}
		program = append(program, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return program, nil
}
