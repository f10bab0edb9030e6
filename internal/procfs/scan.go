package procfs

import (
	"bufio"
	"strconv"
	"strings"
)

// lineScanner walks a text blob line by line and exposes the non-empty
// whitespace-delimited tokens of the current line. It carries no format
// knowledge; decoders decide which lines matter, including blank ones.
type lineScanner struct {
	scanner *bufio.Scanner
	lineNo  int
	line    string
	fields  []string
}

// The intr line of /proc/stat grows with the interrupt vector count and can
// exceed bufio's default token size on large machines.
const maxLineBytes = 1 << 20

func newLineScanner(text string) *lineScanner {
	s := bufio.NewScanner(strings.NewReader(text))
	s.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &lineScanner{scanner: s}
}

func (ls *lineScanner) Scan() bool {
	if !ls.scanner.Scan() {
		return false
	}
	ls.lineNo++
	ls.line = ls.scanner.Text()
	ls.fields = strings.Fields(ls.line)
	return true
}

func parseUint(file string, line int, token string) (uint64, error) {
	v, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, &ParseError{File: file, Line: line, Field: token, Err: ErrBadNumber}
	}
	return v, nil
}

func parseFloat(file string, line int, token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, &ParseError{File: file, Line: line, Field: token, Err: ErrBadNumber}
	}
	return v, nil
}
