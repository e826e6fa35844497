/*
Package ucd provides a parser for Unicode Character Database files.

The format of UCD files is defined in http://www.unicode.org/reports/tr44/.
Data lines consist of a code-point or a code-point range, followed by
semicolon-separated fields and an optional comment:

   1100; G     # HANGUL CHOSEONG KIYEOK
   000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>

Lines starting with '#' and empty lines are skipped.
*/
package ucd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Item represents a data line of a UCD file.
type Item struct {
	LineNo   int      // line number within the input, starting at 1
	from, to rune     // code-point range; from == to for single code-points
	Fields   []string // fields following the code-point column, trimmed
	Comment  string   // rest-of-line comment
}

// Field gets field #i (1…n) from the data item. Field #0 is the code-point
// column and is not available as a string.
func (item *Item) Field(i int) string {
	if i > 0 && i <= len(item.Fields) {
		return item.Fields[i-1]
	}
	return ""
}

// Range gets the character range of the data item.
func (item *Item) Range() (from, to rune) {
	return item.from, item.to
}

func (item *Item) String() string {
	return fmt.Sprintf("item[line %d %#U..%#U %#v]", item.LineNo, item.from, item.to, item.Fields)
}

// Parse iterates over each data line of a UCD file and calls f on it.
// Parsing stops at the first malformed line.
func Parse(r io.Reader, f func(*Item)) error {
	if r == nil {
		return errors.New("no input present")
	}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		item, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		item.LineNo = lineNo
		f(item)
	}
	return scanner.Err()
}

func parseLine(line string) (*Item, error) {
	item := &Item{}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		item.Comment = strings.TrimSpace(line[i+1:])
		line = line[:i]
	}
	parts := strings.Split(line, ";")
	var err error
	if item.from, item.to, err = parseRange(strings.TrimSpace(parts[0])); err != nil {
		return nil, err
	}
	for _, p := range parts[1:] {
		item.Fields = append(item.Fields, strings.TrimSpace(p))
	}
	return item, nil
}

func parseRange(s string) (rune, rune, error) {
	from, to := s, s
	if i := strings.Index(s, ".."); i >= 0 {
		from, to = s[:i], s[i+2:]
	}
	l, err := strconv.ParseUint(from, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("hex decoding error: %w", err)
	}
	r, err := strconv.ParseUint(to, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("hex decoding error: %w", err)
	}
	if r < l {
		return 0, 0, fmt.Errorf("invalid range %s", s)
	}
	return rune(l), rune(r), nil
}
