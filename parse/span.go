// Package parse locates pieces of grammar text for diagnostics.
package parse

import (
	"fmt"
	"strings"
)

// Context limits.
var (
	NoLimit      = -1
	DefaultLimit = 1
)

type file struct {
	text string
	name string
}

// Span is a byte range of a source text. It remembers the whole text, so
// diagnostics can report line, column and surrounding lines. The zero Span
// belongs to no text.
type Span struct {
	f     *file
	start int
	n     int
}

// NewSpan returns a span covering all of text.
func NewSpan(text string) Span {
	return NewSpanWithFilename(text, "")
}

func NewSpanWithFilename(text, filename string) Span {
	return Span{f: &file{text: text, name: filename}, n: len(text)}
}

// Filename is the name given to the source, or "".
func (s Span) Filename() string {
	if s.f == nil {
		return ""
	}
	return s.f.name
}

func (s Span) String() string {
	if s.f == nil {
		return ""
	}
	return s.f.text[s.start : s.start+s.n]
}

func (s Span) IsNil() bool {
	return s.f == nil
}

func (s Span) Format(state fmt.State, c rune) {
	if c == 'q' {
		_, _ = fmt.Fprintf(state, "%q", s.String())
	} else {
		_, _ = state.Write([]byte(s.String()))
	}
}

// Offset is where s starts in the source.
func (s Span) Offset() int {
	return s.start
}

func (s Span) Len() int {
	return s.n
}

// Position is the 1-based line and column of the start of s, or 0, 0 for the
// zero Span.
func (s Span) Position() (line, col int) {
	if s.f == nil {
		return 0, 0
	}
	before := s.f.text[:s.start]
	line = strings.Count(before, "\n") + 1
	col = s.start - strings.LastIndexByte(before, '\n')
	return line, col
}

// Slice returns the part of s between offsets a and b, relative to s.
func (s Span) Slice(a, b int) Span {
	return Span{f: s.f, start: s.start + a, n: b - a}
}

// Skip drops the first i bytes of s.
func (s Span) Skip(i int) Span {
	return s.Slice(i, s.n)
}

// End is the empty span just past s.
func (s Span) End() Span {
	return s.Skip(s.n)
}

// Context shows s highlighted between at most limitLines lines of text on
// either side, under a file:line:col heading.
func (s Span) Context(limitLines int) string {
	if s.f == nil {
		return ""
	}
	end := s.start + s.n
	above := s.f.text[:s.start]
	below := s.f.text[end:]
	if limitLines != NoLimit {
		if lines := strings.Split(above, "\n"); len(lines) > limitLines {
			above = strings.Join(lines[len(lines)-limitLines:], "\n")
		}
		if lines := strings.Split(below, "\n"); len(lines) > limitLines {
			below = strings.Join(lines[:limitLines], "\n")
		}
	}

	line, col := s.Position()
	return fmt.Sprintf("\n\033[1;37m%s:%d:%d:\033[0m\n%s\033[1;31m%s\033[0m%s",
		s.Filename(), line, col, above, s.String(), below)
}
