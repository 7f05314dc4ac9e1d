package asm

import (
	"os"
	"regexp"
	"strings"
)

// Source is a finite, forward-only sequence of source lines. Next is
// defined only after HasNext reported true; there is no rewind.
type Source interface {
	HasNext() bool
	Next() string
}

// stringSource slices an in-memory buffer between line terminators.
// Returned lines are comment-stripped and whitespace-trimmed.
type stringSource struct {
	text    string
	pos     int
	comment *regexp.Regexp
}

// NewSource builds a string-backed line source. The comment rule is taken
// from the settings (nil settings use the defaults).
func NewSource(text string, set *Settings) Source {
	if set == nil || set.Comment == nil {
		set = set.resolve()
	}
	return &stringSource{text: text, comment: set.Comment}
}

// NewFileSource reads the whole file into memory once and tokenizes it as
// a string source. An unreadable file yields *ErrSourceUnavailable.
func NewFileSource(path string, set *Settings) (src Source, err error) {
	data, rerr := os.ReadFile(path)
	if rerr != nil {
		err = &ErrSourceUnavailable{Path: path, Err: rerr}
		return
	}

	src = NewSource(string(data), set)
	return
}

func isTerminator(r rune) bool {
	return r == '\n' || r == '\r'
}

// HasNext reports whether any non-terminator bytes remain.
func (src *stringSource) HasNext() bool {
	return strings.ContainsFunc(src.text[src.pos:], func(r rune) bool {
		return !isTerminator(r)
	})
}

// Next consumes the run up to the next line terminator, advances the
// cursor past the run plus its terminator, and returns the trimmed,
// comment-stripped line.
func (src *stringSource) Next() (line string) {
	rest := src.text[src.pos:]

	end := strings.IndexAny(rest, "\r\n")
	if end < 0 {
		line = rest
		src.pos = len(src.text)
	} else {
		line = rest[:end]
		src.pos += end + 1
		// A CRLF pair counts as one terminator.
		if rest[end] == '\r' && end+1 < len(rest) && rest[end+1] == '\n' {
			src.pos++
		}
	}

	if src.comment != nil {
		line = src.comment.ReplaceAllString(line, "")
	}

	return strings.TrimSpace(line)
}
