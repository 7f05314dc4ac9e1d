package asm

import (
	"maps"
	"regexp"
)

// Settings configures how source lines are tokenized and how operand
// tokens are matched. Any nil field resolves to the compiled-in default
// when the owning parser is constructed; a caller-supplied field replaces
// its default outright (the Syntax table is not merged key by key).
type Settings struct {
	// Separator splits a line into raw tokens. With a capture group,
	// the group is the token; otherwise the whole match is.
	Separator *regexp.Regexp

	// Label extracts an optional leading label. The rule needs two
	// capture groups: the label name and the remainder of the line.
	Label *regexp.Regexp

	// Comment matches the trailing comment portion of a line, which is
	// removed before the line is returned by a Source.
	Comment *regexp.Regexp

	// Syntax maps an operand-type name to its matching rule. A rule
	// with a capture group decodes the operand to the captured text,
	// otherwise to the whole match.
	Syntax map[string]*regexp.Regexp

	// Expand enables compile-time $(...) expression evaluation.
	Expand bool
}

var (
	defaultSeparator = regexp.MustCompile(`[^,\s]+`)
	defaultLabel     = regexp.MustCompile(`^([A-Za-z_]\w*):\s*(.*)$`)
	defaultComment   = regexp.MustCompile(`[;#].*$`)

	defaultSyntax = map[string]*regexp.Regexp{
		"imm":   regexp.MustCompile(`^-?\d+$`),
		"reg":   regexp.MustCompile(`^r\d+$`),
		"label": regexp.MustCompile(`^[A-Za-z_]\w*$`),
	}
)

// resolve layers the settings over the defaults, returning a new value.
// Performed once at parser construction; the result is never mutated.
func (set *Settings) resolve() (resolved *Settings) {
	resolved = &Settings{
		Separator: defaultSeparator,
		Label:     defaultLabel,
		Comment:   defaultComment,
		Syntax:    maps.Clone(defaultSyntax),
	}

	if set == nil {
		return
	}

	if set.Separator != nil {
		resolved.Separator = set.Separator
	}
	if set.Label != nil {
		resolved.Label = set.Label
	}
	if set.Comment != nil {
		resolved.Comment = set.Comment
	}
	if set.Syntax != nil {
		resolved.Syntax = maps.Clone(set.Syntax)
	}
	resolved.Expand = set.Expand

	return
}
