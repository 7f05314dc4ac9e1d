package asm

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustCompile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}

func TestSettings_Defaults(t *testing.T) {
	assert := assert.New(t)

	var set *Settings
	resolved := set.resolve()

	assert.Equal(defaultSeparator, resolved.Separator)
	assert.Equal(defaultLabel, resolved.Label)
	assert.Equal(defaultComment, resolved.Comment)
	assert.False(resolved.Expand)

	for _, typ := range []string{"imm", "reg", "label"} {
		assert.Contains(resolved.Syntax, typ)
	}
}

func TestSettings_Overrides(t *testing.T) {
	assert := assert.New(t)

	sep := mustCompile(`\S+`)
	resolved := (&Settings{Separator: sep, Expand: true}).resolve()

	assert.Equal(sep, resolved.Separator)
	assert.Equal(defaultLabel, resolved.Label)
	assert.Equal(defaultComment, resolved.Comment)
	assert.True(resolved.Expand)
}

func TestSettings_SyntaxReplacedOutright(t *testing.T) {
	assert := assert.New(t)

	resolved := (&Settings{
		Syntax: map[string]*regexp.Regexp{
			"string": mustCompile(`^"(\w*)"$`),
		},
	}).resolve()

	// A caller-supplied table replaces the default table; there is no
	// per-key merge.
	assert.Contains(resolved.Syntax, "string")
	assert.NotContains(resolved.Syntax, "imm")
	assert.NotContains(resolved.Syntax, "reg")
}

func TestSettings_ResolveCopies(t *testing.T) {
	assert := assert.New(t)

	set := &Settings{}
	resolved := set.resolve()

	resolved.Syntax["extra"] = mustCompile(`x`)
	assert.NotContains(defaultSyntax, "extra")
}
