package asm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testLang = `
comment = '--.*$'
expand = true

[syntax]
imm = '^-?\d+$'
reg = '^r\d+$'
label = '^[A-Za-z_]\w*$'

[[instruction]]
mnemonic = "mov"
operands = ["imm", "reg"]

[[instruction]]
mnemonic = "jmp"
operands = ["label"]
`

func writeLang(t *testing.T, text string) (path string) {
	t.Helper()

	path = filepath.Join(t.TempDir(), "lang.toml")
	err := os.WriteFile(path, []byte(text), 0o644)
	assert.NoError(t, err)
	return
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)

	set, defs, err := LoadFile(writeLang(t, testLang), pass)
	assert.NoError(err)

	assert.True(set.Expand)
	assert.NotNil(set.Comment)
	assert.Nil(set.Separator) // unset fields resolve to defaults later
	assert.Equal(3, len(set.Syntax))

	assert.Equal(2, len(defs))
	assert.Equal("mov", defs[0].Mnemonic)
	assert.Equal([]string{"imm", "reg"}, defs[0].Operands)
	assert.Equal("jmp", defs[1].Mnemonic)

	// The loaded description drives a normal parse.
	p := NewParser(defs, set)
	prog, perr := p.Parse(NewSource("top: mov 10 r0 -- comment\njmp top\n", p.Settings))
	assert.NoError(perr)
	assert.Equal(2, len(prog.Instructions))
	assert.Equal([]string{"10", "r0"}, prog.At(1).Args)
}

func TestLoadFile_BadPattern(t *testing.T) {
	assert := assert.New(t)

	path := writeLang(t, "separator = '['\n")
	set, defs, err := LoadFile(path, pass)
	assert.Nil(set)
	assert.Nil(defs)

	var ec *ErrConfig
	assert.True(errors.As(err, &ec))
	assert.Equal(path, ec.Path)
}

func TestLoadFile_Missing(t *testing.T) {
	assert := assert.New(t)

	_, _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"), pass)

	var ec *ErrConfig
	assert.True(errors.As(err, &ec))
}

func TestLoadFile_BadTOML(t *testing.T) {
	assert := assert.New(t)

	_, _, err := LoadFile(writeLang(t, "= not toml"), pass)

	var ec *ErrConfig
	assert.True(errors.As(err, &ec))
}
