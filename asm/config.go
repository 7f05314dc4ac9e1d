package asm

import (
	"regexp"

	"github.com/BurntSushi/toml"
)

// File is the TOML form of a language description: tokenizing patterns,
// an operand-type syntax table, and a declared instruction list. It
// exists for tooling that only parses; executors cannot be described in
// a file and are bound by the loading caller.
//
//	separator = '[^,\s]+'
//	comment = '[;#].*$'
//
//	[syntax]
//	imm = '^-?\d+$'
//	reg = '^r\d+$'
//
//	[[instruction]]
//	mnemonic = "mov"
//	operands = ["imm", "reg"]
type File struct {
	Separator string            `toml:"separator"`
	Label     string            `toml:"label"`
	Comment   string            `toml:"comment"`
	Expand    bool              `toml:"expand"`
	Syntax    map[string]string `toml:"syntax"`

	Instructions []struct {
		Mnemonic string   `toml:"mnemonic"`
		Operands []string `toml:"operands"`
	} `toml:"instruction"`
}

// ErrConfig reports a language description file that could not be
// loaded or compiled.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("language description %v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// LoadFile reads a TOML language description, compiles its patterns into
// Settings, and binds every declared instruction to the given executor.
func LoadFile(path string, execute Executor) (set *Settings, defs []Definition, err error) {
	var file File
	if _, terr := toml.DecodeFile(path, &file); terr != nil {
		err = &ErrConfig{Path: path, Err: terr}
		return
	}

	set = &Settings{Expand: file.Expand}

	compile := func(pattern string) (re *regexp.Regexp) {
		if err != nil || pattern == "" {
			return
		}
		re, cerr := regexp.Compile(pattern)
		if cerr != nil {
			err = &ErrConfig{Path: path, Err: cerr}
		}
		return
	}

	set.Separator = compile(file.Separator)
	set.Label = compile(file.Label)
	set.Comment = compile(file.Comment)

	if len(file.Syntax) > 0 {
		set.Syntax = map[string]*regexp.Regexp{}
		for name, pattern := range file.Syntax {
			set.Syntax[name] = compile(pattern)
		}
	}
	if err != nil {
		set = nil
		return
	}

	for _, in := range file.Instructions {
		defs = append(defs, Define(in.Mnemonic, in.Operands, execute))
	}

	return
}
