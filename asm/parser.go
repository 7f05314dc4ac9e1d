package asm

import (
	"maps"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Parser turns a line source into a Program using a resolved Settings
// value and an ordered instruction registry. The registry is owned by the
// caller and must outlive the parse call.
type Parser struct {
	Settings    *Settings    // Resolved against defaults at construction.
	Definitions []Definition // Tried in order during overload resolution.

	predefine map[string]string // Predefined $() globals.
	equates   map[string]string // Per-parse equate table.
}

// NewParser resolves the settings overrides against the defaults and
// builds a parser over the given instruction definitions.
func NewParser(defs []Definition, set *Settings) (p *Parser) {
	p = &Parser{
		Settings:    set.resolve(),
		Definitions: defs,
	}

	return
}

// Predefine defines a value visible to $() expressions in every parse.
func (p *Parser) Predefine(name string, value string) {
	if p.predefine == nil {
		p.predefine = map[string]string{name: value}
	} else {
		p.predefine[name] = value
	}
}

// Parse consumes the source line by line. On success the returned error
// is nil. On failure the error is an *ErrParse anchored at the offending
// line, and the returned Program holds everything accumulated before the
// halt, for diagnostics only.
func (p *Parser) Parse(src Source) (prog *Program, err error) {
	prog = &Program{
		Labels: map[string]int{},
	}

	p.equates = maps.Clone(p.predefine)
	if p.equates == nil {
		p.equates = map[string]string{}
	}

	for src.HasNext() {
		line := src.Next()
		prog.Lines++
		lineno := prog.Lines

		log.Debugf("parse %v: %v", lineno, line)

		halt := func(errs ...error) {
			err = &ErrParse{LineNo: lineno, Line: line, Errs: errs}
		}

		// Leading labels. Each records the position the next emitted
		// instruction will occupy, whether or not one ever lands there.
		for {
			match := p.Settings.Label.FindStringSubmatch(line)
			if match == nil {
				break
			}
			name := match[1]
			if _, ok := prog.Labels[name]; ok {
				halt(ErrDuplicateLabel(name))
				return
			}
			prog.Labels[name] = len(prog.Instructions) + 1
			line = ""
			if len(match) > 2 {
				line = strings.TrimSpace(match[2])
			}
		}

		if p.Settings.Expand && strings.Contains(line, "$(") {
			var eerr error
			line, eerr = p.expand(line, lineno)
			if eerr != nil {
				halt(eerr)
				return
			}
		}

		tokens := p.split(line)
		if len(tokens) == 0 {
			// Nothing emitted; the line keeps its (empty) slot.
			prog.Instructions = append(prog.Instructions, nil)
			continue
		}

		if tokens[0] == ".equ" {
			if eerr := p.equate(tokens); eerr != nil {
				halt(eerr)
				return
			}
			prog.Instructions = append(prog.Instructions, nil)
			continue
		}

		for n, token := range tokens {
			if value, ok := p.equates[token]; ok {
				tokens[n] = value
			}
		}

		in, errs := p.resolve(tokens, lineno)
		if in == nil {
			halt(errs...)
			return
		}

		prog.Instructions = append(prog.Instructions, in)
	}

	return
}

// split applies the separator rule to the working text.
func (p *Parser) split(line string) (tokens []string) {
	capture := p.Settings.Separator.NumSubexp() > 0
	for _, match := range p.Settings.Separator.FindAllStringSubmatch(line, -1) {
		if capture {
			tokens = append(tokens, match[1])
		} else {
			tokens = append(tokens, match[0])
		}
	}

	return
}

// equate records a ".equ NAME VALUE" directive.
func (p *Parser) equate(tokens []string) (err error) {
	if len(tokens) != 3 {
		return ErrEquateSyntax
	}
	if _, ok := p.equates[tokens[1]]; ok {
		return ErrEquateDuplicate
	}

	p.equates[tokens[1]] = tokens[2]
	return
}

// resolve tries every definition sharing the mnemonic, in registration
// order. The first successful parse wins. With no successful parse the
// returned errors are either the single unknown-mnemonic error, or one
// rejection reason per tried overload.
func (p *Parser) resolve(tokens []string, lineno int) (in *Instruction, errs []error) {
	named := false
	for n := range p.Definitions {
		def := &p.Definitions[n]
		if def.Mnemonic != tokens[0] {
			continue
		}
		named = true

		parsed, err := def.tryParse(tokens, p.Settings, lineno)
		if err == nil {
			in = parsed
			return
		}
		errs = append(errs, err)
	}

	if !named {
		errs = []error{ErrUnknownMnemonic(tokens[0])}
	}

	return
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// expand does compile-time $(...) evaluations on the working text.
func (p *Parser) expand(line string, lineno int) (expanded string, err error) {
	p.equates["LINENO"] = strconv.Itoa(lineno)

	expanded = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		expr := str[2 : len(str)-1]
		value, eerr := p.eval(expr)
		if eerr != nil {
			err = &ErrExpression{Expr: expr, Err: eerr}
			return str
		}
		return strconv.FormatInt(value, 10)
	})

	return
}

// eval runs one expression in a starlark thread. Equates and predefines
// that parse as integers are visible as globals.
func (p *Parser) eval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	for key, str := range p.equates {
		v, verr := strconv.ParseInt(str, 0, 64)
		if verr != nil {
			// Non-integer equates may be registers or other text.
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrExpressionValue
		return
	}
	rcInt, ok := rc.(starlark.Int)
	if !ok {
		err = ErrExpressionValue
		return
	}
	value, ok = rcInt.Int64()
	if !ok {
		err = ErrExpressionValue
		return
	}

	return
}
