package asm

import (
	"errors"
	"strings"

	"github.com/QuickWrite/luasm/translate"
)

var f = translate.From

var (
	// Directive errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))

	// Expression errors
	ErrExpressionValue = errors.New(f("expression result is not an integer"))
)

// ErrDuplicateLabel reports a label name defined twice in one source.
type ErrDuplicateLabel string

func (err ErrDuplicateLabel) Error() string {
	return f("label %q duplicated", string(err))
}

// ErrUnknownMnemonic reports a mnemonic with no registered definition.
type ErrUnknownMnemonic string

func (err ErrUnknownMnemonic) Error() string {
	return f("no instruction named %v", string(err))
}

// ErrArity reports an operand count mismatch against one definition.
type ErrArity struct {
	Mnemonic string
	Want     int
	Got      int
}

func (err *ErrArity) Error() string {
	return f("%v expects %d operands, got %d", err.Mnemonic, err.Want, err.Got)
}

// ErrOperand reports a token that failed its operand-type matching rule.
type ErrOperand struct {
	Token string
	Type  string
}

func (err *ErrOperand) Error() string {
	return f("%q does not match operand type %q", err.Token, err.Type)
}

// ErrExpression reports a $(...) evaluation failure.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// ErrParse is the terminal parse error: the line number and text at which
// parsing halted, plus the reason list. The list holds one entry per
// rejected overload when several definitions share the mnemonic.
type ErrParse struct {
	LineNo int
	Line   string
	Errs   []error
}

func (err *ErrParse) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, strings.Join(err.Messages(), "; "))
}

func (err *ErrParse) Unwrap() []error {
	return err.Errs
}

// Messages returns the reason list as plain strings.
func (err *ErrParse) Messages() (msgs []string) {
	msgs = make([]string, len(err.Errs))
	for n, e := range err.Errs {
		msgs[n] = e.Error()
	}
	return
}

// ErrSourceUnavailable reports a file-backed line source that could not
// be read.
type ErrSourceUnavailable struct {
	Path string
	Err  error
}

func (err *ErrSourceUnavailable) Error() string {
	return f("source %v unavailable: %v", err.Path, err.Err)
}

func (err *ErrSourceUnavailable) Unwrap() error {
	return err.Err
}
