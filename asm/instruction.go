package asm

import (
	"github.com/QuickWrite/luasm/mem"
)

// Machine is the execution context handed to every Executor. It is
// implemented by the vm package's Interpreter.
type Machine interface {
	// Jump moves the program counter to a label's position. An unknown
	// label is returned as an error, not raised.
	Jump(label string) error
	// JumpTo moves the program counter to a numeric position. Positions
	// outside [0, parsed lines] are a fatal caller bug and panic.
	JumpTo(pos int)
	// Position is the current program counter (next slot to fetch).
	Position() int
	Stack() *mem.Stack
	Heap() mem.Heap
}

// Executor implements the runtime effect of one instruction. Returning
// false aborts the run; an executor that calls Jump overrides the default
// advance to the next slot.
type Executor func(in *Instruction, m Machine) bool

// missingExecutor is bound when a definition is registered without an
// executor. Reaching it at runtime is a configuration error.
func missingExecutor(in *Instruction, m Machine) bool {
	panic(f("luasm: instruction %q at line %d has no executor", in.Mnemonic, in.LineNo))
}

// Definition describes one form of an instruction: its mnemonic, the
// ordered operand types expected after it, and the executor bound to
// every instruction it parses. Definitions sharing a mnemonic are
// overloads, tried in registration order.
type Definition struct {
	Mnemonic string
	Operands []string
	Execute  Executor
}

// Define builds an instruction definition. A nil executor binds a
// placeholder that panics when invoked.
func Define(mnemonic string, operands []string, execute Executor) (def Definition) {
	if execute == nil {
		execute = missingExecutor
	}

	def = Definition{
		Mnemonic: mnemonic,
		Operands: operands,
		Execute:  execute,
	}

	return
}

// Instruction is a single parsed source line bound to its executor. The
// Args hold the decoded operand values, one per declared operand type.
type Instruction struct {
	Mnemonic string
	Args     []string
	LineNo   int
	Execute  Executor
}

// tryParse matches the raw tokens (mnemonic first) against this
// definition. The operand count must equal the declared count, and each
// token must match its type's syntax rule. An operand type with no rule
// in the settings is a configuration error and panics.
func (def *Definition) tryParse(tokens []string, set *Settings, lineno int) (in *Instruction, err error) {
	args := tokens[1:]
	if len(args) != len(def.Operands) {
		err = &ErrArity{Mnemonic: def.Mnemonic, Want: len(def.Operands), Got: len(args)}
		return
	}

	values := make([]string, len(args))
	for n, typ := range def.Operands {
		rule, ok := set.Syntax[typ]
		if !ok {
			panic(f("luasm: no syntax rule for operand type %q", typ))
		}

		match := rule.FindStringSubmatch(args[n])
		if match == nil {
			err = &ErrOperand{Token: args[n], Type: typ}
			return
		}

		if rule.NumSubexp() > 0 {
			values[n] = match[1]
		} else {
			values[n] = match[0]
		}
	}

	in = &Instruction{
		Mnemonic: def.Mnemonic,
		Args:     values,
		LineNo:   lineno,
		Execute:  def.Execute,
	}

	return
}
