// Package luasm is a configurable framework for line-oriented
// assembly-like languages: the caller supplies an instruction set and
// optional tokenizing settings, and luasm parses source text into a
// program and steps an interpreter through it against a stack/heap
// memory model.
package luasm

import (
	"github.com/QuickWrite/luasm/asm"
	"github.com/QuickWrite/luasm/mem"
	"github.com/QuickWrite/luasm/vm"
)

// Public surface re-exports, so simple callers only import luasm.
type (
	Definition  = asm.Definition
	Instruction = asm.Instruction
	Executor    = asm.Executor
	Machine     = asm.Machine
	Settings    = asm.Settings
	Source      = asm.Source
	Program     = asm.Program
	Memory      = mem.Memory
	Interpreter = vm.Interpreter
)

// Define builds an instruction definition. A nil executor binds a
// placeholder that panics when invoked.
func Define(mnemonic string, operands []string, execute Executor) Definition {
	return asm.Define(mnemonic, operands, execute)
}

// Runner ties an instruction set and resolved settings together for
// repeated parse and execute calls.
type Runner struct {
	parser *asm.Parser
}

// New builds a runner. Settings overrides may be nil; unset fields fall
// back to the compiled-in defaults.
func New(defs []Definition, set *Settings) (r *Runner) {
	r = &Runner{
		parser: asm.NewParser(defs, set),
	}

	return
}

// Predefine defines a value visible to $() expressions in every parse.
func (r *Runner) Predefine(name string, value string) {
	r.parser.Predefine(name, value)
}

// SourceFromString builds a line source over in-memory text, using the
// runner's comment rule.
func (r *Runner) SourceFromString(text string) Source {
	return asm.NewSource(text, r.parser.Settings)
}

// SourceFromFile reads a whole file into memory and tokenizes it like a
// string source. An unreadable file yields *asm.ErrSourceUnavailable.
func (r *Runner) SourceFromFile(path string) (Source, error) {
	return asm.NewFileSource(path, r.parser.Settings)
}

// Parse consumes the source into a program. On failure the error is an
// *asm.ErrParse and the returned program holds whatever was accumulated
// before the halt, for diagnostics only.
func (r *Runner) Parse(src Source) (*Program, error) {
	return r.parser.Parse(src)
}

// Interpreter builds an interpreter over a parsed program. A nil memory
// gets a fresh stack and heap.
func (r *Runner) Interpreter(prog *Program, memory *Memory) *Interpreter {
	return vm.New(prog, memory)
}
