// Package vm implements the interpreter: a program counter over a parsed
// program, with gap-skipping stepping and label-resolved jumps. All
// instruction semantics live in the executors; the interpreter only
// guarantees each one is invoked with the right decoded instruction at
// the right position.
package vm

import (
	log "github.com/sirupsen/logrus"

	"github.com/QuickWrite/luasm/asm"
	"github.com/QuickWrite/luasm/mem"
)

var _ asm.Machine = (*Interpreter)(nil)

// Interpreter steps through a parsed program. The program is shared and
// read-only; the memory model is exclusively owned unless the caller
// supplied one. Not safe for concurrent use.
type Interpreter struct {
	Program *asm.Program
	Memory  *mem.Memory

	pc int // 1-based position of the next slot to fetch.
}

// New builds an interpreter over a successfully parsed program. A nil
// memory gets a fresh stack and heap.
func New(prog *asm.Program, memory *mem.Memory) (ip *Interpreter) {
	if memory == nil {
		memory = mem.New()
	}

	ip = &Interpreter{
		Program: prog,
		Memory:  memory,
		pc:      1,
	}

	return
}

// Position returns the current program counter.
func (ip *Interpreter) Position() int {
	return ip.pc
}

// Stack returns the stack handed to executor callbacks.
func (ip *Interpreter) Stack() *mem.Stack {
	return &ip.Memory.Stack
}

// Heap returns the heap handed to executor callbacks.
func (ip *Interpreter) Heap() mem.Heap {
	return ip.Memory.Heap
}

// Jump resolves a label through the program's label table and moves the
// program counter there. An unknown label is returned as an error and
// leaves the counter unchanged.
func (ip *Interpreter) Jump(label string) (err error) {
	target, ok := ip.Program.Labels[label]
	if !ok {
		return ErrUnknownLabel(label)
	}

	ip.JumpTo(target)
	return
}

// JumpTo moves the program counter to a numeric position. A position
// outside [0, parsed lines] signals an executor bug, and execution
// cannot continue meaningfully: JumpTo panics.
func (ip *Interpreter) JumpTo(pos int) {
	if pos < 0 || pos > ip.Program.Lines {
		panic(f("luasm: jump target %d outside [0, %d]", pos, ip.Program.Lines))
	}

	ip.pc = pos
}

// Step runs a single fetch-execute cycle. Gap slots are skipped. The
// counter is advanced past the fetched instruction before its executor
// runs, so an executor calling Jump overrides the advance and a
// fall-through executor proceeds to the next slot.
//
// Step returns false once the counter has run past the end of the
// sequence, or whatever signal the executor returned otherwise; an
// executor aborts the run by returning false.
func (ip *Interpreter) Step() bool {
	count := len(ip.Program.Instructions)
	for ip.pc < 1 || (ip.pc <= count && ip.Program.Instructions[ip.pc-1] == nil) {
		ip.pc++
	}

	if ip.pc > count {
		return false
	}

	in := ip.Program.Instructions[ip.pc-1]
	ip.pc++

	log.Debugf("step %v: %v %v", in.LineNo, in.Mnemonic, in.Args)

	return in.Execute(in, ip)
}

// Run steps until the program terminates or an executor aborts.
func (ip *Interpreter) Run() {
	for ip.Step() {
	}
}
