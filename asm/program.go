package asm

import (
	"iter"
)

// Program is the result of one parse: the instruction sequence, the label
// table, and the count of physical lines consumed.
//
// The sequence holds one slot per consumed source line, so a slot's
// 1-based position equals its line number. A line that emitted no
// instruction (blank, label-only, comment-only, directive) occupies a nil
// slot; the interpreter skips such gaps while stepping.
type Program struct {
	Instructions []*Instruction
	Labels       map[string]int
	Lines        int
}

// At returns the instruction at a 1-based position, or nil for a gap or
// a position outside the sequence.
func (prog *Program) At(pos int) (in *Instruction) {
	if pos < 1 || pos > len(prog.Instructions) {
		return
	}

	return prog.Instructions[pos-1]
}

// Each iterates the real instructions in position order, skipping gaps.
func (prog *Program) Each() iter.Seq2[int, *Instruction] {
	return func(yield func(pos int, in *Instruction) bool) {
		for n, in := range prog.Instructions {
			if in == nil {
				continue
			}
			if !yield(n+1, in) {
				return
			}
		}
	}
}
