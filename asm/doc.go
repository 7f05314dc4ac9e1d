// Package asm implements the configurable assembly-language front end:
// line sources, tokenizing settings, instruction definitions with
// pattern-matched operand types, and the single-pass parser producing a
// sparse instruction sequence plus a label table.
//
// The language itself is supplied by the caller: a Settings value
// describes how lines are split and operands are matched, and an ordered
// list of Definition values names each mnemonic, its operand types, and
// the Executor implementing its runtime effect.
package asm
