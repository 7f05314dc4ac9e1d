// Package mem implements the interpreter memory model: a LIFO stack of
// arbitrary values and an open key-value heap. Both are handed to every
// executor callback; the engine itself never interprets their contents.
package mem

// Memory bundles the stack and heap owned by one interpreter.
type Memory struct {
	Stack Stack
	Heap  Heap
}

// New creates an empty memory model.
func New() (m *Memory) {
	m = &Memory{
		Heap: Heap{},
	}

	return
}

// Reset clears the stack and heap.
func (m *Memory) Reset() {
	m.Stack.Reset()
	m.Heap.Reset()
}
