package mem

// Stack is a LIFO stack of arbitrary values with no capacity limit.
// Positions are 1-indexed from the bottom.
type Stack struct {
	Data []any
}

func (s *Stack) Push(value any) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value any, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Peek() (value any, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// Get reads the value at a 1-based position from the bottom of the stack.
// Positions outside [1, Size()] return ok == false.
func (s *Stack) Get(index int) (value any, ok bool) {
	if index < 1 || index > len(s.Data) {
		return
	}

	return s.Data[index-1], true
}

func (s *Stack) Size() int {
	return len(s.Data)
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
