package stack

// Stack is a last-in first-out collection of values of type T.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	values []T
}

// New returns an empty stack with room for capacity values before growing.
// A non-positive capacity yields the zero-value stack.
func New[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		return &Stack[T]{}
	}

	return &Stack[T]{values: make([]T, 0, capacity)}
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.values = append(s.values, v)
}

// Pop removes and returns the top value.
// ok is false when the stack is empty.
func (s *Stack[T]) Pop() (top T, ok bool) {
	n := len(s.values)
	if n == 0 {
		return top, false
	}
	top = s.values[n-1]
	s.values = s.values[:n-1]

	return top, true
}

// Peek returns the top value without removing it.
// ok is false when the stack is empty.
func (s *Stack[T]) Peek() (top T, ok bool) {
	n := len(s.values)
	if n == 0 {
		return top, false
	}

	return s.values[n-1], true
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int { return len(s.values) }

// Empty reports whether the stack holds no values.
func (s *Stack[T]) Empty() bool { return len(s.values) == 0 }

// Reset drops all values, keeping the allocated capacity.
func (s *Stack[T]) Reset() {
	s.values = s.values[:0]
}
