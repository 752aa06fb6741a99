// generic stack
package collections

type Stack[T any] []T

// IsEmpty checks if the stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return len(*s) == 0
}

// Push a new element onto the stack
func (s *Stack[T]) Push(x T) {
	*s = append(*s, x)
}

// Pop: remove and return top element of stack, return false if stack is empty
func (s *Stack[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}

	i := len(*s) - 1
	x := (*s)[i]
	*s = (*s)[:i]

	return x, true
}

// Peek: return top element of stack, return false if stack is empty
func (s *Stack[T]) Peek() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}

	i := len(*s) - 1
	x := (*s)[i]

	return x, true
}

// Len returns the number of elements on the stack
func (s *Stack[T]) Len() int {
	return len(*s)
}
