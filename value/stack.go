package value

// Stack is the language's value stack. Every operation here is total: a
// pop against an empty stack yields Number(0) rather than an error, so
// stack underflow is never an execution-time failure.
type Stack struct {
	items []Value
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends one value to the top of the stack.
func (s *Stack) Push(v Value) {
	s.items = append(s.items, v)
}

// PushAll appends a sequence of values, in order, to the top of the stack.
func (s *Stack) PushAll(vs []Value) {
	s.items = append(s.items, vs...)
}

// Len reports how many values are on the stack.
func (s *Stack) Len() int {
	return len(s.items)
}

// Snapshot returns a defensive copy of the stack contents, bottom to top.
func (s *Stack) Snapshot() []Value {
	return append([]Value(nil), s.items...)
}

// Drain empties the stack and returns its former contents, bottom to top.
func (s *Stack) Drain() []Value {
	out := s.items
	s.items = nil
	return out
}

// PopOrDefault pops and returns the top value, or Number(0) if the stack
// is empty.
func (s *Stack) PopOrDefault() Value {
	if len(s.items) == 0 {
		return Value{}
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top
}

// PopTwoOrDefault pops the top two values, top first: a, then b. Both
// default to Number(0) if the stack runs out mid-pop.
func (s *Stack) PopTwoOrDefault() (a, b Value) {
	a = s.PopOrDefault()
	b = s.PopOrDefault()
	return a, b
}

// CopyNth implements the 'c' CopyNth instruction's operand resolution:
// if n is a Number(k), it returns a clone of the element k positions below
// the top (0 = the current top), or the default value if k is out of
// range, leaving the stack untouched. If n is an Array, it recurses
// element-wise, one copy per leaf.
func (s *Stack) CopyNth(n Value) Value {
	if n.IsArray() {
		out := make([]Value, n.Len())
		for i, e := range n.Elements() {
			out[i] = s.CopyNth(e)
		}
		return Array(out)
	}
	k := int(n.AsNumber())
	if k < 0 || k >= len(s.items) {
		return Value{}
	}
	return s.items[len(s.items)-1-k]
}

// WrapArray implements 'a' WrapArray: if n is Number(k), pop k items
// (defaulting to zero once the stack runs dry) into a new array in
// bottom-to-top order. If n is an Array, it recurses element-wise,
// wrapping once per leaf.
func (s *Stack) WrapArray(n Value) Value {
	if n.IsArray() {
		out := make([]Value, n.Len())
		for i, e := range n.Elements() {
			out[i] = s.WrapArray(e)
		}
		return Array(out)
	}
	k := int(n.AsNumber())
	if k < 0 {
		k = 0
	}
	items := make([]Value, k)
	for i := k - 1; i >= 0; i-- {
		items[i] = s.PopOrDefault()
	}
	return Array(items)
}

// UnwrapArray implements 'u' UnwrapArray: a Number pushes itself back
// unchanged; an Array pushes its elements in order.
func (s *Stack) UnwrapArray(v Value) {
	if !v.IsArray() {
		s.Push(v)
		return
	}
	s.PushAll(v.Elements())
}

// DuplicateN implements 'd' DuplicateN: given the popped count n,
// duplicate the top n items of what remains. An Array count is
// deliberately a no-op; no recursive reading of it is defined.
func (s *Stack) DuplicateN(n Value) {
	if n.IsArray() {
		return
	}
	k := int(n.AsNumber())
	if k < 0 {
		k = 0
	}
	top := make([]Value, k)
	for i := k - 1; i >= 0; i-- {
		top[i] = s.PopOrDefault()
	}
	s.PushAll(top)
	s.PushAll(top)
}

// RotateLeft moves the bottom item of the stack to the top.
func (s *Stack) RotateLeft() {
	if len(s.items) == 0 {
		return
	}
	first := s.items[0]
	s.items = append(s.items[1:], first)
}

// RotateRight moves the top item of the stack to the bottom.
func (s *Stack) RotateRight() {
	if len(s.items) == 0 {
		return
	}
	last := s.items[len(s.items)-1]
	s.items = append([]Value{last}, s.items[:len(s.items)-1]...)
}
