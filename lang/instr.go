package lang

import "github.com/mousetail/painrose-go/value"

// IPBehaviour is the per-opcode directive that, composed with the current
// direction, determines the direction of the next edge-walk.
type IPBehaviour int

const (
	Straight IPBehaviour = iota
	Left
	Right
	Back
)

// evaluate runs one opcode against the stack in Normal mode, returning the
// mode to continue in and the resulting IP behaviour. Every opcode is
// total: stack underflow, division by zero and out-of-range array access
// all have defined, non-error results.
func evaluate(op Opcode, m Mode, stack *value.Stack) (Mode, IPBehaviour) {
	behaviour := Straight
	next := m

	switch op {
	case TurnLeft:
		behaviour = Left
	case TurnRight:
		behaviour = Right
	case TurnAround:
		behaviour = Back
	case TurnLeftIf:
		if stack.PopOrDefault().Truthy() {
			behaviour = Left
		}
	case TurnRightIf:
		if stack.PopOrDefault().Truthy() {
			behaviour = Right
		}

	case Less:
		a, b := stack.PopTwoOrDefault()
		stack.Push(boolValue(value.Greater(a, b)))
	case Greater:
		a, b := stack.PopTwoOrDefault()
		stack.Push(boolValue(value.Less(a, b)))
	case Equal:
		a, b := stack.PopTwoOrDefault()
		stack.Push(boolValue(value.Equal(a, b)))

	case Duplicate:
		a := stack.PopOrDefault()
		stack.Push(a)
		stack.Push(a)
	case DuplicateTwo:
		a, b := stack.PopTwoOrDefault()
		stack.Push(b)
		stack.Push(a)
		stack.Push(b)
		stack.Push(a)
	case PopTop:
		stack.PopOrDefault()
	case Swap:
		a, b := stack.PopTwoOrDefault()
		stack.Push(a)
		stack.Push(b)
	case RotateLeft:
		stack.RotateLeft()
	case RotateRight:
		stack.RotateRight()
	case DuplicateN:
		n := stack.PopOrDefault()
		stack.DuplicateN(n)
	case CopyNth:
		n := stack.PopOrDefault()
		stack.Push(stack.CopyNth(n))
	case UnwrapArray:
		stack.UnwrapArray(stack.PopOrDefault())
	case WrapArray:
		n := stack.PopOrDefault()
		stack.Push(stack.WrapArray(n))

	case StartCharString:
		next = charStringMode()
	case StartArrayString:
		next = arrayStringMode()
	case StartCharacter:
		next = Mode{Kind: CharMode}

	case Const0, Const1, Const2, Const3, Const4, Const5, Const6, Const7, Const8, Const9:
		stack.Push(value.Number(constValues[op]))

	case Add:
		a, b := stack.PopTwoOrDefault()
		stack.Push(value.Add(a, b))
	case Subtract:
		a, b := stack.PopTwoOrDefault()
		stack.Push(value.Sub(a, b))
	case Multiply:
		a, b := stack.PopTwoOrDefault()
		stack.Push(value.Mul(a, b))
	case Divide:
		a, b := stack.PopTwoOrDefault()
		stack.Push(value.Div(a, b))
	case Negate:
		a := stack.PopOrDefault()
		stack.Push(value.Negate(a))

	case GetArrayN:
		n, arr := stack.PopTwoOrDefault()
		stack.Push(getArrayN(arr, n))
	case PutArrayN:
		v, n, arr := stack.PopOrDefault(), stack.PopOrDefault(), stack.PopOrDefault()
		stack.Push(putArrayN(arr, n, v))

	case Quit:
		next = Mode{Kind: Stopped}
	}

	return next, behaviour
}

func boolValue(b bool) value.Value {
	if b {
		return value.Number(1)
	}
	return value.Number(0)
}

// getArrayN implements GetArrayN: a Number array is a no-op (returned
// unchanged); otherwise n.map_leaves(k -> array[k]), defaulting out-of-range
// reads to Number(0) to keep the operator total.
func getArrayN(arr, n value.Value) value.Value {
	if !arr.IsArray() {
		return arr
	}
	if n.IsArray() {
		out := make([]value.Value, n.Len())
		for i, e := range n.Elements() {
			out[i] = getArrayN(arr, e)
		}
		return value.Array(out)
	}
	k := int(n.AsNumber())
	elems := arr.Elements()
	if k < 0 || k >= len(elems) {
		return value.Number(0)
	}
	return elems[k]
}

// putArrayN implements PutArrayN: write v at every leaf index named by n,
// returning the updated array. A Number array is returned unchanged;
// out-of-range indices are ignored rather than erroring.
func putArrayN(arr, n, v value.Value) value.Value {
	if !arr.IsArray() {
		return arr
	}
	elems := arr.Elements()
	if n.IsArray() {
		for _, e := range n.Elements() {
			arr = putArrayN(arr, e, v)
			elems = arr.Elements()
		}
		return value.Array(elems)
	}
	k := int(n.AsNumber())
	if k < 0 || k >= len(elems) {
		return value.Array(elems)
	}
	elems[k] = v
	return value.Array(elems)
}
