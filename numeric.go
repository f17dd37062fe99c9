package coco

import (
	"math"

	"golang.org/x/exp/constraints"
)

// number is the payload of a numeric operand. Bools count as integers.
type number struct {
	i       int64
	f       float64
	isFloat bool
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// numberOf extracts the numeric payload of o, if it has one.
func numberOf(o Object) (number, bool) {
	switch x := o.(type) {
	case *Int:
		return number{i: x.Value}, true
	case *Float:
		return number{f: x.Value, isFloat: true}, true
	case *Bool:
		if x.Value {
			return number{i: 1}, true
		}
		return number{}, true
	}
	return number{}, false
}

func arithmetic[T constraints.Integer | constraints.Float](op Op, a, b T) T {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	}
	panic("coco: arithmetic on " + op.String())
}

func compare[T constraints.Integer | constraints.Float](op Op, a, b T) bool {
	switch op {
	case OpEq:
		return a == b
	case OpGt:
		return a > b
	case OpGe:
		return a >= b
	case OpLe:
		return a <= b
	}
	panic("coco: comparison " + op.String())
}

// arith applies a binary arithmetic operation to numeric operands. The result
// is a Float if either operand is or if op is true division.
func (vm *VM) arith(op Op, x, y Object) (Object, error) {
	a, aok := numberOf(x)
	b, bok := numberOf(y)
	if !aok || !bok {
		return nil, vm.NewExceptionf(KindIllegalOperation, "TypeError: unsupported operand type(s) for %s: '%s' and '%s'", op.symbol(), x.Type().Name, y.Type().Name)
	}
	if a.isFloat || b.isFloat || op == OpTrueDiv {
		l, r := a.float(), b.float()
		switch op {
		case OpFloorDiv, OpTrueDiv:
			if r == 0 {
				if a.isFloat || b.isFloat {
					return nil, vm.NewExceptionf(KindIllegalOperation, "ZeroDivisionError: float division by zero")
				}
				return nil, vm.NewExceptionf(KindIllegalOperation, "ZeroDivisionError: division by zero")
			}
			if op == OpFloorDiv {
				return vm.NewFloat(math.Floor(l / r)), nil
			}
			return vm.NewFloat(l / r), nil
		}
		return vm.NewFloat(arithmetic(op, l, r)), nil
	}
	if op == OpFloorDiv {
		if b.i == 0 {
			return nil, vm.NewExceptionf(KindIllegalOperation, "ZeroDivisionError: integer division or modulo by zero")
		}
		q := a.i / b.i
		if a.i%b.i != 0 && (a.i < 0) != (b.i < 0) {
			q--
		}
		return vm.NewInt(q), nil
	}
	return vm.NewInt(arithmetic(op, a.i, b.i)), nil
}

// cmp applies a comparison to numeric operands. Equality between a number and
// a non-number is false; ordering them is an error.
func (vm *VM) cmp(op Op, x, y Object) (Object, error) {
	a, aok := numberOf(x)
	b, bok := numberOf(y)
	if !aok || !bok {
		if op == OpEq {
			return vm.NewBool(false), nil
		}
		return nil, vm.NewExceptionf(KindIllegalOperation, "TypeError: '%s' not supported between instances of '%s' and '%s'", op.symbol(), x.Type().Name, y.Type().Name)
	}
	if a.isFloat || b.isFloat {
		return vm.NewBool(compare(op, a.float(), b.float())), nil
	}
	return vm.NewBool(compare(op, a.i, b.i)), nil
}

// binary adapts a binary numeric operation to a Method on self.
func (vm *VM) binary(self Object, op Op, f func(Op, Object, Object) (Object, error)) Method {
	return func(args []Object) (Object, error) {
		if err := vm.CheckArgs(args, 1); err != nil {
			return nil, err
		}
		return f(op, self, args[0])
	}
}

// unary adapts a conversion to a Method taking no arguments.
func (vm *VM) unary(f func() (Object, error)) Method {
	return func(args []Object) (Object, error) {
		if err := vm.CheckArgs(args, 0); err != nil {
			return nil, err
		}
		return f()
	}
}
