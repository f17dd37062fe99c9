package coco

import (
	"math"
	"strconv"
	"strings"
)

// Int is an integer value.
type Int struct {
	Base
	Value int64
}

// NewInt creates an Int with the given value.
func (vm *VM) NewInt(value int64) *Int {
	n := &Int{Value: value}
	n.Init(vm, n, IntType, Methods{
		OpAdd:      vm.binary(n, OpAdd, vm.arith),
		OpSub:      vm.binary(n, OpSub, vm.arith),
		OpMul:      vm.binary(n, OpMul, vm.arith),
		OpFloorDiv: vm.binary(n, OpFloorDiv, vm.arith),
		OpTrueDiv:  vm.binary(n, OpTrueDiv, vm.arith),
		OpEq:       vm.binary(n, OpEq, vm.cmp),
		OpGt:       vm.binary(n, OpGt, vm.cmp),
		OpGe:       vm.binary(n, OpGe, vm.cmp),
		OpLe:       vm.binary(n, OpLe, vm.cmp),
		OpInt:      vm.unary(func() (Object, error) { return vm.NewInt(n.Value), nil }),
		OpFloat:    vm.unary(func() (Object, error) { return vm.NewFloat(float64(n.Value)), nil }),
		OpBool:     vm.unary(func() (Object, error) { return vm.NewBool(n.Value != 0), nil }),
	})
	return n
}

// Copy creates a new Int with the same value.
func (n *Int) Copy() *Int {
	return n.vm.NewInt(n.Value)
}

// String returns the decimal representation of the integer.
func (n *Int) String() string {
	return strconv.FormatInt(n.Value, 10)
}

// Float is a floating-point value.
type Float struct {
	Base
	Value float64
}

// NewFloat creates a Float with the given value.
func (vm *VM) NewFloat(value float64) *Float {
	f := &Float{Value: value}
	f.Init(vm, f, FloatType, Methods{
		OpAdd:      vm.binary(f, OpAdd, vm.arith),
		OpSub:      vm.binary(f, OpSub, vm.arith),
		OpMul:      vm.binary(f, OpMul, vm.arith),
		OpFloorDiv: vm.binary(f, OpFloorDiv, vm.arith),
		OpTrueDiv:  vm.binary(f, OpTrueDiv, vm.arith),
		OpEq:       vm.binary(f, OpEq, vm.cmp),
		OpGt:       vm.binary(f, OpGt, vm.cmp),
		OpGe:       vm.binary(f, OpGe, vm.cmp),
		OpLe:       vm.binary(f, OpLe, vm.cmp),
		OpInt:      vm.unary(func() (Object, error) { return vm.NewInt(int64(f.Value)), nil }),
		OpFloat:    vm.unary(func() (Object, error) { return vm.NewFloat(f.Value), nil }),
		OpBool:     vm.unary(func() (Object, error) { return vm.NewBool(f.Value != 0), nil }),
	})
	return f
}

// Copy creates a new Float with the same value.
func (f *Float) Copy() *Float {
	return f.vm.NewFloat(f.Value)
}

// String formats the float the way Python does: integral values keep a
// trailing .0, and infinities and NaN are spelled inf and nan. Values whose
// decimal exponent is below -4 or at least 16 use exponent notation.
func (f *Float) String() string {
	switch {
	case math.IsInf(f.Value, 1):
		return "inf"
	case math.IsInf(f.Value, -1):
		return "-inf"
	case math.IsNaN(f.Value):
		return "nan"
	}
	s := strconv.FormatFloat(f.Value, 'e', -1, 64)
	exp, _ := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	if f.Value != 0 && (exp < -4 || exp >= 16) {
		return s
	}
	s = strconv.FormatFloat(f.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
