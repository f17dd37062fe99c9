package coco

// Bool is a boolean value.
type Bool struct {
	Base
	Value bool
}

// NewBool creates a Bool with the given value. In arithmetic and comparisons
// a Bool is the Int 0 or 1.
func (vm *VM) NewBool(value bool) *Bool {
	b := &Bool{Value: value}
	b.Init(vm, b, BoolType, Methods{
		OpAdd:      vm.binary(b, OpAdd, vm.arith),
		OpSub:      vm.binary(b, OpSub, vm.arith),
		OpMul:      vm.binary(b, OpMul, vm.arith),
		OpFloorDiv: vm.binary(b, OpFloorDiv, vm.arith),
		OpTrueDiv:  vm.binary(b, OpTrueDiv, vm.arith),
		OpEq:       vm.binary(b, OpEq, vm.cmp),
		OpGt:       vm.binary(b, OpGt, vm.cmp),
		OpGe:       vm.binary(b, OpGe, vm.cmp),
		OpLe:       vm.binary(b, OpLe, vm.cmp),
		OpBool:     vm.unary(func() (Object, error) { return vm.NewBool(b.Value), nil }),
		OpInt:      vm.unary(func() (Object, error) { return vm.NewInt(b.int()), nil }),
		OpFloat:    vm.unary(func() (Object, error) { return vm.NewFloat(float64(b.int())), nil }),
	})
	return b
}

// Copy creates a new Bool with the same value.
func (b *Bool) Copy() *Bool {
	return b.vm.NewBool(b.Value)
}

// String returns True or False.
func (b *Bool) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

func (b *Bool) int() int64 {
	if b.Value {
		return 1
	}
	return 0
}

// None is the null value.
type None struct {
	Base
}

// NewNone creates a None.
func (vm *VM) NewNone() *None {
	n := &None{}
	n.Init(vm, n, NoneType, Methods{
		OpBool: vm.unary(func() (Object, error) { return vm.NewBool(false), nil }),
		OpEq: vm.binary(n, OpEq, func(_ Op, _, y Object) (Object, error) {
			_, ok := y.(*None)
			return vm.NewBool(ok), nil
		}),
	})
	return n
}

// String returns None.
func (n *None) String() string {
	return "None"
}
