package coco

import (
	"fmt"
	"testing"
)

// variants returns one object of each value variant.
func variants(vm *VM) map[string]Object {
	s := vm.NewStr("abc")
	l := vm.NewList(vm.NewInt(1))
	f := vm.NewFunList(vm.NewInt(1))
	return map[string]Object{
		"None":         vm.NewNone(),
		"Bool":         vm.NewBool(true),
		"Int":          vm.NewInt(1),
		"Float":        vm.NewFloat(1.5),
		"Str":          s,
		"List":         l,
		"StrIterator":  vm.NewStrIterator(s),
		"ListIterator": vm.NewListIterator(l),
		"FunList":      f,
		"FunListIter":  vm.NewFunListIterator(f),
		"Exception":    vm.NewExceptionf(KindException, "x"),
		"Type":         vm.Type(IntType),
	}
}

func TestVariantOps(t *testing.T) {
	vm := TestingVM()
	numeric := []Op{OpStr, OpType, OpAdd, OpSub, OpMul, OpFloorDiv, OpTrueDiv, OpEq, OpGt, OpGe, OpLe, OpInt, OpFloat, OpBool}
	iter := []Op{OpStr, OpType, OpIter, OpNext}
	want := map[string][]Op{
		"None":         {OpStr, OpType, OpBool, OpEq},
		"Bool":         numeric,
		"Int":          numeric,
		"Float":        numeric,
		"Str":          {OpStr, OpType, OpAdd, OpEq, OpLen, OpGetItem, OpIter, OpList, OpFunList, OpBool, OpInt, OpFloat, OpSplit, OpUpper, OpLower},
		"List":         {OpStr, OpType, OpLen, OpGetItem, OpIter, OpList, OpFunList, OpBool, OpAdd, OpEq, OpAppend},
		"StrIterator":  iter,
		"ListIterator": iter,
		"FunList":      {OpStr, OpType, OpLen, OpGetItem, OpIter, OpList, OpFunList, OpBool, OpEq},
		"FunListIter":  iter,
		"Exception":    {OpStr, OpType, OpExcMatch},
		"Type":         {OpStr, OpType, OpCall},
	}
	for name, o := range variants(vm) {
		t.Run(name, func(t *testing.T) {
			CheckOps(t, o, want[name])
		})
	}
}

// TestIllegalOperation tests that every variant rejects every operation it
// does not support with an exception naming the type and the operation.
func TestIllegalOperation(t *testing.T) {
	vm := TestingVM()
	for name, o := range variants(vm) {
		for op := Op(0); op < numOps; op++ {
			if o.Supports(op) {
				continue
			}
			t.Run(fmt.Sprintf("%s/%s", name, op), func(t *testing.T) {
				_, err := o.Invoke(op)
				CheckException(t, err, KindIllegalOperation, "'"+o.Type().Name+"'", "'"+op.String()+"'")
			})
		}
	}
}

// TestArity tests that arity-checked operations report both counts.
func TestArity(t *testing.T) {
	vm := TestingVM()
	cases := []struct {
		name string
		o    Object
		op   Op
		args []Object
		want string
	}{
		{"IntAddNone", vm.NewInt(1), OpAdd, nil, "expected 1 arguments, got 0"},
		{"IntAddTwo", vm.NewInt(1), OpAdd, []Object{vm.NewInt(1), vm.NewInt(2)}, "expected 1 arguments, got 2"},
		{"FloatBool", vm.NewFloat(1), OpBool, []Object{vm.NewInt(1)}, "expected 0 arguments, got 1"},
		{"StrLen", vm.NewStr("a"), OpLen, []Object{vm.NewInt(1)}, "expected 0 arguments, got 1"},
		{"StrEq", vm.NewStr("a"), OpEq, nil, "expected 1 arguments, got 0"},
		{"StrSplit", vm.NewStr("a"), OpSplit, []Object{vm.NewStr(" "), vm.NewStr(" ")}, "expected at most 1 arguments, got 2"},
		{"StrToStr", vm.NewStr("a"), OpStr, []Object{vm.NewStr("a")}, "expected 0 arguments, got 1"},
		{"ListAppend", vm.NewList(), OpAppend, nil, "expected 1 arguments, got 0"},
		{"ListGetItem", vm.NewList(), OpGetItem, nil, "expected 1 arguments, got 0"},
		{"NoneType", vm.NewNone(), OpType, []Object{vm.NewNone()}, "expected 0 arguments, got 1"},
		{"Match", vm.NewExceptionf(KindException, "x"), OpExcMatch, nil, "expected 1 arguments, got 0"},
		{"Next", vm.NewListIterator(vm.NewList()), OpNext, []Object{vm.NewNone()}, "expected 0 arguments, got 1"},
		{"TypeCall", vm.Type(StrType), OpCall, []Object{vm.NewNone(), vm.NewNone()}, "expected 1 arguments, got 2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.o.Invoke(c.op, c.args...)
			CheckException(t, err, KindWrongArgCount, c.want)
		})
	}
}

// TestCopy tests that copies support the same operations as the original.
func TestCopy(t *testing.T) {
	vm := TestingVM()
	b := vm.NewBool(true)
	n := vm.NewInt(4)
	f := vm.NewFloat(0.25)
	s := vm.NewStr("q")
	cases := []struct {
		name   string
		orig   Object
		copy   Object
		fresh  Object
		render string
	}{
		{"Bool", b, b.Copy(), vm.NewBool(false), "True"},
		{"Int", n, n.Copy(), vm.NewInt(0), "4"},
		{"Float", f, f.Copy(), vm.NewFloat(0), "0.25"},
		{"Str", s, s.Copy(), vm.NewStr(""), "q"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			CheckOps(t, c.copy, c.fresh.Ops())
			if c.copy == c.orig {
				t.Error("copy is the original")
			}
			if c.copy.UniqueID() == c.orig.UniqueID() {
				t.Error("copy shares the original's id")
			}
			if c.copy.String() != c.render {
				t.Errorf("copy renders as %s, expected %s", c.copy, c.render)
			}
			if !equal(c.orig, c.copy) {
				t.Error("copy is not equal to the original")
			}
		})
	}
}

func TestInvokeName(t *testing.T) {
	vm := TestingVM()
	r, err := InvokeName(vm.NewStr("Hello"), "upper")
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "HELLO" {
		t.Errorf("upper: expected HELLO, have %s", r)
	}
	_, err = InvokeName(vm.NewInt(1), "frobnicate")
	CheckException(t, err, KindIllegalOperation, "'int'", "'frobnicate'")
	if op, err := Resolve(vm.NewStr(""), "split"); err != nil || op != OpSplit {
		t.Errorf("Resolve(split) = %v, %v", op, err)
	}
	_, err = Resolve(vm.NewInt(1), "split")
	CheckException(t, err, KindIllegalOperation, "'int' object has no attribute 'split'")
}

func TestOpNames(t *testing.T) {
	for op := Op(0); op < numOps; op++ {
		if r, ok := ParseOp(op.String()); !ok || r != op {
			t.Errorf("ParseOp(%q) = %v, %t", op.String(), r, ok)
		}
	}
	if _, ok := ParseOp("__frob__"); ok {
		t.Error("parsed __frob__")
	}
}

func TestRefCount(t *testing.T) {
	vm := TestingVM()
	o := vm.NewInt(1)
	if o.RefCount() != 0 {
		t.Errorf("new object has %d references", o.RefCount())
	}
	o.IncRef()
	o.IncRef()
	o.DecRef()
	if o.RefCount() != 1 {
		t.Errorf("expected 1 reference, have %d", o.RefCount())
	}
}

func TestUniqueID(t *testing.T) {
	vm := TestingVM()
	seen := make(map[uintptr]bool)
	for i := 0; i < 100; i++ {
		id := vm.NewNone().UniqueID()
		if seen[id] {
			t.Fatalf("id %d reused", id)
		}
		seen[id] = true
	}
}

func BenchmarkInvoke(b *testing.B) {
	vm := TestingVM()
	x, y := vm.NewInt(1), vm.NewInt(2)
	for i := 0; i < b.N; i++ {
		BenchDummy, _ = x.Invoke(OpAdd, y)
	}
}
