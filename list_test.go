package coco

import (
	"testing"
)

func TestListString(t *testing.T) {
	vm := TestingVM()
	cases := []struct {
		name string
		l    *List
		want string
	}{
		{"Empty", vm.NewList(), "[]"},
		{"Mixed", vm.NewList(vm.NewInt(1), vm.NewStr("a"), vm.NewNone(), vm.NewFloat(2)), "[1, 'a', None, 2.0]"},
		{"Quote", vm.NewList(vm.NewStr("it's")), `['it\'s']`},
		{"Nested", vm.NewList(vm.NewList(vm.NewBool(true)), vm.NewList()), "[[True], []]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if s := c.l.String(); s != c.want {
				t.Errorf("expected %s, have %s", c.want, s)
			}
		})
	}
	t.Run("Self", func(t *testing.T) {
		l := vm.NewList(vm.NewInt(1))
		if _, err := l.Invoke(OpAppend, l); err != nil {
			t.Fatal(err)
		}
		if s := l.String(); s != "[1, [...]]" {
			t.Errorf("expected [1, [...]], have %s", s)
		}
	})
	t.Run("Shared", func(t *testing.T) {
		x := vm.NewList(vm.NewInt(1))
		l := vm.NewList(x, x, vm.NewList(x))
		if s := l.String(); s != "[[1], [1], [[1]]]" {
			t.Errorf("expected [[1], [1], [[1]]], have %s", s)
		}
	})
	t.Run("Mutual", func(t *testing.T) {
		a := vm.NewList()
		b := vm.NewList(a)
		a.Invoke(OpAppend, b)
		if s := a.String(); s != "[[[...]]]" {
			t.Errorf("expected [[[...]]], have %s", s)
		}
	})
}

// TestListEqCycles tests that comparing lists which contain themselves
// terminates.
func TestListEqCycles(t *testing.T) {
	vm := TestingVM()
	cyclic := func(items ...Object) *List {
		l := vm.NewList(items...)
		l.Invoke(OpAppend, l)
		return l
	}
	cases := []struct {
		name string
		a, b *List
		want bool
	}{
		{"Same", cyclic(), cyclic(), true},
		{"SamePrefix", cyclic(vm.NewInt(1)), cyclic(vm.NewFloat(1)), true},
		{"DifferentPrefix", cyclic(vm.NewInt(1)), cyclic(vm.NewInt(2)), false},
		{"DifferentLength", cyclic(), cyclic(vm.NewInt(1)), false},
		{"CycleAndFlat", cyclic(), vm.NewList(vm.NewList()), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := c.a.Invoke(OpEq, c.b)
			if err != nil {
				t.Fatal(err)
			}
			if r.(*Bool).Value != c.want {
				t.Errorf("%v == %v: expected %t", c.a, c.b, c.want)
			}
		})
	}
}

func TestListOps(t *testing.T) {
	vm := TestingVM()
	l := vm.NewList(vm.NewInt(1), vm.NewInt(2), vm.NewInt(3))
	cases := []struct {
		name string
		op   Op
		args []Object
		want Object
	}{
		{"Len", OpLen, nil, vm.NewInt(3)},
		{"First", OpGetItem, []Object{vm.NewInt(0)}, vm.NewInt(1)},
		{"Last", OpGetItem, []Object{vm.NewInt(-1)}, vm.NewInt(3)},
		{"Concat", OpAdd, []Object{vm.NewList(vm.NewInt(4))}, vm.NewList(vm.NewInt(1), vm.NewInt(2), vm.NewInt(3), vm.NewInt(4))},
		{"Eq", OpEq, []Object{vm.NewList(vm.NewInt(1), vm.NewFloat(2), vm.NewInt(3))}, vm.NewBool(true)},
		{"NotEq", OpEq, []Object{vm.NewList(vm.NewInt(1))}, vm.NewBool(false)},
		{"EqStr", OpEq, []Object{vm.NewStr("[1, 2, 3]")}, vm.NewBool(false)},
		{"Bool", OpBool, nil, vm.NewBool(true)},
		{"List", OpList, nil, vm.NewList(vm.NewInt(1), vm.NewInt(2), vm.NewInt(3))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := l.Invoke(c.op, c.args...)
			if err != nil {
				t.Fatal(err)
			}
			if !equal(c.want, r) {
				t.Errorf("expected %v, have %v", c.want, r)
			}
		})
	}
	_, err := l.Invoke(OpGetItem, vm.NewInt(3))
	CheckException(t, err, KindIllegalOperation, "IndexError")
	_, err = l.Invoke(OpGetItem, vm.NewInt(-4))
	CheckException(t, err, KindIllegalOperation, "IndexError")
	_, err = l.Invoke(OpAdd, vm.NewStr("x"))
	CheckException(t, err, KindIllegalOperation, `can only concatenate list (not "str") to list`)
}

func TestListAppend(t *testing.T) {
	vm := TestingVM()
	l := vm.NewList()
	cp, err := l.Invoke(OpList)
	if err != nil {
		t.Fatal(err)
	}
	r, err := l.Invoke(OpAppend, vm.NewStr("x"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*None); !ok {
		t.Errorf("append returned %v", r)
	}
	if l.Len() != 1 {
		t.Errorf("list has %d items after append", l.Len())
	}
	if cp.(*List).Len() != 0 {
		t.Error("append changed a copy")
	}
}

func TestListIterator(t *testing.T) {
	vm := TestingVM()
	l := vm.NewList(vm.NewInt(1), vm.NewNone())
	it, err := l.Invoke(OpIter)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range l.Items() {
		r, err := it.Invoke(OpNext)
		if err != nil {
			t.Fatalf("item %d: %v", i, err)
		}
		if r != want {
			t.Errorf("item %d: expected %v, have %v", i, want, r)
		}
	}
	_, err = it.Invoke(OpNext)
	CheckException(t, err, KindStopIteration, "Stop Iteration")
}
