package coco

import "strings"

// List is a mutable sequence of objects. Unlike the scalar values, appending
// to a list changes it in place.
type List struct {
	Base
	items []Object
}

// NewList creates a List holding the given items.
func (vm *VM) NewList(items ...Object) *List {
	l := &List{items: append([]Object(nil), items...)}
	l.Init(vm, l, ListType, Methods{
		OpLen:     vm.unary(func() (Object, error) { return vm.NewInt(int64(len(l.items))), nil }),
		OpGetItem: l.getItem,
		OpIter:    vm.unary(func() (Object, error) { return vm.NewListIterator(l), nil }),
		OpList:    vm.unary(func() (Object, error) { return vm.NewList(l.items...), nil }),
		OpFunList: vm.unary(func() (Object, error) { return vm.NewFunList(l.items...), nil }),
		OpBool:    vm.unary(func() (Object, error) { return vm.NewBool(len(l.items) != 0), nil }),
		OpAdd:     l.concat,
		OpEq:      vm.seqEq(l),
		OpAppend:  l.append,
	})
	return l
}

// Items returns a copy of the list's elements.
func (l *List) Items() []Object {
	return append([]Object(nil), l.items...)
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

// String renders the list with its elements in repr form. A list that
// contains itself is shown as [...] where it recurs.
func (l *List) String() string {
	var b strings.Builder
	renderSeq(&b, l, &cycleGuard{})
	return b.String()
}

func (l *List) elems() []Object {
	return l.items
}

func (l *List) getItem(args []Object) (Object, error) {
	vm := l.vm
	if err := vm.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	n, ok := numberOf(args[0])
	if !ok || n.isFloat {
		return nil, vm.NewExceptionf(KindIllegalOperation, "TypeError: list indices must be integers, not %s", args[0].Type().Name)
	}
	i := n.i
	if i < 0 {
		i += int64(len(l.items))
	}
	if i < 0 || i >= int64(len(l.items)) {
		return nil, vm.NewExceptionf(KindIllegalOperation, "IndexError: list index out of range")
	}
	return l.items[i], nil
}

func (l *List) concat(args []Object) (Object, error) {
	vm := l.vm
	if err := vm.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	r, ok := args[0].(*List)
	if !ok {
		return nil, vm.NewExceptionf(KindIllegalOperation, "TypeError: can only concatenate list (not \"%s\") to list", args[0].Type().Name)
	}
	items := make([]Object, 0, len(l.items)+len(r.items))
	items = append(items, l.items...)
	return vm.NewList(append(items, r.items...)...), nil
}

func (l *List) append(args []Object) (Object, error) {
	vm := l.vm
	if err := vm.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	l.items = append(l.items, args[0])
	return vm.NewNone(), nil
}
