package coco

import "strings"

// FunList is an immutable singly linked list. Prepending shares the tail, so
// a FunList is never changed after it is built.
type FunList struct {
	Base
	head Object
	// tail is nil exactly for the empty list.
	tail *FunList
}

// NewFunList creates a FunList holding the given items.
func (vm *VM) NewFunList(items ...Object) *FunList {
	l := vm.newFunList(nil, nil)
	for i := len(items) - 1; i >= 0; i-- {
		l = vm.newFunList(items[i], l)
	}
	return l
}

// Cons creates a FunList with head followed by the elements of l.
func (l *FunList) Cons(head Object) *FunList {
	return l.vm.newFunList(head, l)
}

func (vm *VM) newFunList(head Object, tail *FunList) *FunList {
	l := &FunList{head: head, tail: tail}
	l.Init(vm, l, FunListType, Methods{
		OpLen:     vm.unary(func() (Object, error) { return vm.NewInt(int64(l.Len())), nil }),
		OpGetItem: l.getItem,
		OpIter:    vm.unary(func() (Object, error) { return vm.NewFunListIterator(l), nil }),
		OpList:    vm.unary(func() (Object, error) { return vm.NewList(l.elems()...), nil }),
		OpFunList: vm.unary(func() (Object, error) { return l, nil }),
		OpBool:    vm.unary(func() (Object, error) { return vm.NewBool(!l.Empty()), nil }),
		OpEq:      vm.seqEq(l),
	})
	return l
}

// Empty reports whether the list has no elements.
func (l *FunList) Empty() bool {
	return l.tail == nil
}

// Head returns the first element, or nil if the list is empty.
func (l *FunList) Head() Object {
	return l.head
}

// Tail returns the list after the first element. The tail of the empty list
// is itself.
func (l *FunList) Tail() *FunList {
	if l.Empty() {
		return l
	}
	return l.tail
}

// Len returns the number of elements.
func (l *FunList) Len() int {
	n := 0
	for ; !l.Empty(); l = l.tail {
		n++
	}
	return n
}

func (l *FunList) elems() []Object {
	var r []Object
	for ; !l.Empty(); l = l.tail {
		r = append(r, l.head)
	}
	return r
}

// String renders the list the same way as a List.
func (l *FunList) String() string {
	var b strings.Builder
	renderSeq(&b, l, &cycleGuard{})
	return b.String()
}

func (l *FunList) getItem(args []Object) (Object, error) {
	vm := l.vm
	if err := vm.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	n, ok := numberOf(args[0])
	if !ok || n.isFloat {
		return nil, vm.NewExceptionf(KindIllegalOperation, "TypeError: funlist indices must be integers, not %s", args[0].Type().Name)
	}
	i := n.i
	if i < 0 {
		i += int64(l.Len())
	}
	for c := l; i >= 0 && !c.Empty(); c = c.tail {
		if i == 0 {
			return c.head, nil
		}
		i--
	}
	return nil, vm.NewExceptionf(KindIllegalOperation, "IndexError: funlist index out of range")
}

// FunListIterator iterates over the elements of a FunList.
type FunListIterator struct {
	Base
	cur *FunList
}

// NewFunListIterator creates an iterator positioned at the start of l.
func (vm *VM) NewFunListIterator(l *FunList) *FunListIterator {
	it := &FunListIterator{cur: l}
	it.Init(vm, it, FunListIteratorType, Methods{
		OpIter: vm.unary(func() (Object, error) { return it, nil }),
		OpNext: vm.unary(it.next),
	})
	return it
}

// String describes the iterator.
func (it *FunListIterator) String() string {
	return "<funlist_iterator object>"
}

func (it *FunListIterator) next() (Object, error) {
	if it.cur.Empty() {
		return nil, it.vm.NewExceptionf(KindStopIteration, "Stop Iteration")
	}
	v := it.cur.head
	it.cur = it.cur.tail
	return v, nil
}
