package coco

// StrIterator iterates over the characters of a Str.
type StrIterator struct {
	Base
	str *Str
	pos int
}

// NewStrIterator creates an iterator positioned at the start of s.
func (vm *VM) NewStrIterator(s *Str) *StrIterator {
	it := &StrIterator{str: s}
	it.Init(vm, it, StrIteratorType, Methods{
		OpIter: vm.unary(func() (Object, error) { return it, nil }),
		OpNext: vm.unary(it.next),
	})
	return it
}

// String describes the iterator.
func (it *StrIterator) String() string {
	return "<str_iterator object>"
}

// next returns the next character. CharAt raises stop-iteration at the end.
func (it *StrIterator) next() (Object, error) {
	c, err := it.str.CharAt(it.pos)
	if err != nil {
		return nil, err
	}
	it.pos++
	return c, nil
}

// ListIterator iterates over the elements of a List.
type ListIterator struct {
	Base
	list *List
	pos  int
}

// NewListIterator creates an iterator positioned at the start of l.
func (vm *VM) NewListIterator(l *List) *ListIterator {
	it := &ListIterator{list: l}
	it.Init(vm, it, ListIteratorType, Methods{
		OpIter: vm.unary(func() (Object, error) { return it, nil }),
		OpNext: vm.unary(it.next),
	})
	return it
}

// String describes the iterator.
func (it *ListIterator) String() string {
	return "<list_iterator object>"
}

func (it *ListIterator) next() (Object, error) {
	if it.pos >= len(it.list.items) {
		return nil, it.vm.NewExceptionf(KindStopIteration, "Stop Iteration")
	}
	it.pos++
	return it.list.items[it.pos-1], nil
}
