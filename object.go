package coco

import (
	"sort"
	"sync/atomic"
)

// Object is the capability every CoCo value implements.
type Object interface {
	// Type returns the object's Type singleton.
	Type() *Type
	// String renders the object.
	String() string
	// Invoke dispatches op through the object's dispatch table. If the
	// object does not support op, the result is an illegal-operation
	// exception naming the type and the operation.
	Invoke(op Op, args ...Object) (Object, error)
	// Supports reports whether op is in the object's dispatch table.
	Supports(op Op) bool
	// Ops returns the operations the object supports, in Op order.
	Ops() []Op

	IncRef()
	DecRef()
	RefCount() int

	// UniqueID returns an identifier no other object in the process shares.
	UniqueID() uintptr
}

// Method is an implementation of a protocol operation bound to its receiver.
type Method func(args []Object) (Object, error)

// Methods is a dispatch table.
type Methods map[Op]Method

// Base holds the state common to all objects. Every variant embeds a Base and
// calls Init from its constructor.
type Base struct {
	vm      *VM
	typ     *Type
	methods Methods
	refs    int32
	id      uintptr
}

// Init sets up the object's type and dispatch table. self must be the object
// that embeds b. Every object supports OpStr and OpType; methods may replace
// either of them.
func (b *Base) Init(vm *VM, self Object, id TypeID, methods Methods) {
	b.vm = vm
	b.typ = vm.Type(id)
	b.id = nextObject()
	b.methods = make(Methods, len(methods)+2)
	b.methods[OpStr] = func(args []Object) (Object, error) {
		if err := vm.CheckArgs(args, 0); err != nil {
			return nil, err
		}
		return vm.NewStr(self.String()), nil
	}
	b.methods[OpType] = func(args []Object) (Object, error) {
		if err := vm.CheckArgs(args, 0); err != nil {
			return nil, err
		}
		return self.Type(), nil
	}
	for op, m := range methods {
		b.methods[op] = m
	}
}

// VM returns the runtime that owns the object.
func (b *Base) VM() *VM {
	return b.vm
}

// Type returns the object's type.
func (b *Base) Type() *Type {
	return b.typ
}

// Invoke dispatches op through the object's dispatch table.
func (b *Base) Invoke(op Op, args ...Object) (Object, error) {
	m, ok := b.methods[op]
	if !ok {
		return nil, b.vm.noAttribute(b.typ, op.String())
	}
	return m(args)
}

// Supports reports whether op is in the dispatch table.
func (b *Base) Supports(op Op) bool {
	_, ok := b.methods[op]
	return ok
}

// Ops returns the supported operations in Op order.
func (b *Base) Ops() []Op {
	ops := make([]Op, 0, len(b.methods))
	for op := range b.methods {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// IncRef increments the reference count.
func (b *Base) IncRef() {
	b.refs++
}

// DecRef decrements the reference count. Nothing happens when it reaches
// zero; the Go collector owns the memory.
func (b *Base) DecRef() {
	b.refs--
}

// RefCount returns the reference count.
func (b *Base) RefCount() int {
	return int(b.refs)
}

// UniqueID returns the object's unique ID.
func (b *Base) UniqueID() uintptr {
	return b.id
}

// InvokeName dispatches the operation with the given name on o. A name which
// is not an operation at all fails the same way as an unsupported operation.
func InvokeName(o Object, name string, args ...Object) (Object, error) {
	op, ok := ParseOp(name)
	if !ok {
		return nil, vmOf(o).noAttribute(o.Type(), name)
	}
	return o.Invoke(op, args...)
}

// Resolve returns the operation named name if o supports it, and otherwise
// the same exception Invoke would produce.
func Resolve(o Object, name string) (Op, error) {
	op, ok := ParseOp(name)
	if !ok || !o.Supports(op) {
		return 0, vmOf(o).noAttribute(o.Type(), name)
	}
	return op, nil
}

// vmOf finds the runtime that owns o.
func vmOf(o Object) *VM {
	return o.Type().vm
}

// objcounter is the global counter for object IDs. All accesses to this must
// be atomic.
var objcounter uintptr

// nextObject increments the object counter and returns its value as a unique
// ID for a new object.
func nextObject() uintptr {
	return atomic.AddUintptr(&objcounter, 1)
}
