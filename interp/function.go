package interp

import (
	"fmt"

	"github.com/zephyrtronium/coco"
	"github.com/zephyrtronium/coco/code"
)

// Function is a user-defined function: a code unit and its constants.
type Function struct {
	coco.Base
	Code *code.Code

	it     *Interpreter
	consts []coco.Object
}

// NewFunction creates a function object for c.
func (it *Interpreter) NewFunction(c *code.Code) (*Function, error) {
	f := &Function{Code: c, it: it, consts: make([]coco.Object, len(c.Constants))}
	for i, k := range c.Constants {
		o, err := it.vm.FromGo(k)
		if err != nil {
			return nil, fmt.Errorf("%s: constant %d: %w", c.FuncName, i, err)
		}
		f.consts[i] = o
	}
	f.Init(it.vm, f, coco.FunctionType, coco.Methods{coco.OpCall: f.call})
	return f, nil
}

// String describes the function.
func (f *Function) String() string {
	return "<function " + f.Code.FuncName + ">"
}

func (f *Function) call(args []coco.Object) (coco.Object, error) {
	if err := f.it.vm.CheckArgs(args, f.Code.ArgCount); err != nil {
		return nil, err
	}
	return f.it.call(f, args)
}

// Builtin is a function implemented in Go, including methods bound to their
// receivers by LOAD_ATTR.
type Builtin struct {
	coco.Base
	name string
}

// NewBuiltin creates a built-in function with the given name.
func (it *Interpreter) NewBuiltin(name string, fn coco.Method) *Builtin {
	b := &Builtin{name: name}
	b.Init(it.vm, b, coco.BuiltinType, coco.Methods{coco.OpCall: fn})
	return b
}

// String describes the built-in.
func (b *Builtin) String() string {
	return "<built-in function " + b.name + ">"
}

// bind creates a built-in which invokes the operation named name on recv.
// Binding fails if recv does not support the operation.
func (it *Interpreter) bind(recv coco.Object, name string) (*Builtin, error) {
	op, err := coco.Resolve(recv, name)
	if err != nil {
		return nil, err
	}
	b := it.NewBuiltin(name, func(args []coco.Object) (coco.Object, error) {
		return recv.Invoke(op, args...)
	})
	b.name = fmt.Sprintf("%s of %s object", name, recv.Type().Name)
	return b, nil
}
