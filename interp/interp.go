// Package interp executes CoCo bytecode on the coco runtime.
//
// An Interpreter holds the global namespace of one program. Run loads the
// program's functions into the globals and calls main. Each call runs in its
// own Frame, which the interpreter pushes onto the VM's call stack for the
// duration of the call. Exceptions propagate as errors; each frame they
// leave is appended to their traceback.
package interp

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/zephyrtronium/coco"
	"github.com/zephyrtronium/coco/code"
)

var log = commonlog.GetLogger("coco.interp")

// ErrNoMain is returned by Run when the program has no main function.
var ErrNoMain = errors.New("Error: No main() function found. A main() is required in CoCo VM programs.")

// Interpreter executes programs on a VM.
type Interpreter struct {
	// Globals is the global namespace.
	Globals map[string]coco.Object
	// Stdout is where print writes.
	Stdout io.Writer

	vm *coco.VM
	// ctx is the context of the Run in progress.
	ctx context.Context
}

// New creates an interpreter whose globals hold the built-in functions and
// the constructible types. If out is nil, print writes to os.Stdout.
func New(vm *coco.VM, out io.Writer) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	it := &Interpreter{
		Globals: make(map[string]coco.Object),
		Stdout:  out,
		vm:      vm,
	}
	for _, id := range []coco.TypeID{coco.TypeType, coco.BoolType, coco.IntType, coco.FloatType, coco.StrType, coco.ListType, coco.FunListType, coco.ExceptionType} {
		t := vm.Type(id)
		it.Globals[t.Name] = t
	}
	it.Globals["print"] = it.NewBuiltin("print", it.print)
	it.Globals["len"] = it.NewBuiltin("len", it.unaryBuiltin(coco.OpLen))
	it.Globals["iter"] = it.NewBuiltin("iter", it.unaryBuiltin(coco.OpIter))
	return it
}

// VM returns the interpreter's runtime.
func (it *Interpreter) VM() *coco.VM {
	return it.vm
}

// Load creates a function object for each code unit of p and binds it in the
// globals under its name.
func (it *Interpreter) Load(p *code.Program) error {
	for _, c := range p.Functions {
		f, err := it.NewFunction(c)
		if err != nil {
			return err
		}
		it.Globals[c.FuncName] = f
	}
	return nil
}

// Run loads p and calls its main function. Cancelling ctx interrupts the
// program with a fault; if the cause of the cancellation is a *coco.Fault,
// that is the fault raised.
func (it *Interpreter) Run(ctx context.Context, p *code.Program) (coco.Object, error) {
	if err := it.Load(p); err != nil {
		return nil, err
	}
	main, ok := it.Globals["main"].(*Function)
	if !ok {
		return nil, ErrNoMain
	}
	log.Infof("running %d functions", len(p.Functions))
	it.ctx = ctx
	defer func() { it.ctx = nil }()
	return main.Invoke(coco.OpCall)
}

func (it *Interpreter) context() context.Context {
	if it.ctx == nil {
		return context.Background()
	}
	return it.ctx
}

// call runs fn in a new frame.
func (it *Interpreter) call(fn *Function, args []coco.Object) (coco.Object, error) {
	fr := newFrame(fn, args)
	if err := it.vm.PushFrame(fr); err != nil {
		return nil, err
	}
	log.Debugf("call %s at depth %d", fn.Code.FuncName, it.vm.Depth())
	r, err := it.exec(fr)
	// A panic skips the pop so that the fault report sees the frame.
	it.vm.PopFrame()
	return r, err
}

func (it *Interpreter) print(args []coco.Object) (coco.Object, error) {
	s := make([]string, len(args))
	for i, arg := range args {
		s[i] = arg.String()
	}
	if _, err := io.WriteString(it.Stdout, strings.Join(s, " ")+"\n"); err != nil {
		return nil, it.vm.NewExceptionf(coco.KindException, "IOError: %v", err)
	}
	return it.vm.NewNone(), nil
}

func (it *Interpreter) unaryBuiltin(op coco.Op) coco.Method {
	return func(args []coco.Object) (coco.Object, error) {
		if err := it.vm.CheckArgs(args, 1); err != nil {
			return nil, err
		}
		return args[0].Invoke(op)
	}
}
