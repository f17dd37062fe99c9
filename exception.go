package coco

import (
	"fmt"
	"io"
)

// Kind is the category of an exception.
type Kind int

// Exception kinds.
const (
	KindException Kind = iota + 1
	KindEmptyStack
	KindParse
	KindIllegalOperation
	KindWrongArgCount
	KindStopIteration
	KindMatch
)

var kindNames = map[Kind]string{
	KindException:        "Exception",
	KindEmptyStack:       "EmptyStackException",
	KindParse:            "ParseException",
	KindIllegalOperation: "IllegalOperationException",
	KindWrongArgCount:    "WrongArgCountException",
	KindStopIteration:    "StopIterationException",
	KindMatch:            "MatchException",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// An Exception is a CoCo exception. It is an Object, so programs can catch
// and inspect it, and an error, so Go code propagates it by returning it.
type Exception struct {
	Base
	// Kind is the exception's category.
	Kind Kind
	// Value is the exception's payload, usually a Str message.
	Value Object

	traceback []Frame
}

// NewException creates an exception with the given kind and payload. A nil
// payload becomes None.
func (vm *VM) NewException(kind Kind, value Object) *Exception {
	if value == nil {
		value = vm.NewNone()
	}
	e := &Exception{Kind: kind, Value: value}
	e.Init(vm, e, ExceptionType, Methods{OpExcMatch: e.match})
	return e
}

// NewExceptionf creates an exception whose payload is a formatted message.
func (vm *VM) NewExceptionf(kind Kind, format string, args ...interface{}) *Exception {
	return vm.NewException(kind, vm.NewStr(fmt.Sprintf(format, args...)))
}

// String returns the rendered payload.
func (e *Exception) String() string {
	return e.Value.String()
}

// Error returns the rendered payload.
func (e *Exception) Error() string {
	return e.Value.String()
}

// AppendFrame records that the exception has propagated out of f. Frames are
// appended innermost first; the engine calls this once for each frame the
// exception unwinds.
func (e *Exception) AppendFrame(f Frame) {
	e.traceback = append(e.traceback, f)
}

// Traceback returns the frames the exception has propagated through,
// innermost first.
func (e *Exception) Traceback() []Frame {
	return append([]Frame(nil), e.traceback...)
}

// WriteTraceback renders each frame of the traceback to w.
func (e *Exception) WriteTraceback(w io.Writer) error {
	for _, f := range e.traceback {
		if err := WriteFrame(w, f); err != nil {
			return err
		}
	}
	return nil
}

// Match reports whether the exception is caught by a handler for arg.
func (e *Exception) Match(arg Object) (bool, error) {
	r, err := e.match([]Object{arg})
	if err != nil {
		return false, err
	}
	return r.(*Bool).Value, nil
}

// match implements __excmatch__. The exception type itself matches every
// exception; another exception matches when the kinds are equal; anything
// else is an error.
func (e *Exception) match(args []Object) (Object, error) {
	vm := e.vm
	if err := vm.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	arg := args[0]
	if Object(e.Type()) == arg {
		return vm.NewBool(true), nil
	}
	if e.Type() != arg.Type() {
		return nil, vm.NewExceptionf(KindIllegalOperation, "TypeError: Exception match type mismatch. Expected Exception Object got %s", arg.String())
	}
	return vm.NewBool(e.Kind == arg.(*Exception).Kind), nil
}
