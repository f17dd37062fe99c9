package coco

import (
	"fmt"
	"io"
)

// CodeUnit is a compiled function as far as the runtime needs to know it.
type CodeUnit interface {
	// Name returns the function's name.
	Name() string
	// PrettyString renders the code unit as a listing. Each line is prefixed
	// with indent, and instructions are numbered if pc is true.
	PrettyString(indent string, pc bool) string
}

// Frame is one in-progress invocation. Frames belong to the execution engine;
// the runtime only keeps references to them.
type Frame interface {
	// PC returns the index of the next instruction to execute.
	PC() int
	// Code returns the code unit the frame is executing.
	Code() CodeUnit
}

// PushFrame makes f the innermost active frame. If the push would make the
// stack reach the VM's recursion limit, it fails with a call stack overflow
// exception instead, and f does not become active.
func (vm *VM) PushFrame(f Frame) error {
	if len(vm.frames)+1 >= vm.config.RecursionLimit {
		log.Debugf("call stack overflow entering %s at depth %d", f.Code().Name(), len(vm.frames))
		return vm.NewExceptionf(KindIllegalOperation, "Call Stack Overflow.")
	}
	vm.frames = append(vm.frames, f)
	return nil
}

// PopFrame removes and returns the innermost frame. Every PopFrame must pair
// with a successful PushFrame.
func (vm *VM) PopFrame() Frame {
	n := len(vm.frames)
	if n == 0 {
		panic("coco: PopFrame on empty call stack")
	}
	f := vm.frames[n-1]
	vm.frames[n-1] = nil
	vm.frames = vm.frames[:n-1]
	return f
}

// Depth returns the number of active frames.
func (vm *VM) Depth() int {
	return len(vm.frames)
}

// Frames returns the active frames, innermost first.
func (vm *VM) Frames() []Frame {
	r := make([]Frame, len(vm.frames))
	for i, f := range vm.frames {
		r[len(r)-1-i] = f
	}
	return r
}

// WriteFrame renders one frame as it appears in tracebacks and fault
// reports: the position of the executing instruction, then the code unit.
func WriteFrame(w io.Writer, f Frame) error {
	if _, err := fmt.Fprintf(w, "=========> At PC=%d in this function.\n", f.PC()-1); err != nil {
		return err
	}
	_, err := io.WriteString(w, f.Code().PrettyString("", true))
	return err
}
