package interp

import (
	"github.com/zephyrtronium/coco"
)

type blockKind uint8

const (
	loopBlock blockKind = iota
	exceptBlock
)

// block is an entry of a frame's block stack. target is where control goes
// when the block is broken out of or its handler runs, and depth is the
// value stack height when the block was set up.
type block struct {
	kind   blockKind
	target int
	depth  int
}

// Frame is one activation of a Function.
type Frame struct {
	fn     *Function
	pc     int
	locals []coco.Object
	stack  []coco.Object
	blocks []block
}

func newFrame(fn *Function, args []coco.Object) *Frame {
	fr := &Frame{
		fn:     fn,
		locals: make([]coco.Object, len(fn.Code.Locals)),
		stack:  make([]coco.Object, 0, 8),
	}
	copy(fr.locals, args)
	return fr
}

// PC returns the index of the next instruction to execute.
func (fr *Frame) PC() int {
	return fr.pc
}

// Code returns the frame's code unit.
func (fr *Frame) Code() coco.CodeUnit {
	return fr.fn.Code
}

// Function returns the function the frame is executing.
func (fr *Frame) Function() *Function {
	return fr.fn
}

func (fr *Frame) push(o coco.Object) {
	fr.stack = append(fr.stack, o)
}

// pop removes the top of the value stack. The caller checks the height first.
func (fr *Frame) pop() coco.Object {
	n := len(fr.stack) - 1
	o := fr.stack[n]
	fr.stack[n] = nil
	fr.stack = fr.stack[:n]
	return o
}

func (fr *Frame) top() coco.Object {
	return fr.stack[len(fr.stack)-1]
}

// popN removes the top n values and returns them in push order.
func (fr *Frame) popN(n int) []coco.Object {
	k := len(fr.stack) - n
	r := make([]coco.Object, n)
	copy(r, fr.stack[k:])
	for i := k; i < len(fr.stack); i++ {
		fr.stack[i] = nil
	}
	fr.stack = fr.stack[:k]
	return r
}

// unwindTo truncates the value stack to the given height.
func (fr *Frame) unwindTo(depth int) {
	for i := depth; i < len(fr.stack); i++ {
		fr.stack[i] = nil
	}
	fr.stack = fr.stack[:depth]
}

// handle looks for an exception handler on the block stack, discarding loop
// blocks it passes. If there is one, the frame resumes at the handler with
// the exception on the stack.
func (fr *Frame) handle(exc *coco.Exception) bool {
	for len(fr.blocks) > 0 {
		b := fr.blocks[len(fr.blocks)-1]
		fr.blocks = fr.blocks[:len(fr.blocks)-1]
		if b.kind == exceptBlock {
			fr.unwindTo(b.depth)
			fr.push(exc)
			fr.pc = b.target
			return true
		}
	}
	return false
}
