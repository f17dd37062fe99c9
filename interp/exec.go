package interp

import (
	"context"
	"fmt"

	"github.com/zephyrtronium/coco"
	"github.com/zephyrtronium/coco/code"
)

// stackNeed returns the number of values in must have on the stack.
func stackNeed(in code.Instruction) int {
	switch in.Op {
	case code.PopTop, code.DupTop, code.GetIter, code.ReturnValue, code.EndFinally,
		code.StoreFast, code.StoreGlobal, code.LoadAttr,
		code.PopJumpIfFalse, code.PopJumpIfTrue, code.ForIter:
		return 1
	case code.RotTwo, code.BinaryAdd, code.BinarySubtract, code.BinaryMultiply,
		code.BinaryFloorDivide, code.BinaryTrueDivide, code.BinarySubscr, code.CompareOp:
		return 2
	case code.CallFunction:
		return in.Arg + 1
	case code.RaiseVarargs, code.BuildList:
		return in.Arg
	}
	return 0
}

var binaryOps = map[code.Opcode]coco.Op{
	code.BinaryAdd:         coco.OpAdd,
	code.BinarySubtract:    coco.OpSub,
	code.BinaryMultiply:    coco.OpMul,
	code.BinaryFloorDivide: coco.OpFloorDiv,
	code.BinaryTrueDivide:  coco.OpTrueDiv,
	code.BinarySubscr:      coco.OpGetItem,
}

// exec runs fr until it returns or an exception escapes it.
func (it *Interpreter) exec(fr *Frame) (coco.Object, error) {
	ctx := it.context()
	instrs := fr.fn.Code.Instructions
	for {
		if ctx.Err() != nil {
			panic(interruption(ctx))
		}
		if fr.pc >= len(instrs) {
			return it.vm.NewNone(), nil
		}
		in := instrs[fr.pc]
		fr.pc++
		r, done, err := it.step(fr, in)
		if err != nil {
			exc := it.vm.AsException(err)
			if fr.handle(exc) {
				continue
			}
			exc.AppendFrame(fr)
			return nil, exc
		}
		if done {
			return r, nil
		}
	}
}

// interruption creates the fault for a cancelled context.
func interruption(ctx context.Context) *coco.Fault {
	cause := context.Cause(ctx)
	if f, ok := cause.(*coco.Fault); ok {
		return f
	}
	return &coco.Fault{Kind: coco.FaultAbort, Cause: cause}
}

// step executes one instruction. done is true when the frame returns r.
func (it *Interpreter) step(fr *Frame, in code.Instruction) (r coco.Object, done bool, err error) {
	vm := it.vm
	c := fr.fn.Code
	if need := stackNeed(in); len(fr.stack) < need {
		return nil, false, vm.NewExceptionf(coco.KindEmptyStack, "Attempt to pop empty stack.")
	}
	switch in.Op {
	case code.Nop, code.PopExcept:
		// Handlers keep no state beyond the value stack.
	case code.PopTop:
		fr.pop()
	case code.RotTwo:
		n := len(fr.stack)
		fr.stack[n-1], fr.stack[n-2] = fr.stack[n-2], fr.stack[n-1]
	case code.DupTop:
		fr.push(fr.top())

	case code.LoadConst:
		fr.push(fr.fn.consts[in.Arg])
	case code.LoadFast:
		v := fr.locals[in.Arg]
		if v == nil {
			return nil, false, vm.NewExceptionf(coco.KindIllegalOperation, "UnboundLocalError: local variable '%s' referenced before assignment", c.Locals[in.Arg])
		}
		fr.push(v)
	case code.StoreFast:
		fr.locals[in.Arg] = fr.pop()
	case code.LoadGlobal:
		v, ok := it.Globals[c.Globals[in.Arg]]
		if !ok {
			return nil, false, vm.NewExceptionf(coco.KindIllegalOperation, "NameError: name '%s' is not defined", c.Globals[in.Arg])
		}
		fr.push(v)
	case code.StoreGlobal:
		it.Globals[c.Globals[in.Arg]] = fr.pop()
	case code.LoadAttr:
		m, err := it.bind(fr.pop(), c.Globals[in.Arg])
		if err != nil {
			return nil, false, err
		}
		fr.push(m)

	case code.BinaryAdd, code.BinarySubtract, code.BinaryMultiply,
		code.BinaryFloorDivide, code.BinaryTrueDivide, code.BinarySubscr:
		b := fr.pop()
		a := fr.pop()
		v, err := a.Invoke(binaryOps[in.Op], b)
		if err != nil {
			return nil, false, err
		}
		fr.push(v)
	case code.CompareOp:
		b := fr.pop()
		a := fr.pop()
		v, err := it.compare(in.Arg, a, b)
		if err != nil {
			return nil, false, err
		}
		fr.push(v)

	case code.CallFunction:
		args := fr.popN(in.Arg)
		f := fr.pop()
		v, err := f.Invoke(coco.OpCall, args...)
		if err != nil {
			return nil, false, err
		}
		fr.push(v)
	case code.ReturnValue:
		return fr.pop(), true, nil

	case code.JumpForward, code.JumpAbsolute:
		fr.pc = in.Arg
	case code.PopJumpIfFalse, code.PopJumpIfTrue:
		t, err := vm.Truth(fr.pop())
		if err != nil {
			return nil, false, err
		}
		if t == (in.Op == code.PopJumpIfTrue) {
			fr.pc = in.Arg
		}

	case code.GetIter:
		v, err := fr.pop().Invoke(coco.OpIter)
		if err != nil {
			return nil, false, err
		}
		fr.push(v)
	case code.ForIter:
		v, err := fr.top().Invoke(coco.OpNext)
		if err != nil {
			if exc := vm.AsException(err); exc.Kind == coco.KindStopIteration {
				fr.pop()
				fr.pc = in.Arg
				return nil, false, nil
			}
			return nil, false, err
		}
		fr.push(v)
	case code.SetupLoop:
		fr.blocks = append(fr.blocks, block{kind: loopBlock, target: in.Arg, depth: len(fr.stack)})
	case code.SetupExcept:
		fr.blocks = append(fr.blocks, block{kind: exceptBlock, target: in.Arg, depth: len(fr.stack)})
	case code.PopBlock:
		if len(fr.blocks) == 0 {
			return nil, false, vm.NewExceptionf(coco.KindEmptyStack, "Attempt to pop empty block stack.")
		}
		fr.blocks = fr.blocks[:len(fr.blocks)-1]
	case code.BreakLoop:
		for len(fr.blocks) > 0 {
			b := fr.blocks[len(fr.blocks)-1]
			fr.blocks = fr.blocks[:len(fr.blocks)-1]
			if b.kind == loopBlock {
				fr.unwindTo(b.depth)
				fr.pc = b.target
				return nil, false, nil
			}
		}
		return nil, false, vm.NewExceptionf(coco.KindIllegalOperation, "SyntaxError: 'break' outside loop")

	case code.EndFinally:
		v := fr.pop()
		if exc, ok := v.(*coco.Exception); ok {
			return nil, false, exc
		}
	case code.RaiseVarargs:
		if in.Arg != 1 {
			return nil, false, vm.NewExceptionf(coco.KindIllegalOperation, "RuntimeError: RAISE_VARARGS takes exactly one exception, got %d", in.Arg)
		}
		v := fr.pop()
		exc, ok := v.(*coco.Exception)
		if !ok {
			return nil, false, vm.NewExceptionf(coco.KindIllegalOperation, "TypeError: exceptions must derive from Exception, not %s", v.Type().Name)
		}
		return nil, false, exc
	case code.BuildList:
		fr.push(vm.NewList(fr.popN(in.Arg)...))

	default:
		panic(&coco.Fault{
			Kind:  coco.FaultIllegalInstruction,
			Cause: fmt.Sprintf("%v at %s:%d", in.Op, c.FuncName, fr.pc-1),
		})
	}
	return nil, false, nil
}

// compare implements COMPARE_OP in terms of the comparison operations
// objects support: a < b is b > a, and a != b is not a == b.
func (it *Interpreter) compare(which int, a, b coco.Object) (coco.Object, error) {
	switch which {
	case code.CmpLess:
		return b.Invoke(coco.OpGt, a)
	case code.CmpLessEqual:
		return a.Invoke(coco.OpLe, b)
	case code.CmpEqual:
		return a.Invoke(coco.OpEq, b)
	case code.CmpNotEqual:
		v, err := a.Invoke(coco.OpEq, b)
		if err != nil {
			return nil, err
		}
		t, err := it.vm.Truth(v)
		if err != nil {
			return nil, err
		}
		return it.vm.NewBool(!t), nil
	case code.CmpGreater:
		return a.Invoke(coco.OpGt, b)
	case code.CmpGreaterEqual:
		return a.Invoke(coco.OpGe, b)
	case code.CmpExceptionMatch:
		return a.Invoke(coco.OpExcMatch, b)
	}
	return nil, it.vm.NewExceptionf(coco.KindIllegalOperation, "SystemError: unknown comparison %d", which)
}
