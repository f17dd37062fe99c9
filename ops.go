package coco

import "fmt"

// Op is a protocol operation which an object may support. The set of
// operations is closed; an object supports an operation exactly when its
// dispatch table has an entry for it.
type Op uint8

// Protocol operations.
const (
	// OpStr renders the object as a new Str.
	OpStr Op = iota
	// OpType returns the object's Type.
	OpType
	// OpBool converts to a Bool by the object's truthiness rule.
	OpBool
	// OpInt converts to an Int.
	OpInt
	// OpFloat converts to a Float.
	OpFloat
	// OpList converts to a List.
	OpList
	// OpFunList converts to a FunList.
	OpFunList

	OpAdd
	OpSub
	OpMul
	OpFloorDiv
	OpTrueDiv

	OpEq
	OpGt
	OpGe
	OpLe

	// OpCall calls the object.
	OpCall
	// OpIter returns an iterator over the object.
	OpIter
	// OpNext advances an iterator. Exhaustion is signaled by a
	// stop-iteration exception.
	OpNext
	// OpLen returns the length of a container as an Int.
	OpLen
	// OpGetItem indexes a container.
	OpGetItem

	OpSplit
	OpUpper
	OpLower
	OpAppend

	// OpExcMatch decides whether an exception is caught by a handler for its
	// argument.
	OpExcMatch

	numOps
)

var opNames = [numOps]string{
	OpStr:      "__str__",
	OpType:     "__type__",
	OpBool:     "__bool__",
	OpInt:      "__int__",
	OpFloat:    "__float__",
	OpList:     "__list__",
	OpFunList:  "__funlist__",
	OpAdd:      "__add__",
	OpSub:      "__sub__",
	OpMul:      "__mul__",
	OpFloorDiv: "__floordiv__",
	OpTrueDiv:  "__truediv__",
	OpEq:       "__eq__",
	OpGt:       "__gt__",
	OpGe:       "__ge__",
	OpLe:       "__le__",
	OpCall:     "__call__",
	OpIter:     "__iter__",
	OpNext:     "__next__",
	OpLen:      "__len__",
	OpGetItem:  "__getitem__",
	OpSplit:    "split",
	OpUpper:    "upper",
	OpLower:    "lower",
	OpAppend:   "append",
	OpExcMatch: "__excmatch__",
}

// opSymbols are the operator spellings used in error messages.
var opSymbols = map[Op]string{
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpFloorDiv: "//",
	OpTrueDiv:  "/",
	OpEq:       "==",
	OpGt:       ">",
	OpGe:       ">=",
	OpLe:       "<=",
}

var opsByName = func() map[string]Op {
	m := make(map[string]Op, numOps)
	for op, name := range opNames {
		m[name] = Op(op)
	}
	return m
}()

// String returns the canonical name of the operation, e.g. "__add__".
func (op Op) String() string {
	if op >= numOps {
		return fmt.Sprintf("Op(%d)", op)
	}
	return opNames[op]
}

// ParseOp returns the operation with the given canonical name.
func ParseOp(name string) (Op, bool) {
	op, ok := opsByName[name]
	return op, ok
}

// symbol returns the operator spelling of op, or its name if it has none.
func (op Op) symbol() string {
	if s, ok := opSymbols[op]; ok {
		return s
	}
	return op.String()
}
