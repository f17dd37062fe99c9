package code

import "fmt"

// Opcode is an instruction of the CoCo bytecode.
type Opcode uint8

// Instructions without an argument.
const (
	Nop Opcode = iota
	PopTop
	RotTwo
	DupTop
	BinaryAdd
	BinarySubtract
	BinaryMultiply
	BinaryFloorDivide
	BinaryTrueDivide
	BinarySubscr
	GetIter
	ReturnValue
	PopBlock
	BreakLoop
	PopExcept
	EndFinally
)

// Instructions with an argument. Every opcode from haveArgument on takes one.
const (
	LoadConst Opcode = iota + haveArgument
	LoadFast
	StoreFast
	LoadGlobal
	StoreGlobal
	LoadAttr
	CallFunction
	CompareOp
	JumpForward
	JumpAbsolute
	PopJumpIfFalse
	PopJumpIfTrue
	ForIter
	SetupLoop
	SetupExcept
	RaiseVarargs
	BuildList
)

const haveArgument = 64

var opcodeNames = map[Opcode]string{
	Nop:               "NOP",
	PopTop:            "POP_TOP",
	RotTwo:            "ROT_TWO",
	DupTop:            "DUP_TOP",
	BinaryAdd:         "BINARY_ADD",
	BinarySubtract:    "BINARY_SUBTRACT",
	BinaryMultiply:    "BINARY_MULTIPLY",
	BinaryFloorDivide: "BINARY_FLOOR_DIVIDE",
	BinaryTrueDivide:  "BINARY_TRUE_DIVIDE",
	BinarySubscr:      "BINARY_SUBSCR",
	GetIter:           "GET_ITER",
	ReturnValue:       "RETURN_VALUE",
	PopBlock:          "POP_BLOCK",
	BreakLoop:         "BREAK_LOOP",
	PopExcept:         "POP_EXCEPT",
	EndFinally:        "END_FINALLY",
	LoadConst:         "LOAD_CONST",
	LoadFast:          "LOAD_FAST",
	StoreFast:         "STORE_FAST",
	LoadGlobal:        "LOAD_GLOBAL",
	StoreGlobal:       "STORE_GLOBAL",
	LoadAttr:          "LOAD_ATTR",
	CallFunction:      "CALL_FUNCTION",
	CompareOp:         "COMPARE_OP",
	JumpForward:       "JUMP_FORWARD",
	JumpAbsolute:      "JUMP_ABSOLUTE",
	PopJumpIfFalse:    "POP_JUMP_IF_FALSE",
	PopJumpIfTrue:     "POP_JUMP_IF_TRUE",
	ForIter:           "FOR_ITER",
	SetupLoop:         "SETUP_LOOP",
	SetupExcept:       "SETUP_EXCEPT",
	RaiseVarargs:      "RAISE_VARARGS",
	BuildList:         "BUILD_LIST",
}

var opcodesByName = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodeNames))
	for op, name := range opcodeNames {
		m[name] = op
	}
	return m
}()

// String returns the assembly name of the opcode.
func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Opcode(%d)", op)
}

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodeNames[op]
	return ok
}

// HasArg reports whether the opcode takes an argument.
func (op Opcode) HasArg() bool {
	return op >= haveArgument
}

// IsJump reports whether the opcode's argument is an instruction index.
func (op Opcode) IsJump() bool {
	switch op {
	case JumpForward, JumpAbsolute, PopJumpIfFalse, PopJumpIfTrue, ForIter, SetupLoop, SetupExcept:
		return true
	}
	return false
}

// ParseOpcode returns the opcode with the given assembly name.
func ParseOpcode(name string) (Opcode, bool) {
	op, ok := opcodesByName[name]
	return op, ok
}

// COMPARE_OP arguments.
const (
	CmpLess = iota
	CmpLessEqual
	CmpEqual
	CmpNotEqual
	CmpGreater
	CmpGreaterEqual

	CmpExceptionMatch = 10
)
