// Package code holds compiled CoCo programs: code units, their instructions,
// and the listing and binary formats they are stored in.
package code

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Instruction is one bytecode instruction. Arg is meaningful only if the
// opcode takes an argument.
type Instruction struct {
	_   struct{} `cbor:",toarray"`
	Op  Opcode
	Arg int
}

// String formats the instruction as assembly, e.g. "LOAD_CONST 1".
func (in Instruction) String() string {
	if in.Op.HasArg() {
		return in.Op.String() + " " + strconv.Itoa(in.Arg)
	}
	return in.Op.String()
}

// ParseInstruction parses an instruction in assembly form.
func ParseInstruction(s string) (Instruction, error) {
	f := strings.Fields(s)
	if len(f) == 0 {
		return Instruction{}, fmt.Errorf("empty instruction")
	}
	op, ok := ParseOpcode(f[0])
	if !ok {
		return Instruction{}, fmt.Errorf("unknown opcode %q", f[0])
	}
	in := Instruction{Op: op}
	switch {
	case op.HasArg() && len(f) != 2:
		return in, fmt.Errorf("%s takes one argument, got %d", op, len(f)-1)
	case !op.HasArg() && len(f) != 1:
		return in, fmt.Errorf("%s takes no argument, got %d", op, len(f)-1)
	case op.HasArg():
		arg, err := strconv.Atoi(f[1])
		if err != nil {
			return in, fmt.Errorf("bad argument to %s: %w", op, err)
		}
		in.Arg = arg
	}
	return in, nil
}

// Code is a compiled function.
type Code struct {
	FuncName string `yaml:"name" cbor:"name"`
	// ArgCount is the number of parameters. Parameters are the first locals.
	ArgCount int `yaml:"argcount" cbor:"argcount"`
	// Constants are the literal values the function loads, as nil, bool,
	// integer, float, or string values.
	Constants []interface{} `yaml:"constants" cbor:"constants"`
	// Locals names the local variable slots.
	Locals []string `yaml:"locals" cbor:"locals"`
	// Globals names the globals and attributes the function refers to.
	Globals      []string      `yaml:"globals" cbor:"globals"`
	Instructions []Instruction `yaml:"instructions" cbor:"instructions"`
}

// Name returns the function's name.
func (c *Code) Name() string {
	return c.FuncName
}

// PrettyString renders the code unit as an assembly listing. If pc is true,
// each instruction is preceded by its index.
func (c *Code) PrettyString(indent string, pc bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%sFunction: %s/%d\n", indent, c.FuncName, c.ArgCount)
	if len(c.Constants) > 0 {
		consts := make([]string, len(c.Constants))
		for i, k := range c.Constants {
			consts[i] = formatConstant(k)
		}
		fmt.Fprintf(&b, "%sConstants: %s\n", indent, strings.Join(consts, ", "))
	}
	if len(c.Locals) > 0 {
		fmt.Fprintf(&b, "%sLocals: %s\n", indent, strings.Join(c.Locals, ", "))
	}
	if len(c.Globals) > 0 {
		fmt.Fprintf(&b, "%sGlobals: %s\n", indent, strings.Join(c.Globals, ", "))
	}
	fmt.Fprintf(&b, "%sBEGIN\n", indent)
	for i, in := range c.Instructions {
		if pc {
			fmt.Fprintf(&b, "%s%5d: %s\n", indent, i, in)
		} else {
			fmt.Fprintf(&b, "%s       %s\n", indent, in)
		}
	}
	fmt.Fprintf(&b, "%sEND\n", indent)
	return b.String()
}

// formatConstant renders a constant the way it is written in source.
func formatConstant(k interface{}) string {
	switch x := k.(type) {
	case nil:
		return "None"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case string:
		return strconv.Quote(x)
	case float64:
		if math.Trunc(x) == x && !math.IsInf(x, 0) {
			return strconv.FormatFloat(x, 'f', 1, 64)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return fmt.Sprint(k)
}

// Validate checks that every instruction is a known opcode whose argument
// refers to something that exists.
func (c *Code) Validate() error {
	for i, in := range c.Instructions {
		if !in.Op.Valid() {
			return fmt.Errorf("%s: instruction %d: unknown opcode %d", c.FuncName, i, in.Op)
		}
		var limit int
		switch {
		case in.Op == LoadConst:
			limit = len(c.Constants)
		case in.Op == LoadFast || in.Op == StoreFast:
			limit = len(c.Locals)
		case in.Op == LoadGlobal || in.Op == StoreGlobal || in.Op == LoadAttr:
			limit = len(c.Globals)
		case in.Op.IsJump():
			limit = len(c.Instructions) + 1
		default:
			if in.Arg < 0 {
				return fmt.Errorf("%s: instruction %d: negative argument to %s", c.FuncName, i, in.Op)
			}
			continue
		}
		if in.Arg < 0 || in.Arg >= limit {
			return fmt.Errorf("%s: instruction %d: argument %d out of range for %s", c.FuncName, i, in.Arg, in.Op)
		}
	}
	for i, k := range c.Constants {
		switch x := k.(type) {
		case nil, bool, int, int64, float64, string:
		case uint64:
			if x > math.MaxInt64 {
				return fmt.Errorf("%s: constant %d overflows int", c.FuncName, i)
			}
		default:
			return fmt.Errorf("%s: constant %d has unsupported type %T", c.FuncName, i, k)
		}
	}
	if c.ArgCount < 0 || c.ArgCount > len(c.Locals) {
		return fmt.Errorf("%s: argcount %d does not fit %d locals", c.FuncName, c.ArgCount, len(c.Locals))
	}
	return nil
}

// Program is the set of functions of one compiled source file.
type Program struct {
	Functions []*Code `yaml:"functions" cbor:"functions"`
}

// Lookup returns the function with the given name, or nil.
func (p *Program) Lookup(name string) *Code {
	for _, c := range p.Functions {
		if c.FuncName == name {
			return c
		}
	}
	return nil
}

// Validate validates every function and checks that names are unique.
func (p *Program) Validate() error {
	seen := make(map[string]bool, len(p.Functions))
	for _, c := range p.Functions {
		if c == nil {
			return fmt.Errorf("empty function entry")
		}
		if seen[c.FuncName] {
			return fmt.Errorf("function %s defined more than once", c.FuncName)
		}
		seen[c.FuncName] = true
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}
