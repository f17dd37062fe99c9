package coco

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDelimiters are the characters split uses when given no delimiter
// set.
const DefaultDelimiters = " \t\n"

// Str is an immutable string. Indexing and length are in characters, not
// bytes.
type Str struct {
	Base
	Value string
}

// NewStr creates a Str with the given value.
func (vm *VM) NewStr(value string) *Str {
	s := &Str{Value: value}
	s.Init(vm, s, StrType, Methods{
		OpAdd:     s.concat,
		OpEq:      s.eq,
		OpLen:     vm.unary(func() (Object, error) { return vm.NewInt(int64(s.Len())), nil }),
		OpGetItem: s.getItem,
		OpIter:    vm.unary(func() (Object, error) { return vm.NewStrIterator(s), nil }),
		OpList:    vm.unary(s.list),
		OpFunList: vm.unary(s.funList),
		OpBool:    vm.unary(func() (Object, error) { return vm.NewBool(s.Value != ""), nil }),
		OpInt:     vm.unary(s.toInt),
		OpFloat:   vm.unary(s.toFloat),
		OpSplit:   s.split,
		OpUpper: vm.unary(func() (Object, error) {
			return vm.NewStr(cases.Upper(language.Und).String(s.Value)), nil
		}),
		OpLower: vm.unary(func() (Object, error) {
			return vm.NewStr(cases.Lower(language.Und).String(s.Value)), nil
		}),
	})
	return s
}

// Copy creates a new Str with the same value.
func (s *Str) Copy() *Str {
	return s.vm.NewStr(s.Value)
}

// String returns the string's value.
func (s *Str) String() string {
	return s.Value
}

// Len returns the number of characters in the string.
func (s *Str) Len() int {
	return utf8.RuneCountInString(s.Value)
}

// CharAt returns the one-character string at index i. At the end of the
// string, i.e. when i is the length, the result is a stop-iteration exception,
// which is what ends iteration over a string. Any other index outside the
// string is an illegal-operation exception.
func (s *Str) CharAt(i int) (*Str, error) {
	n := 0
	for _, c := range s.Value {
		if n == i {
			return s.vm.NewStr(string(c)), nil
		}
		n++
	}
	if i == n {
		return nil, s.vm.NewExceptionf(KindStopIteration, "Stop Iteration")
	}
	return nil, s.vm.NewExceptionf(KindIllegalOperation, "IndexError: string index %d out of range", i)
}

// Split divides s at every character of delims. Each delimiter closes the
// current run, so adjacent delimiters produce empty strings, and the final
// run is always included. An empty delims delimits nothing.
func Split(s, delims string) []string {
	var (
		out []string
		run strings.Builder
	)
	for _, c := range s {
		if strings.ContainsRune(delims, c) {
			out = append(out, run.String())
			run.Reset()
		} else {
			run.WriteRune(c)
		}
	}
	return append(out, run.String())
}

func (s *Str) concat(args []Object) (Object, error) {
	vm := s.vm
	if err := vm.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	r, ok := args[0].(*Str)
	if !ok {
		return nil, vm.NewExceptionf(KindIllegalOperation, "TypeError: can only concatenate str (not \"%s\") to str", args[0].Type().Name)
	}
	return vm.NewStr(s.Value + r.Value), nil
}

func (s *Str) eq(args []Object) (Object, error) {
	vm := s.vm
	if err := vm.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	r, ok := args[0].(*Str)
	return vm.NewBool(ok && s.Value == r.Value), nil
}

func (s *Str) getItem(args []Object) (Object, error) {
	vm := s.vm
	if err := vm.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	n, ok := numberOf(args[0])
	if !ok || n.isFloat {
		return nil, vm.NewExceptionf(KindIllegalOperation, "TypeError: string indices must be integers, not %s", args[0].Type().Name)
	}
	i := n.i
	if i < 0 {
		i += int64(s.Len())
		if i < 0 {
			return nil, vm.NewExceptionf(KindIllegalOperation, "IndexError: string index %d out of range", n.i)
		}
	}
	return s.CharAt(int(i))
}

func (s *Str) list() (Object, error) {
	items := make([]Object, 0, len(s.Value))
	for _, c := range s.Value {
		items = append(items, s.vm.NewStr(string(c)))
	}
	return s.vm.NewList(items...), nil
}

func (s *Str) funList() (Object, error) {
	items := make([]Object, 0, len(s.Value))
	for _, c := range s.Value {
		items = append(items, s.vm.NewStr(string(c)))
	}
	return s.vm.NewFunList(items...), nil
}

func (s *Str) toInt() (Object, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s.Value), 10, 64)
	if err != nil {
		return nil, s.vm.NewExceptionf(KindIllegalOperation, "ValueError: invalid literal for int() with base 10: %s", quote(s.Value))
	}
	return s.vm.NewInt(v), nil
}

func (s *Str) toFloat() (Object, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
	if err != nil {
		return nil, s.vm.NewExceptionf(KindIllegalOperation, "ValueError: could not convert string to float: %s", quote(s.Value))
	}
	return s.vm.NewFloat(v), nil
}

// split implements split([delims]).
func (s *Str) split(args []Object) (Object, error) {
	vm := s.vm
	delims := DefaultDelimiters
	switch len(args) {
	case 0: // do nothing
	case 1:
		d, ok := args[0].(*Str)
		if !ok {
			return nil, vm.NewExceptionf(KindIllegalOperation, "TypeError: must be str, not %s", args[0].Type().Name)
		}
		delims = d.Value
	default:
		return nil, vm.NewExceptionf(KindWrongArgCount, "TypeError: expected at most 1 arguments, got %d", len(args))
	}
	parts := Split(s.Value, delims)
	items := make([]Object, len(parts))
	for i, p := range parts {
		items[i] = vm.NewStr(p)
	}
	return vm.NewList(items...), nil
}

// quote renders a string the way it appears inside a list: in single quotes,
// with quotes and control characters escaped.
func quote(s string) string {
	q := strconv.Quote(s)
	q = q[1 : len(q)-1]
	q = strings.ReplaceAll(q, `\"`, `"`)
	q = strings.ReplaceAll(q, `'`, `\'`)
	return "'" + q + "'"
}
