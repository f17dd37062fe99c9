package coco

import "fmt"

// TypeID identifies one of the built-in types.
type TypeID uint8

// Type identifiers. Every identifier has exactly one Type per VM.
const (
	TypeType TypeID = iota
	NoneType
	BoolType
	IntType
	FloatType
	StrType
	FunctionType
	BuiltinType
	RangeType
	RangeIteratorType
	ListType
	ListIteratorType
	FunListType
	FunListIteratorType
	StrIteratorType
	CodeType
	TupleType
	TupleIteratorType
	CellType
	ExceptionType

	numTypes
)

var typeNames = [numTypes]string{
	TypeType:            "type",
	NoneType:            "NoneType",
	BoolType:            "bool",
	IntType:             "int",
	FloatType:           "float",
	StrType:             "str",
	FunctionType:        "function",
	BuiltinType:         "builtin_function_or_method",
	RangeType:           "range",
	RangeIteratorType:   "range_iterator",
	ListType:            "list",
	ListIteratorType:    "list_iterator",
	FunListType:         "funlist",
	FunListIteratorType: "funlist_iterator",
	StrIteratorType:     "str_iterator",
	CodeType:            "code",
	TupleType:           "tuple",
	TupleIteratorType:   "tuple_iterator",
	CellType:            "cell",
	ExceptionType:       "Exception",
}

// String returns the name of the type with this identifier.
func (id TypeID) String() string {
	if id >= numTypes {
		return fmt.Sprintf("TypeID(%d)", id)
	}
	return typeNames[id]
}

// TypeIDs returns every type identifier in order.
func TypeIDs() []TypeID {
	ids := make([]TypeID, numTypes)
	for i := range ids {
		ids[i] = TypeID(i)
	}
	return ids
}

// Type is the singleton object representing a value category. Two Types are
// the same type exactly when they are the same pointer.
type Type struct {
	Base
	// Name is the display name of the type.
	Name string
	// ID is the type's identifier.
	ID TypeID

	// construct replaces the coercion behavior of OpCall if non-nil.
	construct Method
}

// String renders the type as <class 'name'>.
func (t *Type) String() string {
	return "<class '" + t.Name + "'>"
}

// call implements OpCall: coerce the single argument to this type by invoking
// its __name__ operation.
func (t *Type) call(args []Object) (Object, error) {
	vm := t.vm
	if err := vm.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	if t.construct != nil {
		return t.construct(args)
	}
	return InvokeName(args[0], "__"+t.Name+"__")
}

// Registry maps every type identifier to its Type.
type Registry [numTypes]*Type

// newRegistry creates the types for vm. The type of every Type is the type
// Type, so all of them must exist before any is initialized.
func newRegistry(vm *VM) *Registry {
	var r Registry
	for i := range r {
		r[i] = &Type{Name: typeNames[i], ID: TypeID(i)}
	}
	vm.types = &r
	for _, t := range r {
		t.Init(vm, t, TypeType, Methods{OpCall: t.call})
	}
	r[ExceptionType].construct = func(args []Object) (Object, error) {
		return vm.NewException(KindException, args[0]), nil
	}
	return &r
}

// Type returns the singleton Type for id. Panics if id is not a type
// identifier.
func (vm *VM) Type(id TypeID) *Type {
	if id >= numTypes {
		panic(fmt.Sprintf("coco: no type with id %d", id))
	}
	return vm.types[id]
}

// TypeByName returns the Type with the given display name.
func (vm *VM) TypeByName(name string) (*Type, bool) {
	for _, t := range vm.types {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}
