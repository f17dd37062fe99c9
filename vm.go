package coco

import (
	"errors"
	"fmt"
	"math"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("coco")

// VM is the runtime context of one interpreter instance. It owns the type
// registry and the call frame stack. A VM is not safe for concurrent use;
// separate interpreters must use separate VMs.
type VM struct {
	types  *Registry
	frames []Frame
	config Config
}

// NewVM prepares a new runtime with the given configuration. The type
// registry is complete when NewVM returns.
func NewVM(config Config) *VM {
	if config.RecursionLimit <= 0 {
		config.RecursionLimit = DefaultRecursionLimit
	}
	vm := &VM{config: config}
	newRegistry(vm)
	log.Debugf("created VM with %d types, recursion limit %d", numTypes, config.RecursionLimit)
	return vm
}

// Config returns the configuration the VM was created with.
func (vm *VM) Config() Config {
	return vm.config
}

// CheckArgs returns a wrong-arg-count exception if args does not have exactly
// n elements.
func (vm *VM) CheckArgs(args []Object, n int) error {
	if len(args) != n {
		return vm.NewExceptionf(KindWrongArgCount, "TypeError: expected %d arguments, got %d", n, len(args))
	}
	return nil
}

// noAttribute creates the exception for an operation missing from an object
// of type t.
func (vm *VM) noAttribute(t *Type, name string) *Exception {
	return vm.NewExceptionf(KindIllegalOperation, "TypeError: '%s' object has no attribute '%s'", t.Name, name)
}

// Truth converts an object to a Go bool by invoking its __bool__ operation.
// Objects without one are true.
func (vm *VM) Truth(o Object) (bool, error) {
	if !o.Supports(OpBool) {
		return true, nil
	}
	r, err := o.Invoke(OpBool)
	if err != nil {
		return false, err
	}
	b, ok := r.(*Bool)
	if !ok {
		return false, vm.NewExceptionf(KindIllegalOperation, "TypeError: __bool__ should return bool, returned %s", r.Type().Name)
	}
	return b.Value, nil
}

// AsException converts err to an Exception. Exceptions are returned as-is;
// any other error becomes a generic exception carrying its message.
func (vm *VM) AsException(err error) *Exception {
	var exc *Exception
	if errors.As(err, &exc) {
		return exc
	}
	return vm.NewException(KindException, vm.NewStr(err.Error()))
}

// FromGo converts a Go value to the corresponding CoCo object. Supported
// values are nil, bool, signed and unsigned integers, floats, strings, and
// slices of these. Objects are returned unchanged.
func (vm *VM) FromGo(v interface{}) (Object, error) {
	switch x := v.(type) {
	case nil:
		return vm.NewNone(), nil
	case Object:
		return x, nil
	case bool:
		return vm.NewBool(x), nil
	case int:
		return vm.NewInt(int64(x)), nil
	case int64:
		return vm.NewInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("coco: integer %d overflows int", x)
		}
		return vm.NewInt(int64(x)), nil
	case float64:
		return vm.NewFloat(x), nil
	case float32:
		return vm.NewFloat(float64(x)), nil
	case string:
		return vm.NewStr(x), nil
	case []interface{}:
		items := make([]Object, len(x))
		for i, e := range x {
			o, err := vm.FromGo(e)
			if err != nil {
				return nil, err
			}
			items[i] = o
		}
		return vm.NewList(items...), nil
	default:
		return nil, fmt.Errorf("coco: cannot convert %T to an object", v)
	}
}
