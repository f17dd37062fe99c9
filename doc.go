/*
Package coco implements the object runtime of the CoCo virtual machine.

CoCo is a small interpreter for a Python-like bytecode. This package provides
the part of it that every other part leans on: the values programs compute
with, the types those values belong to, the exceptions that interrupt a
computation, and the stack of calls in progress. Scanning, parsing, and
compiling programs happen elsewhere; package code holds the compiled result,
and package interp is an engine that executes it.

Runtimes

All state lives in a VM. NewVM creates the type registry, one Type for every
TypeID, before returning, and the VM also owns the call frame stack. Values
are created through VM methods such as NewInt and NewStr, and each value
remembers the VM that created it. Nothing is shared between VMs, so separate
interpreters, including parallel tests, use separate VMs.

Objects and operations

Every value implements Object. What an object can do is described by its
dispatch table, which maps protocol operations (the Op constants, named like
__add__ or split) to implementations bound to that object. The table is
filled in by the constructor and never changes afterward. Invoke looks an
operation up in the table and calls it; if the operation is missing, the
result is an illegal-operation exception naming the type and the operation.
That is the only way an object says it does not support something.

	n := vm.NewInt(2)
	r, err := n.Invoke(coco.OpAdd, vm.NewFloat(0.5)) // 2.5
	_, err = n.Invoke(coco.OpSplit)                  // 'int' object has no attribute 'split'

Operations check their argument counts. Conversions take no arguments and
binary operators take one; a mismatch produces a wrong-arg-count exception
stating both counts.

Types are objects too. Calling a Type with one argument coerces the argument
by invoking the operation named after the type, so calling the int type
invokes __int__ and calling the type type invokes __type__, which answers what
type the argument is. Types are singletons, so comparing two *Type values
compares the types.

Exceptions

An Exception is both an Object and an error. Every failure in this package is
returned as an *Exception carrying a Kind and a payload, usually a message.
As an exception is returned out of each frame of the running program, the
engine appends that frame to the exception's traceback, so the traceback
lists the frame that raised first and the outermost frame last. A handler
decides whether it catches an exception with Match: the Exception type
matches everything, and another exception matches exceptions of the same
kind.

The call frame stack

The engine pushes a Frame for each call with PushFrame and removes it with
PopFrame. PushFrame refuses to let the stack reach the configured recursion
limit, returning a call stack overflow exception instead. When execution must
stop without unwinding, the engine panics with a *Fault, and the driver
reports the still-intact stack with WriteFault.

Reference counts

Objects carry a reference count which callers may maintain with IncRef and
DecRef. The count is advisory: memory belongs to the Go garbage collector,
and nothing happens when a count reaches zero.
*/
package coco
