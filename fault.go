package coco

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// FaultKind is the category of an unrecoverable fault.
type FaultKind int

// Fault kinds, named after the host conditions they replace.
const (
	FaultAbort FaultKind = iota
	FaultArithmetic
	FaultIllegalInstruction
	FaultInterrupt
	FaultMemory
	FaultTerminate
)

var faultDescriptions = [...]string{
	FaultAbort:              "Program Execution Aborted",
	FaultArithmetic:         "Arithmetic or Overflow Error",
	FaultIllegalInstruction: "Illegal Instruction in Virtual Machine",
	FaultInterrupt:          "Execution Interrupted",
	FaultMemory:             "Illegal Memory Access",
	FaultTerminate:          "Termination Requested",
}

// String describes the fault kind.
func (k FaultKind) String() string {
	if k < 0 || int(k) >= len(faultDescriptions) {
		return fmt.Sprintf("FaultKind(%d)", int(k))
	}
	return faultDescriptions[k]
}

// A Fault ends execution without unwinding the call frame stack, so that the
// stack can be reported as it was when the fault happened. Engines raise
// faults by panicking with a *Fault.
type Fault struct {
	Kind FaultKind
	// Cause is what produced the fault, e.g. a recovered panic value.
	Cause interface{}
}

// Error describes the fault.
func (f *Fault) Error() string {
	if f.Cause == nil {
		return f.Kind.String()
	}
	return fmt.Sprintf("%v: %v", f.Kind, f.Cause)
}

// FaultFromPanic classifies a recovered panic value. Go runtime errors map to
// the host fault they correspond to; a *Fault is returned unchanged; anything
// else is an abort.
func FaultFromPanic(r interface{}) *Fault {
	switch x := r.(type) {
	case *Fault:
		return x
	case runtime.Error:
		msg := x.Error()
		switch {
		case strings.Contains(msg, "divide by zero"), strings.Contains(msg, "overflow"):
			return &Fault{Kind: FaultArithmetic, Cause: r}
		case strings.Contains(msg, "nil pointer"), strings.Contains(msg, "invalid memory address"),
			strings.Contains(msg, "out of range"), strings.Contains(msg, "slice bounds"):
			return &Fault{Kind: FaultMemory, Cause: r}
		}
	}
	return &Fault{Kind: FaultAbort, Cause: r}
}

const (
	bannerStars  = "*********************************************************"
	bannerDashes = "---------------------------------------------------------"
	bannerTitle  = "            An Uncaught Exception Occurred"
	bannerTrace  = "              The Exception's Traceback"
)

// WriteFault reports a fault: the banner, the fault description, and every
// active frame from innermost to outermost.
func (vm *VM) WriteFault(w io.Writer, f *Fault) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\n%s\n%s\n%s\n", bannerStars, bannerTitle, bannerStars)
	fmt.Fprintf(&b, "Signal: %v\n", f.Kind)
	fmt.Fprintf(&b, "%s\n%s\n%s\n", bannerDashes, bannerTrace, bannerDashes)
	for _, fr := range vm.Frames() {
		WriteFrame(&b, fr)
	}
	fmt.Fprintf(&b, "%s\n", bannerStars)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteUncaught reports an exception that reached the top level: the banner,
// the exception's message, its traceback, and the message again after a
// closing banner.
func WriteUncaught(w io.Writer, e *Exception) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\n%s\n%s\n%s\n", bannerStars, bannerTitle, bannerStars)
	fmt.Fprintf(&b, "%s\n", e)
	fmt.Fprintf(&b, "%s\n%s\n%s\n", bannerDashes, bannerTrace, bannerDashes)
	e.WriteTraceback(&b)
	fmt.Fprintf(&b, "%s\n%s (See Above)\n%s\n", bannerStars, bannerTitle, bannerStars)
	fmt.Fprintf(&b, "%s\n%s\n", e, bannerStars)
	_, err := io.WriteString(w, b.String())
	return err
}
