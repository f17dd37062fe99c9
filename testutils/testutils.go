// Package testutils provides utilities for testing CoCo programs in Go.
package testutils

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/zephyrtronium/coco"
	"github.com/zephyrtronium/coco/code"
	"github.com/zephyrtronium/coco/interp"
)

// testVM is the VM used for all tests.
var testVM *coco.VM

var testVMInit sync.Once

// TestingVM returns a VM for testing CoCo. The VM is shared by all tests that
// use this package.
func TestingVM() *coco.VM {
	testVMInit.Do(ResetTestingVM)
	return testVM
}

// ResetTestingVM reinitializes the VM returned by TestingVM. It is not safe to
// call this in parallel tests.
func ResetTestingVM() {
	testVM = coco.NewVM(coco.DefaultConfig())
}

// A ProgramTestCase is a test case containing a program listing and a
// predicate to check the result of running it.
type ProgramTestCase struct {
	// Listing is the YAML program listing to execute.
	Listing string
	// Pass is a predicate taking the result of main and the output printed.
	// If Pass returns false, then the test fails.
	Pass func(result coco.Object, err error, output string) bool
}

// TestFunc returns a test function for the test case. Each case runs on a
// fresh VM so that call depth and globals do not leak between cases.
func (c ProgramTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		p, err := code.DecodeListing([]byte(c.Listing))
		if err != nil {
			t.Fatalf("could not load %s: %v", name, err)
		}
		var out bytes.Buffer
		vm := coco.NewVM(coco.DefaultConfig())
		r, err := interp.New(vm, &out).Run(context.Background(), p)
		if c.Pass(r, err, out.String()) {
			return
		}
		if exc, ok := err.(*coco.Exception); ok {
			w := strings.Builder{}
			fmt.Fprintf(&w, "%s produced wrong result; an exception occurred:\n", name)
			for _, f := range exc.Traceback() {
				fmt.Fprintf(&w, "\t%s\tPC=%d\n", f.Code().Name(), f.PC()-1)
			}
			fmt.Fprint(&w, exc)
			t.Error(w.String())
			return
		}
		t.Errorf("%s produced wrong result; got %v (err %v), output %q", name, r, err, out.String())
	}
}

// PassEqual returns a Pass function for a ProgramTestCase that predicates on
// equality according to want's __eq__. If an error occurred, the predicate
// returns false.
func PassEqual(want coco.Object) func(coco.Object, error, string) bool {
	return func(result coco.Object, err error, output string) bool {
		if err != nil || result == nil {
			return false
		}
		return Equal(want, result)
	}
}

// PassOutput returns a Pass function for a ProgramTestCase that predicates on
// the program printing exactly want without raising.
func PassOutput(want string) func(coco.Object, error, string) bool {
	return func(result coco.Object, err error, output string) bool {
		return err == nil && output == want
	}
}

// PassKind returns a Pass function for a ProgramTestCase that returns true
// iff the program raised an exception of the given kind.
func PassKind(want coco.Kind) func(coco.Object, error, string) bool {
	return func(result coco.Object, err error, output string) bool {
		exc, ok := err.(*coco.Exception)
		return ok && exc.Kind == want
	}
}

// PassSuccess returns a Pass function for a ProgramTestCase that returns true
// iff the program did not raise.
func PassSuccess() func(coco.Object, error, string) bool {
	return func(result coco.Object, err error, output string) bool {
		return err == nil
	}
}

// Equal reports whether a and b compare equal by a's __eq__.
func Equal(a, b coco.Object) bool {
	v, err := a.Invoke(coco.OpEq, b)
	if err != nil {
		return false
	}
	r, ok := v.(*coco.Bool)
	return ok && r.Value
}

// CheckOps is a testing helper to check whether an object supports exactly
// the operations we expect.
func CheckOps(t *testing.T, obj coco.Object, ops []coco.Op) {
	t.Helper()
	checked := make(map[coco.Op]bool, len(ops))
	for _, op := range ops {
		checked[op] = true
		t.Run("Have_"+op.String(), func(t *testing.T) {
			if !obj.Supports(op) {
				t.Fatal("no operation", op)
			}
		})
	}
	for _, op := range obj.Ops() {
		t.Run("Want_"+op.String(), func(t *testing.T) {
			if !checked[op] {
				t.Fatal("unexpected operation", op)
			}
		})
	}
}

// CheckException is a testing helper to check that err is an exception of
// the given kind whose message contains each of the given substrings.
func CheckException(t *testing.T, err error, kind coco.Kind, contains ...string) {
	t.Helper()
	exc, ok := err.(*coco.Exception)
	if !ok {
		t.Fatalf("expected %v, got %T (%v)", kind, err, err)
	}
	if exc.Kind != kind {
		t.Errorf("wrong exception kind: expected %v, have %v (%s)", kind, exc.Kind, exc)
	}
	for _, s := range contains {
		if !strings.Contains(exc.Error(), s) {
			t.Errorf("exception %q does not mention %q", exc.Error(), s)
		}
	}
}
