package coco

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestStackOverflow tests that the push reaching the limit fails and does not
// make its frame active.
func TestStackOverflow(t *testing.T) {
	for _, limit := range []int{2, 10, DefaultRecursionLimit} {
		vm := NewVM(Config{RecursionLimit: limit})
		for i := 1; i < limit; i++ {
			if err := vm.PushFrame(newTestFrame("f", 0)); err != nil {
				t.Fatalf("limit %d: push %d failed: %v", limit, i, err)
			}
		}
		extra := newTestFrame("g", 0)
		err := vm.PushFrame(extra)
		CheckException(t, err, KindIllegalOperation, "Call Stack Overflow.")
		if vm.Depth() != limit-1 {
			t.Errorf("limit %d: depth %d after overflow", limit, vm.Depth())
		}
		if vm.Frames()[0] == Frame(extra) {
			t.Errorf("limit %d: overflowing frame became active", limit)
		}
		for vm.Depth() > 0 {
			vm.PopFrame()
		}
		if err := vm.PushFrame(extra); err != nil {
			t.Errorf("limit %d: push after unwinding failed: %v", limit, err)
		}
	}
}

func TestFrames(t *testing.T) {
	vm := NewVM(DefaultConfig())
	a, b := newTestFrame("a", 1), newTestFrame("b", 1)
	vm.PushFrame(a)
	vm.PushFrame(b)
	got := vm.Frames()
	if len(got) != 2 || got[0] != Frame(b) || got[1] != Frame(a) {
		t.Errorf("wrong frame order: %v", got)
	}
	if f := vm.PopFrame(); f != Frame(b) {
		t.Errorf("popped %v, expected b", f)
	}
	vm.PopFrame()
	defer func() {
		if recover() == nil {
			t.Error("PopFrame on an empty stack did not panic")
		}
	}()
	vm.PopFrame()
}

func TestFaultFromPanic(t *testing.T) {
	divide := func(a, b int) (r interface{}) {
		defer func() { r = recover() }()
		return a / b
	}
	index := func(s []int, i int) (r interface{}) {
		defer func() { r = recover() }()
		return s[i]
	}
	deref := func(p *int) (r interface{}) {
		defer func() { r = recover() }()
		return *p
	}
	f := &Fault{Kind: FaultTerminate}
	cases := []struct {
		name string
		r    interface{}
		want FaultKind
	}{
		{"Divide", divide(1, 0), FaultArithmetic},
		{"Index", index(nil, 1), FaultMemory},
		{"Nil", deref(nil), FaultMemory},
		{"Fault", f, FaultTerminate},
		{"Other", "whatever", FaultAbort},
		{"Error", errors.New("x"), FaultAbort},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if k := FaultFromPanic(c.r).Kind; k != c.want {
				t.Errorf("expected %v, have %v", c.want, k)
			}
		})
	}
	if FaultFromPanic(f) != f {
		t.Error("fault was not returned unchanged")
	}
}

func TestFaultKindNames(t *testing.T) {
	want := []string{
		"Program Execution Aborted",
		"Arithmetic or Overflow Error",
		"Illegal Instruction in Virtual Machine",
		"Execution Interrupted",
		"Illegal Memory Access",
		"Termination Requested",
	}
	var got []string
	for k := FaultAbort; k <= FaultTerminate; k++ {
		got = append(got, k.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong descriptions (-want +got):\n%s", diff)
	}
}

// TestWriteFault tests that a fault report walks every active frame,
// innermost first.
func TestWriteFault(t *testing.T) {
	vm := NewVM(DefaultConfig())
	vm.PushFrame(newTestFrame("outer", 4))
	vm.PushFrame(newTestFrame("inner", 7))
	var w strings.Builder
	if err := vm.WriteFault(&w, &Fault{Kind: FaultInterrupt}); err != nil {
		t.Fatal(err)
	}
	want := "\n\n" +
		bannerStars + "\n" + bannerTitle + "\n" + bannerStars + "\n" +
		"Signal: Execution Interrupted\n" +
		bannerDashes + "\n" + bannerTrace + "\n" + bannerDashes + "\n" +
		"=========> At PC=6 in this function.\nFunction: inner/0\n" +
		"=========> At PC=3 in this function.\nFunction: outer/0\n" +
		bannerStars + "\n"
	if diff := cmp.Diff(want, w.String()); diff != "" {
		t.Errorf("wrong report (-want +got):\n%s", diff)
	}
	if vm.Depth() != 2 {
		t.Errorf("WriteFault changed the stack: depth %d", vm.Depth())
	}
}
