package coco

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExceptionMatch(t *testing.T) {
	vm := TestingVM()
	e := vm.NewExceptionf(KindIllegalOperation, "x")
	cases := []struct {
		name string
		arg  Object
		want bool
	}{
		{"OwnType", e.Type(), true},
		{"Self", e, true},
		{"SameKind", vm.NewExceptionf(KindIllegalOperation, "y"), true},
		{"OtherKind", vm.NewExceptionf(KindException, "x"), false},
		{"StopIteration", vm.NewExceptionf(KindStopIteration, "x"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := e.Match(c.arg)
			if err != nil {
				t.Fatal(err)
			}
			if r != c.want {
				t.Errorf("expected %t, have %t", c.want, r)
			}
		})
	}
	for _, arg := range []Object{vm.NewStr("Exception"), vm.NewInt(1), vm.Type(IntType)} {
		t.Run("Mismatch_"+arg.Type().Name, func(t *testing.T) {
			_, err := e.Match(arg)
			CheckException(t, err, KindIllegalOperation, "Exception match type mismatch. Expected Exception Object got "+arg.String())
		})
	}
}

func TestExceptionPayload(t *testing.T) {
	vm := TestingVM()
	e := vm.NewException(KindParse, nil)
	if _, ok := e.Value.(*None); !ok {
		t.Errorf("nil payload became %v", e.Value)
	}
	e = vm.NewExceptionf(KindEmptyStack, "Attempt to pop empty stack.")
	if e.Error() != "Attempt to pop empty stack." || e.String() != e.Error() {
		t.Errorf("wrong message %q", e.Error())
	}
	var err error = fmt.Errorf("wrapped: %w", e)
	var got *Exception
	if !errors.As(err, &got) || got != e {
		t.Error("exception does not unwrap")
	}
	if vm.AsException(err) != e {
		t.Error("AsException did not find the wrapped exception")
	}
	other := vm.AsException(errors.New("disk full"))
	if other.Kind != KindException || other.String() != "disk full" {
		t.Errorf("AsException of a Go error = %v %v", other.Kind, other)
	}
}

func TestKindNames(t *testing.T) {
	want := []string{"Exception", "EmptyStackException", "ParseException", "IllegalOperationException", "WrongArgCountException", "StopIterationException", "MatchException"}
	var got []string
	for k := KindException; k <= KindMatch; k++ {
		got = append(got, k.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong kind names (-want +got):\n%s", diff)
	}
}

// TestTraceback tests that frames appended while unwinding A → B → C are
// reported innermost first.
func TestTraceback(t *testing.T) {
	vm := TestingVM()
	a, b, c := newTestFrame("A", 3), newTestFrame("B", 5), newTestFrame("C", 1)
	call := func(f Frame, next func() error) error {
		if err := vm.PushFrame(f); err != nil {
			return err
		}
		err := next()
		vm.PopFrame()
		if err != nil {
			var exc *Exception
			if errors.As(err, &exc) {
				exc.AppendFrame(f)
			}
		}
		return err
	}
	raise := func() error { return vm.NewExceptionf(KindException, "boom") }
	err := call(a, func() error {
		return call(b, func() error {
			return call(c, raise)
		})
	})
	exc, ok := err.(*Exception)
	if !ok {
		t.Fatalf("expected an exception, got %v", err)
	}
	var names []string
	for _, f := range exc.Traceback() {
		names = append(names, f.Code().Name())
	}
	if diff := cmp.Diff([]string{"C", "B", "A"}, names); diff != "" {
		t.Errorf("wrong traceback (-want +got):\n%s", diff)
	}
	if vm.Depth() != 0 {
		t.Errorf("frames left on the stack: %d", vm.Depth())
	}
	var w strings.Builder
	if err := exc.WriteTraceback(&w); err != nil {
		t.Fatal(err)
	}
	want := "=========> At PC=0 in this function.\nFunction: C/0\n" +
		"=========> At PC=4 in this function.\nFunction: B/0\n" +
		"=========> At PC=2 in this function.\nFunction: A/0\n"
	if diff := cmp.Diff(want, w.String()); diff != "" {
		t.Errorf("wrong rendering (-want +got):\n%s", diff)
	}
	tb := exc.Traceback()
	tb[0] = nil
	if exc.Traceback()[0] == nil {
		t.Error("Traceback exposes the exception's frames")
	}
}

func TestWriteUncaught(t *testing.T) {
	vm := TestingVM()
	e := vm.NewExceptionf(KindIllegalOperation, "TypeError: nope")
	e.AppendFrame(newTestFrame("main", 2))
	var w strings.Builder
	if err := WriteUncaught(&w, e); err != nil {
		t.Fatal(err)
	}
	want := "\n\n" +
		bannerStars + "\n" + bannerTitle + "\n" + bannerStars + "\n" +
		"TypeError: nope\n" +
		bannerDashes + "\n" + bannerTrace + "\n" + bannerDashes + "\n" +
		"=========> At PC=1 in this function.\nFunction: main/0\n" +
		bannerStars + "\n" + bannerTitle + " (See Above)\n" + bannerStars + "\n" +
		"TypeError: nope\n" + bannerStars + "\n"
	if diff := cmp.Diff(want, w.String()); diff != "" {
		t.Errorf("wrong report (-want +got):\n%s", diff)
	}
}
