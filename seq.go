package coco

import (
	"strings"

	"github.com/zephyrtronium/contains"
)

// sequence is a container whose rendering and equality look through to its
// elements.
type sequence interface {
	Object
	elems() []Object
}

// cycleGuard tracks the pairs of containers on the current traversal path.
// Rendering enters each container paired with itself.
type cycleGuard struct {
	// entered holds the left id of every pair ever entered, so that most
	// checks can skip scanning path.
	entered contains.Set
	path    [][2]uintptr
}

// enter pushes the pair (a, b) onto the path. It returns false without
// pushing if the pair is already on the path.
func (g *cycleGuard) enter(a, b Object) bool {
	p := [2]uintptr{a.UniqueID(), b.UniqueID()}
	if !g.entered.Add(p[0]) {
		for _, q := range g.path {
			if q == p {
				return false
			}
		}
	}
	g.path = append(g.path, p)
	return true
}

// leave pops the most recently entered pair.
func (g *cycleGuard) leave() {
	g.path = g.path[:len(g.path)-1]
}

// renderSeq writes the elements of s in repr form between brackets. A
// container that encloses itself is shown as [...] where it recurs.
func renderSeq(b *strings.Builder, s sequence, g *cycleGuard) {
	if !g.enter(s, s) {
		b.WriteString("[...]")
		return
	}
	b.WriteByte('[')
	for i, item := range s.elems() {
		if i > 0 {
			b.WriteString(", ")
		}
		switch x := item.(type) {
		case sequence:
			renderSeq(b, x, g)
		case *Str:
			b.WriteString(quote(x.Value))
		default:
			b.WriteString(item.String())
		}
	}
	b.WriteByte(']')
	g.leave()
}

// seqEq creates the __eq__ method of a sequence. Sequences are equal when
// they have the same type and their elements are pairwise equal.
func (vm *VM) seqEq(self sequence) Method {
	return func(args []Object) (Object, error) {
		if err := vm.CheckArgs(args, 1); err != nil {
			return nil, err
		}
		r, ok := args[0].(sequence)
		if !ok || r.Type() != self.Type() {
			return vm.NewBool(false), nil
		}
		t, err := vm.seqEqual(self, r, &cycleGuard{})
		if err != nil {
			return nil, err
		}
		return vm.NewBool(t), nil
	}
}

// seqEqual compares a and b element by element. A pair of containers whose
// comparison is already in progress further up counts as equal, so that
// comparing cyclic structures terminates.
func (vm *VM) seqEqual(a, b sequence, g *cycleGuard) (bool, error) {
	if a == b {
		return true, nil
	}
	x, y := a.elems(), b.elems()
	if len(x) != len(y) {
		return false, nil
	}
	if !g.enter(a, b) {
		return true, nil
	}
	defer g.leave()
	for i, u := range x {
		v := y[i]
		if s, ok := u.(sequence); ok {
			t, ok := v.(sequence)
			if !ok || s.Type() != t.Type() {
				return false, nil
			}
			e, err := vm.seqEqual(s, t, g)
			if err != nil || !e {
				return false, err
			}
			continue
		}
		if !u.Supports(OpEq) {
			if u != v {
				return false, nil
			}
			continue
		}
		e, err := u.Invoke(OpEq, v)
		if err != nil {
			return false, err
		}
		t, err := vm.Truth(e)
		if err != nil || !t {
			return false, err
		}
	}
	return true, nil
}
