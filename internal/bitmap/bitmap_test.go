// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package bitmap

import "testing"

func toPlain(t *testing.T, b *Bitmap) []bool {
	t.Helper()
	out := make([]bool, b.Size())
	for i := uint32(0); i < b.Size(); i++ {
		v, err := b.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		out[i] = v
	}
	return out
}

func TestNewUniform(t *testing.T) {
	for _, size := range []uint32{0, 1, 30, 31, 32, 62, 63, 100, 1000} {
		zeros := New(size, false)
		for i := uint32(0); i < size; i++ {
			v, err := zeros.Get(i)
			if err != nil || v {
				t.Fatalf("size=%d i=%d: expected false, got %v err=%v", size, i, v, err)
			}
		}
		ones := New(size, true)
		for i := uint32(0); i < size; i++ {
			v, err := ones.Get(i)
			if err != nil || !v {
				t.Fatalf("size=%d i=%d: expected true, got %v err=%v", size, i, v, err)
			}
		}
	}
}

func TestSetIdempotent(t *testing.T) {
	b := New(200, false)
	if err := b.Set(77); err != nil {
		t.Fatal(err)
	}
	if err := b.Set(77); err != nil {
		t.Fatal(err)
	}
	v, err := b.Get(77)
	if err != nil || !v {
		t.Fatalf("expected bit 77 set, got %v err=%v", v, err)
	}
	for i := uint32(0); i < 200; i++ {
		if i == 77 {
			continue
		}
		v, err := b.Get(i)
		if err != nil || v {
			t.Fatalf("expected bit %d clear, got %v err=%v", i, v, err)
		}
	}
}

func TestSetAcrossGroupsAndActiveWord(t *testing.T) {
	size := uint32(100) // 3 full 31-bit groups + 7 tail bits
	b := New(size, false)
	positions := []uint32{0, 1, 30, 31, 32, 61, 62, 93, 99}
	for _, p := range positions {
		if err := b.Set(p); err != nil {
			t.Fatalf("Set(%d): %v", p, err)
		}
	}
	want := make(map[uint32]bool)
	for _, p := range positions {
		want[p] = true
	}
	for i := uint32(0); i < size; i++ {
		v, err := b.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if v != want[i] {
			t.Fatalf("bit %d: want %v got %v", i, want[i], v)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	b := New(10, false)
	if err := b.Set(10); err == nil {
		t.Fatal("expected error setting out-of-range bit")
	}
	if _, err := b.Get(10); err == nil {
		t.Fatal("expected error getting out-of-range bit")
	}
}

func TestIterOnesCompleteness(t *testing.T) {
	size := uint32(200)
	b := New(size, false)
	set := []uint32{0, 5, 31, 62, 63, 99, 150, 199}
	for _, p := range set {
		if err := b.Set(p); err != nil {
			t.Fatal(err)
		}
	}

	it, err := b.IterOnes(0, size)
	if err != nil {
		t.Fatal(err)
	}
	var got []uint32
	for {
		idx, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, idx)
	}
	if len(got) != len(set) {
		t.Fatalf("want %d ones, got %d (%v)", len(set), len(got), got)
	}
	for i, v := range got {
		if v != set[i] {
			t.Fatalf("position %d: want %d got %d", i, set[i], v)
		}
	}
}

func TestIterOnesWindow(t *testing.T) {
	b := New(100, false)
	for _, p := range []uint32{5, 40, 90} {
		if err := b.Set(p); err != nil {
			t.Fatal(err)
		}
	}
	it, err := b.IterOnes(10, 95)
	if err != nil {
		t.Fatal(err)
	}
	var got []uint32
	for {
		idx, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, idx)
	}
	want := []uint32{40, 90}
	if len(got) != len(want) {
		t.Fatalf("want %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v got %v", want, got)
		}
	}
}

func TestIterOnesInvalidRange(t *testing.T) {
	b := New(10, false)
	if _, err := b.IterOnes(5, 2); err == nil {
		t.Fatal("expected error for stop < start")
	}
}

func TestAndOrCorrectness(t *testing.T) {
	size := uint32(150)
	a := New(size, false)
	b := New(size, false)
	for _, p := range []uint32{1, 2, 40, 41, 100} {
		if err := a.Set(p); err != nil {
			t.Fatal(err)
		}
	}
	for _, p := range []uint32{2, 3, 40, 101} {
		if err := b.Set(p); err != nil {
			t.Fatal(err)
		}
	}

	and, err := And(a, b)
	if err != nil {
		t.Fatal(err)
	}
	or, err := Or(a, b)
	if err != nil {
		t.Fatal(err)
	}

	for i := uint32(0); i < size; i++ {
		av, _ := a.Get(i)
		bv, _ := b.Get(i)
		andv, _ := and.Get(i)
		orv, _ := or.Get(i)
		if andv != (av && bv) {
			t.Fatalf("AND at %d: want %v got %v", i, av && bv, andv)
		}
		if orv != (av || bv) {
			t.Fatalf("OR at %d: want %v got %v", i, av || bv, orv)
		}
	}
}

func TestAndAssignOrAssignSizeMismatch(t *testing.T) {
	a := New(10, false)
	b := New(20, false)
	if err := a.AndAssign(b); err == nil {
		t.Fatal("expected size mismatch error")
	}
	if err := a.OrAssign(b); err == nil {
		t.Fatal("expected size mismatch error")
	}
}

func TestOrAssignBuildsCandidateLikeUsage(t *testing.T) {
	// Mirrors how PrefixTrie insertion repeatedly ORs bv1 of valid
	// ancestors into one accumulating candidate bitmap.
	size := uint32(64)
	acc := New(size, false)
	parts := []*Bitmap{New(size, false), New(size, false), New(size, false)}
	if err := parts[0].Set(3); err != nil {
		t.Fatal(err)
	}
	if err := parts[1].Set(40); err != nil {
		t.Fatal(err)
	}
	if err := parts[2].Set(63); err != nil {
		t.Fatal(err)
	}
	for _, p := range parts {
		if err := acc.OrAssign(p); err != nil {
			t.Fatal(err)
		}
	}
	for _, want := range []uint32{3, 40, 63} {
		v, err := acc.Get(want)
		if err != nil || !v {
			t.Fatalf("expected bit %d set after accumulation", want)
		}
	}
}
