//go:build !wasm
// +build !wasm

package joke

import (
	"math/rand/v2"
	"testing"
)

// seqSource returns preset indexes in order, wrapping around.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func TestPicker_UsesSource(t *testing.T) {
	p := NewPicker(MustList("A", "B", "C"), &seqSource{vals: []int{2, 0, 1}})

	want := []string{"C", "A", "B"}
	for i, w := range want {
		if got := p.Pick(); got != w {
			t.Errorf("Pick %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestPicker_DefaultSourceStaysInList(t *testing.T) {
	l := MustList("A", "B", "C")
	p := NewPicker(l, nil)

	for i := 0; i < 200; i++ {
		if got := p.Pick(); !l.Contains(got) {
			t.Fatalf("Pick returned %q, not a member of %v", got, l.Entries())
		}
	}
}

// TestPicker_Uniform checks that every entry is picked with roughly equal
// frequency. The seed is fixed so the test is deterministic.
func TestPicker_Uniform(t *testing.T) {
	l := MustList("A", "B", "C", "D")
	p := NewPicker(l, rand.New(rand.NewPCG(1, 2)))

	const n = 40000
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		counts[p.Pick()]++
	}

	expected := n / l.Len()
	tolerance := expected / 10
	for _, j := range l.Entries() {
		got := counts[j]
		if got < expected-tolerance || got > expected+tolerance {
			t.Errorf("Entry %q picked %d times, expected %d ± %d", j, got, expected, tolerance)
		}
	}
}
