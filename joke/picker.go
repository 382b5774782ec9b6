package joke

import "math/rand/v2"

// Source yields a uniform index in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource forwards to the top-level math/rand/v2 generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Picker selects jokes uniformly at random. Every call is independent,
// so consecutive picks may repeat.
type Picker struct {
	list List
	src  Source
}

// NewPicker returns a Picker over list. A nil src uses the process-wide
// generator.
func NewPicker(list List, src Source) *Picker {
	if src == nil {
		src = globalSource{}
	}
	return &Picker{list: list, src: src}
}

// Pick returns a random joke from the list.
func (p *Picker) Pick() string {
	return p.list.At(p.src.IntN(p.list.Len()))
}

// List returns the list the picker draws from.
func (p *Picker) List() List {
	return p.list
}
