package joke

import "errors"

// ErrEmptyList is returned when a List is built without any entries.
var ErrEmptyList = errors.New("joke list must not be empty")

// List is a fixed, ordered sequence of jokes. The zero value is not usable;
// build one with NewList or use Default.
type List struct {
	entries []string
}

// NewList copies entries into a new List. It fails with ErrEmptyList when
// no entries are given.
func NewList(entries ...string) (List, error) {
	if len(entries) == 0 {
		return List{}, ErrEmptyList
	}
	cp := make([]string, len(entries))
	copy(cp, entries)
	return List{entries: cp}, nil
}

// MustList is like NewList but panics on error. Intended for package-level
// constant lists.
func MustList(entries ...string) List {
	l, err := NewList(entries...)
	if err != nil {
		panic(err)
	}
	return l
}

// Len returns the number of jokes.
func (l List) Len() int {
	return len(l.entries)
}

// At returns the joke at index i. It panics when i is out of range.
func (l List) At(i int) string {
	return l.entries[i]
}

// Entries returns a copy of all jokes in order.
func (l List) Entries() []string {
	cp := make([]string, len(l.entries))
	copy(cp, l.entries)
	return cp
}

// Contains reports whether s is one of the jokes.
func (l List) Contains(s string) bool {
	for _, e := range l.entries {
		if e == s {
			return true
		}
	}
	return false
}

// Default is the list shipped with the page.
var Default = MustList(
	"Why do programmers prefer dark mode? Because light attracts bugs.",
	"There are 10 kinds of people: those who understand binary and those who don't.",
	"A SQL query walks into a bar, goes up to two tables and asks: can I join you?",
	"Why did the gopher cross the road? To get to the other side of the goroutine.",
	"I would tell you a UDP joke, but you might not get it.",
	"Debugging: removing the needles from the haystack you put there yourself.",
	"To understand recursion, you must first understand recursion.",
	"Why was the JavaScript developer sad? Because they didn't Node how to Express themselves.",
)
