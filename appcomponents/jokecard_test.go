//go:build !wasm
// +build !wasm

package appcomponents

import (
	"testing"

	"github.com/vcrobe/jokepage/joke"
	"github.com/vcrobe/jokepage/testcomponents"
)

// fixedSource returns preset indexes in order, wrapping around.
type fixedSource struct {
	vals []int
	i    int
}

func (s *fixedSource) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func newCard(vals ...int) *JokeCard {
	return NewJokeCard(joke.NewPicker(joke.MustList("A", "B", "C"), &fixedSource{vals: vals}))
}

// TestJokeCard_InitialRender verifies the card structure and that a joke is
// picked before the first render.
func TestJokeCard_InitialRender(t *testing.T) {
	// Arrange
	card := newCard(1)
	renderer := testcomponents.NewTestRenderer(card)

	// Act
	vnode := renderer.RenderRoot()

	// Assert
	if vnode.Tag != "div" {
		t.Errorf("Expected root tag 'div', got '%s'", vnode.Tag)
	}
	if len(vnode.Children) != 4 {
		t.Fatalf("Expected 4 children, got %d", len(vnode.Children))
	}

	text := vnode.FindByID(joke.TextID)
	if text == nil {
		t.Fatalf("Expected an element with id '%s'", joke.TextID)
	}
	if text.Content != "B" {
		t.Errorf("Expected joke 'B', got '%s'", text.Content)
	}

	img := vnode.FindByID(joke.ImageID)
	if img == nil || img.Attributes["src"] != joke.SampleImageSrc {
		t.Errorf("Expected image with src '%s', got %+v", joke.SampleImageSrc, img)
	}

	btn := vnode.FindByID(joke.ButtonID)
	if btn == nil || btn.OnClick == nil {
		t.Fatal("Expected button with click handler")
	}
}

// TestJokeCard_ThreeClicks verifies that each click re-renders with a freshly
// picked joke and that repeats are allowed.
func TestJokeCard_ThreeClicks(t *testing.T) {
	card := newCard(0, 2, 2, 1)
	renderer := testcomponents.NewTestRenderer(card)
	renderer.RenderRoot()

	want := []string{"C", "C", "B"}
	for i, w := range want {
		// The handler captured by the latest render is what the browser calls.
		renderer.GetCurrentVDOM().FindByID(joke.ButtonID).OnClick()

		got := renderer.GetCurrentVDOM().FindByID(joke.TextID).Content
		if got != w {
			t.Errorf("After click %d, expected '%s', got '%s'", i+1, w, got)
		}
	}

	if renderer.RenderCount() != 4 {
		t.Errorf("Expected 4 renders (initial + 3 clicks), got %d", renderer.RenderCount())
	}
}

func TestJokeCard_DefaultPicker(t *testing.T) {
	card := &JokeCard{ImageSrc: "custom.svg"}
	renderer := testcomponents.NewTestRenderer(card)

	vnode := renderer.RenderRoot()

	if got := vnode.FindByID(joke.TextID).Content; !joke.Default.Contains(got) {
		t.Errorf("Expected a joke from the default list, got '%s'", got)
	}
	if got := vnode.FindByID(joke.ImageID).Attributes["src"]; got != "custom.svg" {
		t.Errorf("Expected src 'custom.svg', got '%v'", got)
	}
}

// TestJokeCard_Unmounted verifies NextJoke updates state without a renderer.
func TestJokeCard_Unmounted(t *testing.T) {
	card := newCard(2)

	card.NextJoke()

	if card.Joke != "C" {
		t.Errorf("Expected joke 'C', got '%s'", card.Joke)
	}
	if card.Mounted() {
		t.Error("Card should not report mounted")
	}
}
