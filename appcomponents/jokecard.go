// Package appcomponents holds the page's components.
package appcomponents

import (
	"github.com/vcrobe/jokepage/joke"
	"github.com/vcrobe/jokepage/runtime"
	"github.com/vcrobe/jokepage/vdom"
)

const sampleImageKey = "sampleImage"

// JokeCard renders a joke, a button that replaces it and the sample image.
// It uses the same element ids as the static page so stylesheets and
// tooling work for both.
type JokeCard struct {
	runtime.ComponentBase

	// Picker chooses jokes. Nil means the default list and random source.
	Picker *joke.Picker
	// ImageSrc is passed to the SampleImage child; empty means
	// joke.SampleImageSrc.
	ImageSrc string

	Joke string
}

// NewJokeCard creates a card drawing from p.
func NewJokeCard(p *joke.Picker) *JokeCard {
	return &JokeCard{Picker: p}
}

// OnInit picks the joke shown on first render.
func (c *JokeCard) OnInit() {
	c.Joke = c.picker().Pick()
}

// NextJoke picks a new joke and re-renders. The same joke may come up twice
// in a row.
func (c *JokeCard) NextJoke() {
	c.Joke = c.picker().Pick()
	c.StateHasChanged()
}

func (c *JokeCard) picker() *joke.Picker {
	if c.Picker == nil {
		c.Picker = joke.NewPicker(joke.Default, nil)
	}
	return c.Picker
}

// Render implements runtime.Component.
func (c *JokeCard) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "joke-card"},
		vdom.Heading(1, "Random Joke", nil),
		vdom.Paragraph(c.Joke, map[string]any{"id": joke.TextID, "class": "joke"}),
		vdom.Button("Get another joke", map[string]any{
			"id":      joke.ButtonID,
			"class":   "btn",
			"onClick": func() { c.NextJoke() },
		}),
		r.RenderChild(sampleImageKey, &SampleImage{Src: c.ImageSrc}),
	)
}
