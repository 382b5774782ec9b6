package appcomponents

import (
	"github.com/vcrobe/jokepage/joke"
	"github.com/vcrobe/jokepage/runtime"
	"github.com/vcrobe/jokepage/vdom"
)

const defaultImageAlt = "Sample image"

// SampleImage renders the page's sample image. JokeCard renders it as a
// keyed child, so one instance lives across card re-renders and receives new
// props through ApplyProps.
type SampleImage struct {
	runtime.ComponentBase

	// Src defaults to joke.SampleImageSrc.
	Src string
	// Alt defaults to "Sample image".
	Alt string

	src string
	alt string
}

// ApplyProps copies Src and Alt from a freshly built SampleImage.
func (s *SampleImage) ApplyProps(from runtime.Component) {
	if next, ok := from.(*SampleImage); ok {
		s.Src = next.Src
		s.Alt = next.Alt
	}
}

// OnParametersSet resolves defaults for the current props.
func (s *SampleImage) OnParametersSet() {
	s.src = s.Src
	if s.src == "" {
		s.src = joke.SampleImageSrc
	}
	s.alt = s.Alt
	if s.alt == "" {
		s.alt = defaultImageAlt
	}
}

// Render implements runtime.Component.
func (s *SampleImage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Image(s.src, s.alt, map[string]any{"id": joke.ImageID})
}
