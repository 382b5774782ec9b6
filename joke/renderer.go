package joke

import (
	"errors"
	"fmt"

	"github.com/vcrobe/jokepage/dom"
)

// Stable element identifiers used by the page shell.
const (
	TextID   = "jokeText"
	ButtonID = "jokeBtn"
	ImageID  = "sampleImage"
)

// SampleImageSrc is the image assigned to ImageID at load.
const SampleImageSrc = "assets/sample.svg"

// ErrTargetNotFound reports that an element the page logic writes to or
// listens on is missing from the document.
var ErrTargetNotFound = errors.New("target element not found")

// Renderer writes random jokes into the display element of a document.
type Renderer struct {
	doc      dom.Document
	picker   *Picker
	list     List
	src      Source
	targetID string
	imageSrc string
	release  []func()
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithList replaces the Default list.
func WithList(l List) Option {
	return func(r *Renderer) { r.list = l }
}

// WithSource pins the random source, mostly for tests.
func WithSource(src Source) Option {
	return func(r *Renderer) { r.src = src }
}

// WithTargetID changes the display element id (TextID by default).
func WithTargetID(id string) Option {
	return func(r *Renderer) { r.targetID = id }
}

// WithImageSrc changes the sample image path assigned by Attach.
func WithImageSrc(src string) Option {
	return func(r *Renderer) { r.imageSrc = src }
}

// NewRenderer creates a Renderer bound to doc.
func NewRenderer(doc dom.Document, opts ...Option) *Renderer {
	r := &Renderer{
		doc:      doc,
		list:     Default,
		targetID: TextID,
		imageSrc: SampleImageSrc,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.picker = NewPicker(r.list, r.src)
	return r
}

// Render picks a joke and writes it into the display element. It returns the
// joke written, or ErrTargetNotFound when the element is absent, in which
// case nothing in the document changes.
func (r *Renderer) Render() (string, error) {
	el, ok := r.doc.ElementByID(r.targetID)
	if !ok {
		return "", fmt.Errorf("%w: #%s", ErrTargetNotFound, r.targetID)
	}
	joke := r.picker.Pick()
	el.SetText(joke)
	return joke, nil
}

// RenderRandomJoke is Render with the error dropped. It is the handler used
// for the load and click triggers: a missing display element is a no-op.
func (r *Renderer) RenderRandomJoke() {
	_, _ = r.Render()
}

// Attach performs the page-load wiring: one render, the sample image source,
// and a click subscription on the button. Missing elements skip their step
// only. The returned error joins one ErrTargetNotFound per missing element
// and is meant for logging, never for aborting the page.
func (r *Renderer) Attach() error {
	var errs []error

	if _, err := r.Render(); err != nil {
		errs = append(errs, err)
	}

	if img, ok := r.doc.ElementByID(ImageID); ok {
		img.SetAttribute("src", r.imageSrc)
	} else {
		errs = append(errs, fmt.Errorf("%w: #%s", ErrTargetNotFound, ImageID))
	}

	if btn, ok := r.doc.ElementByID(ButtonID); ok {
		r.release = append(r.release, btn.OnClick(r.RenderRandomJoke))
	} else {
		errs = append(errs, fmt.Errorf("%w: #%s", ErrTargetNotFound, ButtonID))
	}

	return errors.Join(errs...)
}

// Detach removes the click subscriptions made by Attach.
func (r *Renderer) Detach() {
	for _, release := range r.release {
		release()
	}
	r.release = nil
}
