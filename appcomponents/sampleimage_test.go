//go:build !wasm
// +build !wasm

package appcomponents

import (
	"testing"

	"github.com/vcrobe/jokepage/joke"
	"github.com/vcrobe/jokepage/testcomponents"
)

// TestSampleImage_InstanceSurvivesReRender verifies that JokeCard's image
// child is created once and reused on every re-render.
func TestSampleImage_InstanceSurvivesReRender(t *testing.T) {
	// Arrange
	card := newCard(0, 1, 2)
	renderer := testcomponents.NewTestRenderer(card)
	renderer.RenderRoot()

	first, ok := renderer.Child(sampleImageKey).(*SampleImage)
	if !ok {
		t.Fatalf("Expected a *SampleImage child under '%s', got %T", sampleImageKey, renderer.Child(sampleImageKey))
	}

	// Act
	card.NextJoke()
	card.NextJoke()

	// Assert
	if renderer.Child(sampleImageKey) != first {
		t.Error("Expected the same SampleImage instance after re-renders")
	}
	img := renderer.GetCurrentVDOM().FindByID(joke.ImageID)
	if img == nil || img.Attributes["src"] != joke.SampleImageSrc {
		t.Errorf("Expected image with src '%s', got %+v", joke.SampleImageSrc, img)
	}
}

// TestSampleImage_ApplyProps verifies that a changed ImageSrc reaches the
// preserved child on the next render.
func TestSampleImage_ApplyProps(t *testing.T) {
	card := newCard(0)
	renderer := testcomponents.NewTestRenderer(card)
	renderer.RenderRoot()
	first := renderer.Child(sampleImageKey)

	card.ImageSrc = "assets/other.svg"
	card.NextJoke()

	if renderer.Child(sampleImageKey) != first {
		t.Error("Expected the same SampleImage instance after a prop change")
	}
	img := renderer.GetCurrentVDOM().FindByID(joke.ImageID)
	if got := img.Attributes["src"]; got != "assets/other.svg" {
		t.Errorf("Expected src 'assets/other.svg', got '%v'", got)
	}

	card.ImageSrc = ""
	card.NextJoke()

	img = renderer.GetCurrentVDOM().FindByID(joke.ImageID)
	if got := img.Attributes["src"]; got != joke.SampleImageSrc {
		t.Errorf("Expected src to fall back to '%s', got '%v'", joke.SampleImageSrc, got)
	}
}

func TestSampleImage_Defaults(t *testing.T) {
	img := &SampleImage{Alt: "Smiley"}
	renderer := testcomponents.NewTestRenderer(img)

	vnode := renderer.RenderRoot()

	if vnode.Attributes["src"] != joke.SampleImageSrc {
		t.Errorf("Expected src '%s', got '%v'", joke.SampleImageSrc, vnode.Attributes["src"])
	}
	if vnode.Attributes["alt"] != "Smiley" {
		t.Errorf("Expected alt 'Smiley', got '%v'", vnode.Attributes["alt"])
	}
	if vnode.ID() != joke.ImageID {
		t.Errorf("Expected id '%s', got '%s'", joke.ImageID, vnode.ID())
	}
}
