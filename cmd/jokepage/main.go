//go:build js || wasm
// +build js wasm

// Command jokepage is the WebAssembly entry point for the joke page.
//
// Pages that provide a "#app" mount get the JokeCard component. Pages with
// static markup (jokeText, jokeBtn, sampleImage) are wired in place.
package main

import (
	"github.com/vcrobe/jokepage/appcomponents"
	"github.com/vcrobe/jokepage/console"
	"github.com/vcrobe/jokepage/dom/jsdom"
	"github.com/vcrobe/jokepage/joke"
	"github.com/vcrobe/jokepage/runtime"
)

const mountID = "app"

func main() {
	doc := jsdom.Global()

	if _, ok := doc.ElementByID(mountID); ok {
		renderer := runtime.NewRenderer("#" + mountID)
		renderer.SetCurrentComponent(appcomponents.NewJokeCard(joke.NewPicker(joke.Default, nil)))
		renderer.RenderRoot()
	} else {
		r := joke.NewRenderer(doc)
		if err := r.Attach(); err != nil {
			console.Warn("page wiring incomplete:", err)
		}
	}

	// Keep the Go program running so click callbacks stay alive.
	select {}
}
