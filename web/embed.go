// Package web embeds the page shells, stylesheet and images.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Shells lists the embedded page shells that load the wasm module.
var Shells = []string{"index.html", "card.html"}

// Static is the embedded asset tree rooted at static/, ready to serve at '/'.
var Static fs.FS

func init() {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	Static = sub
}
