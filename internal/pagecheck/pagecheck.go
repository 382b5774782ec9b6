// Package pagecheck verifies that a page shell carries the element ids the
// wasm module looks up.
package pagecheck

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"golang.org/x/net/html"

	"github.com/vcrobe/jokepage/joke"
)

// MountID is the id of the component mount element.
const MountID = "app"

// StaticIDs are the ids a static-markup shell needs.
var StaticIDs = []string{joke.TextID, joke.ButtonID, joke.ImageID}

// Mode says how the wasm module will drive a shell.
type Mode string

const (
	ModeStatic    Mode = "static"
	ModeComponent Mode = "component"
)

// Report is the result of checking one shell.
type Report struct {
	Mode    Mode
	Found   []string
	Missing []string
}

// OK reports whether nothing is missing.
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// Err returns nil when the shell is complete, otherwise one
// joke.ErrTargetNotFound per missing id joined together.
func (r Report) Err() error {
	errs := make([]error, 0, len(r.Missing))
	for _, id := range r.Missing {
		errs = append(errs, fmt.Errorf("%w: #%s", joke.ErrTargetNotFound, id))
	}
	return errors.Join(errs...)
}

// Check parses the HTML in r and reports which of ids are present.
func Check(r io.Reader, ids ...string) (Report, error) {
	present, err := collectIDs(r)
	if err != nil {
		return Report{}, err
	}
	return report(present, ids), nil
}

// CheckShell decides the mode from the markup and checks the ids that mode
// needs: a shell with a mount element is a component shell and needs nothing
// else, any other shell needs StaticIDs.
func CheckShell(r io.Reader) (Report, error) {
	present, err := collectIDs(r)
	if err != nil {
		return Report{}, err
	}
	if present[MountID] {
		rep := report(present, []string{MountID})
		rep.Mode = ModeComponent
		return rep, nil
	}
	rep := report(present, StaticIDs)
	rep.Mode = ModeStatic
	return rep, nil
}

func report(present map[string]bool, ids []string) Report {
	var rep Report
	for _, id := range ids {
		if present[id] {
			rep.Found = append(rep.Found, id)
		} else {
			rep.Missing = append(rep.Missing, id)
		}
	}
	return rep
}

func collectIDs(r io.Reader) (map[string]bool, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	ids := make(map[string]bool)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if i := slices.IndexFunc(n.Attr, func(a html.Attribute) bool { return a.Key == "id" }); i >= 0 {
				ids[n.Attr[i].Val] = true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return ids, nil
}
