package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCheck_Embedded(t *testing.T) {
	out, err := runCmd(t, "check")
	if err != nil {
		t.Fatalf("Unexpected error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "index.html: static ok") {
		t.Errorf("Expected index.html to pass, got:\n%s", out)
	}
	if !strings.Contains(out, "card.html: component ok") {
		t.Errorf("Expected card.html to pass, got:\n%s", out)
	}
}

func TestCheck_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	if err := os.WriteFile(path, []byte(`<body><p id="jokeText"></p></body>`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, "check", path)

	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("Expected errCheckFailed, got %v", err)
	}
	if !strings.Contains(out, "missing #jokeBtn, #sampleImage") {
		t.Errorf("Expected missing ids in output, got:\n%s", out)
	}
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := runCmd(t, "check", filepath.Join(t.TempDir(), "nope.html"))

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestRoot_BadLogLevel(t *testing.T) {
	_, err := runCmd(t, "--log-level", "loud", "check")

	if err == nil {
		t.Error("Expected an error for an invalid log level")
	}
}
