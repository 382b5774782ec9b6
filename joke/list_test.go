//go:build !wasm
// +build !wasm

package joke

import (
	"errors"
	"testing"
)

func TestNewList_Empty(t *testing.T) {
	_, err := NewList()
	if !errors.Is(err, ErrEmptyList) {
		t.Fatalf("Expected ErrEmptyList, got %v", err)
	}
}

func TestNewList_CopiesInput(t *testing.T) {
	// Arrange
	in := []string{"A", "B", "C"}
	l, err := NewList(in...)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Act: mutate the caller's slice and the returned copy
	in[0] = "changed"
	entries := l.Entries()
	entries[1] = "changed"

	// Assert: the list is unaffected
	if l.At(0) != "A" || l.At(1) != "B" {
		t.Errorf("Expected list to stay [A B C], got %v", l.Entries())
	}
	if l.Len() != 3 {
		t.Errorf("Expected length 3, got %d", l.Len())
	}
}

func TestMustList_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustList() to panic on empty input")
		}
	}()
	MustList()
}

func TestDefault_NonEmpty(t *testing.T) {
	if Default.Len() == 0 {
		t.Fatal("Default list must not be empty")
	}
	for i, j := range Default.Entries() {
		if j == "" {
			t.Errorf("Default entry %d is empty", i)
		}
	}
}

func TestList_Contains(t *testing.T) {
	l := MustList("A", "B")
	if !l.Contains("B") {
		t.Error("Expected Contains(\"B\") to be true")
	}
	if l.Contains("Z") {
		t.Error("Expected Contains(\"Z\") to be false")
	}
}
