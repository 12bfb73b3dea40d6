package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"agelife/src/universe"
)

func TestConsoleOutRefresh(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleOut(&buf, false, false)
	g := universe.EmptyGrid(3).Settle([][]int{{0, 0}, {2, 1}})
	c.Refresh(universe.Frame{Grid: g, Number: 7, Ratio: 0.75, Interval: 650 * time.Millisecond, LiveCells: 2})

	lines := strings.Split(buf.String(), "\n")
	want := []string{
		"frame: 7 - ratio: 0.75 - sleep duration(ms): 650",
		" ------",
		"|o     |",
		"|    o |",
		"|      |",
		" ------",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	if !strings.Contains(buf.String(), "p - pause, q - quit") {
		t.Fatal("help is missing")
	}
	if strings.Contains(buf.String(), clearScreen) {
		t.Fatal("screen must not be cleared")
	}
}

func TestConsoleOutClear(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleOut(&buf, true, true).Refresh(universe.Frame{Grid: universe.EmptyGrid(2)})
	if !strings.HasPrefix(buf.String(), clearScreen) {
		t.Fatalf("output does not start with the clear sequence: %q", buf.String())
	}
}
