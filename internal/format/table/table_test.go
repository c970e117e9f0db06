package table

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatAlignsColumns(t *testing.T) {
	got := Format([][]string{
		{"Lesson 1", "7", "first"},
		{"Lesson 10", "12", "second"},
	}, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"Lesson 1    7  first",
		"Lesson 10  12  second",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatHandlesRaggedRows(t *testing.T) {
	got := Format([][]string{{"a", "bb"}, {"ccc"}}, nil)
	if got[0] != "a    bb" || got[1] != "ccc" {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatMeasuresStyledCells(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("ab")
	got := Format([][]string{{styled, "x"}, {"abc", "y"}}, nil)
	if ansiWidth := len(got[1]); ansiWidth != len("abc  y") {
		t.Fatalf("unexpected plain row %q", got[1])
	}
	if want := styled + "   x"; got[0] != want {
		t.Fatalf("expected %q, got %q", want, got[0])
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
