package ui

import (
	"regexp"
	"strings"
	"testing"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;<>?]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestTruncateText(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{"hello", 0, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "h"},
	}
	for _, tc := range cases {
		if got := truncateText(tc.text, tc.width); got != tc.want {
			t.Fatalf("truncateText(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}

func TestLimitHeightAddsEllipsis(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 10)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("unexpected lines %+v", got)
	}
	if got := limitHeight(lines, 0, 10); len(got) != 3 {
		t.Fatalf("expected no limit for zero height")
	}
}

func TestRenderLinesMarksZones(t *testing.T) {
	lines := []styledLine{{text: "row", zoneID: "z"}, {text: "plain"}}
	out := renderLines(lines, func(id, text string) string { return "<" + id + ">" + text })
	if out != "<z>row\nplain" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLessonRowsAreAligned(t *testing.T) {
	m := newTestModel(Options{})
	var rows []string
	for _, line := range strings.Split(stripANSI(m.View()), "\n") {
		if strings.HasPrefix(line, "▌ [ Lesson") {
			rows = append(rows, line)
		}
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 lesson rows, got %d", len(rows))
	}
	col := strings.Index(rows[0], "Models")
	if col < 0 || strings.Index(rows[1], "Commands") != col || strings.Index(rows[2], "Composing") != col {
		t.Fatalf("expected descriptions aligned:\n%s", strings.Join(rows, "\n"))
	}
}

func TestFooterShowsHelp(t *testing.T) {
	m := newTestModel(Options{ShowFooter: true})
	out := stripANSI(m.View())
	if !strings.Contains(out, "tab") || !strings.Contains(out, "quit") {
		t.Fatalf("expected key help in footer:\n%s", out)
	}
	m = newTestModel(Options{})
	if strings.Contains(stripANSI(m.View()), "ctrl+c quit") {
		t.Fatalf("expected no footer when disabled")
	}
}

func TestResultLineEmptyUntilSuccess(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	if strings.Contains(stripANSI(h.View()), "healthcheck:") {
		t.Fatalf("expected empty result line")
	}
	h.Key("tab")
	h.Key("enter")
	if !strings.Contains(stripANSI(h.View()), "healthcheck: ok") {
		t.Fatalf("expected result line:\n%s", h.View())
	}
}
