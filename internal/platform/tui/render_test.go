package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/fpt/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(2, 1, "██", core.ColorCyan)
	s.DrawTextColored(4, 1, "▓▓", core.ColorGray)
	s.SetColored(11, 2, '·', core.Color(200))

	got := ansi.Strip(RenderScreen(s))
	if got != s.String() {
		t.Errorf("RenderScreen text = %q, expected %q", got, s.String())
	}
	if strings.Count(got, "\n") != 2 {
		t.Errorf("expected 3 rows, got %q", got)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if styleFor(core.Color(200)).Render("x") != cellStyles[core.ColorDefault].Render("x") {
		t.Error("unknown colors should render with the default style")
	}
}
