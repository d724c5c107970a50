package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fpt/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateCCW, false},
		{"a", runeKey('a'), core.ActionRotateCCW, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateCW, false},
		{"d", runeKey('d'), core.ActionRotateCW, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionForward, false},
		{"w", runeKey('w'), core.ActionForward, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionBackward, false},
		{"s", runeKey('s'), core.ActionBackward, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDrop, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tc.msg.String(), action, tc.action)
			}
			if quit != tc.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tc.msg.String(), quit, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrameCountsRepeats(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for range 3 {
		if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame) {
			t.Fatal("up should not quit")
		}
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}

	if got := frame.Count(core.ActionForward); got != 3 {
		t.Errorf("Forward count = %d, expected 3", got)
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be recorded in the frame")
	}
}

func TestHelpListsEveryAction(t *testing.T) {
	keys := DefaultKeyMap()

	seen := 0
	for _, col := range keys.FullHelp() {
		for _, b := range col {
			if len(b.Keys()) == 0 || b.Help().Desc == "" {
				t.Errorf("binding %v lacks keys or help", b.Help())
			}
			seen++
		}
	}
	if seen != 10 {
		t.Errorf("FullHelp lists %d bindings, expected 10", seen)
	}
}

func TestShortHelpFitsDefaultWidth(t *testing.T) {
	h := help.New()
	h.Width = 80

	line := h.View(DefaultKeyMap())
	if strings.Contains(line, "…") {
		t.Errorf("short help truncated at 80 columns: %q", line)
	}
	for _, want := range []string{"←/→ rotate", "↑/↓ move", "space drop", "p pause", "? help", "q quit"} {
		if !strings.Contains(line, want) {
			t.Errorf("short help %q is missing %q", line, want)
		}
	}
}

func TestShortHelpBindingsMatchTheirKeys(t *testing.T) {
	short := DefaultKeyMap().ShortHelp()

	tests := []struct {
		entry int
		msg   tea.KeyMsg
	}{
		{0, tea.KeyMsg{Type: tea.KeyLeft}},
		{0, runeKey('d')},
		{1, tea.KeyMsg{Type: tea.KeyUp}},
		{1, runeKey('s')},
	}

	for _, tc := range tests {
		if !key.Matches(tc.msg, short[tc.entry]) {
			t.Errorf("short help entry %q should match %q", short[tc.entry].Help().Key, tc.msg.String())
		}
	}
}
