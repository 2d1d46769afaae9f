package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-concentration/internal/core"
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
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim down", runeKey('j'), core.ActionDown, false},
		{"vim left", runeKey('h'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter flips", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect, false},
		{"space flips", tea.KeyMsg{Type: tea.KeySpace}, core.ActionSelect, false},
		{"shuffle", runeKey('s'), core.ActionShuffle, false},
		{"hint", runeKey('t'), core.ActionHint, false},
		{"hint alias", runeKey('?'), core.ActionHint, false},
		{"esc is back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('s'), &frame) {
		t.Error("shuffle is not a quit request")
	}
	if !frame.Has(core.ActionShuffle) {
		t.Error("shuffle should be recorded in the frame")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should report quit")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name  string
		msg   tea.MouseMsg
		click bool
	}{
		{"left press", tea.MouseMsg{X: 7, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{"left release", tea.MouseMsg{X: 7, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"right press", tea.MouseMsg{X: 7, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false},
		{"motion", tea.MouseMsg{X: 7, Y: 4, Action: tea.MouseActionMotion}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			got := km.MapMouseToFrame(tt.msg, &frame)
			if got != tt.click {
				t.Fatalf("MapMouseToFrame() = %v, want %v", got, tt.click)
			}
			if !tt.click {
				if frame.Click != nil {
					t.Error("no click should be recorded")
				}
				return
			}
			if frame.Click == nil || frame.Click.X != 7 || frame.Click.Y != 4 {
				t.Errorf("click = %+v, want (7, 4)", frame.Click)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
