package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-concentration/internal/games/concentration"
)

func sessionUpdate(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(SessionModel)
	}
	return m, cmd
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := NewSessionModel(nil, testRuntime(), "alice")
	b := NewSessionModel(nil, testRuntime(), "alice")
	if a.SessionID() == "" || a.SessionID() == b.SessionID() {
		t.Errorf("session ids %q and %q", a.SessionID(), b.SessionID())
	}
}

func TestSessionFlow(t *testing.T) {
	isolate(t)
	store := openStore(t)

	m := NewSessionModel(store, testRuntime(), "alice")

	m, cmd := sessionUpdate(t, m, keyEnter)
	if m.state != stateSelector {
		t.Fatalf("state = %v, want selector", m.state)
	}
	if cmd != nil {
		t.Error("the menu's quit command must not reach the session program")
	}

	// Beginner, first theme
	m, _ = sessionUpdate(t, m, keyUp, keyUp, keyEnter)
	m, cmd = sessionUpdate(t, m, keyEnter)
	if m.state != stateGame || m.gameModel == nil {
		t.Fatalf("state = %v, want game", m.state)
	}
	if cmd == nil {
		t.Error("starting a game should start ticking")
	}

	sum := m.gameModel.game.(*concentration.Game).Summary()
	if sum.Variant != "beginner" || sum.Theme != "Fruits" {
		t.Errorf("session game = %+v", sum)
	}

	// Pause, then back to the menu
	m, _ = sessionUpdate(t, m, runeKey('p'), TickMsg{})
	m, cmd = sessionUpdate(t, m, runeKey('b'))
	if m.state != stateMenu || cmd != nil {
		t.Fatalf("back from a paused game should show the menu, state = %v", m.state)
	}
	if m.quitting {
		t.Error("back must not end the session")
	}
}

func TestSessionSelectorBack(t *testing.T) {
	isolate(t)

	m := NewSessionModel(nil, testRuntime(), "bob")
	m, _ = sessionUpdate(t, m, keyEnter, keyEsc)
	if m.state != stateMenu || m.quitting {
		t.Errorf("esc in the selector returns to the menu, state = %v", m.state)
	}
}

func TestSessionScoreboard(t *testing.T) {
	isolate(t)
	store := openStore(t)
	seedScores(t, store)

	m := NewSessionModel(store, testRuntime(), "carol")

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != stateScoreboard {
		t.Fatalf("tab should open the scoreboard, state = %v", m.state)
	}
	if cmd != nil {
		t.Error("the menu's quit command must not reach the session program")
	}
	if len(m.scoreboard.Scores()) != 3 {
		t.Errorf("scoreboard shows %d scores, want 3", len(m.scoreboard.Scores()))
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("session should render the scoreboard")
	}

	m, cmd = sessionUpdate(t, m, keyEsc)
	if m.state != stateMenu || cmd != nil || m.quitting {
		t.Errorf("esc should return to the menu, state = %v", m.state)
	}
}

func TestSessionHighScoresEntry(t *testing.T) {
	isolate(t)
	store := openStore(t)
	seedScores(t, store)

	m := NewSessionModel(store, testRuntime(), "erin")
	m, cmd := sessionUpdate(t, m, keyDown, keyEnter)
	if m.state != stateScoreboard || cmd != nil {
		t.Fatalf("High scores should open the scoreboard, state = %v", m.state)
	}

	m, _ = sessionUpdate(t, m, keyEsc, keyDown, keyDown, keyEnter)
	if !m.quitting {
		t.Error("the Quit entry ends the session")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "dave")
	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu ends the session")
	}
	if m.View() != "" {
		t.Error("a finished session renders nothing")
	}
}

func TestNewSSHServerLogsBrokenConfig(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "concentration.yaml")
	if err := os.WriteFile(path, []byte("board: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	concentration.SetConfigPath(path)
	t.Cleanup(func() { concentration.SetConfigPath("") })

	var buf bytes.Buffer
	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "host_key"),
		DBPath:      filepath.Join(dir, "scores.db"),
		TickRate:    60,
		Logger:      log.New(&buf),
	})
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	t.Cleanup(func() { srv.Shutdown() })

	if !strings.Contains(buf.String(), "invalid game config") {
		t.Errorf("server log = %q", buf.String())
	}
}
