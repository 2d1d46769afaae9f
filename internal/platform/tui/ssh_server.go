package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-concentration/internal/core"
	"github.com/vovakirdan/tui-concentration/internal/games/concentration"
	"github.com/vovakirdan/tui-concentration/internal/registry"
	"github.com/vovakirdan/tui-concentration/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Logger receives server and session events. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/concentration.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server for the game.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "concentration-ssh",
		})
	}

	if _, err := concentration.LoadConfig(); err != nil {
		logger.Warn("invalid game config, using defaults", "error", err)
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, cfg, sshSession.User())
	model.logger = s.logger.With("session", model.SessionID())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// configurable is implemented by games that take a per-session
// difficulty and theme.
type configurable interface {
	Configure(difficulty, theme string)
}

// sessionState is the screen a session is showing.
type sessionState int

const (
	stateMenu sessionState = iota
	stateSelector
	stateGame
	stateScoreboard
)

// SessionModel manages the full session flow:
// menu -> selector -> game -> menu, with the scoreboard off the menu.
// This is the top-level model used for SSH sessions.
//
// Sub-models end their own programs with tea.Quit when run standalone.
// The session swallows those commands and switches screens instead.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	username   string
	sessionID  string
	logger     *log.Logger
	state      sessionState
	menu       MenuModel
	selector   SelectorModel
	scoreboard ScoreboardModel
	gameModel  *Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		store:     store,
		config:    cfg,
		username:  username,
		sessionID: uuid.New().String(),
		menu:      NewMenuModel(store, cfg),
	}
}

// SessionID returns the unique id of this session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateSelector:
		return m.updateSelector(msg)
	case stateGame:
		return m.updateGame(msg)
	case stateScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.menu.WantsScoreboard():
		m.state = stateScoreboard
		m.scoreboard = NewScoreboardModel(m.store, concentration.ID, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.WantsPlay():
		m.state = stateSelector
		m.selector = NewSelectorModel(concentration.DefaultDifficulty(), concentration.ThemeNames(),
			m.config.ScreenW, m.config.ScreenH)
		return m, m.selector.Init()
	}

	return m, cmd
}

// updateSelector handles updates while choosing difficulty and theme.
func (m SessionModel) updateSelector(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSel, cmd := m.selector.Update(msg)
	if sel, ok := newSel.(SelectorModel); ok {
		m.selector = sel
	}

	switch {
	case m.selector.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.selector.WantsBack():
		return m.toMenu()
	}

	if choice := m.selector.Selected(); choice != nil {
		game, err := registry.Create(concentration.ID)
		if err != nil {
			return m.toMenu()
		}
		if c, ok := game.(configurable); ok {
			c.Configure(string(choice.Difficulty), choice.Theme)
		}
		if m.logger != nil {
			m.logger.Debug("game selected", "user", m.username,
				"difficulty", choice.Difficulty, "theme", choice.Theme)
		}
		return m.startGame(game)
	}

	return m, cmd
}

// startGame switches the session to a fresh game.
func (m SessionModel) startGame(game registry.Game) (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	gameModel := newEmbeddedModel(game, m.store, m.config, m.logger)
	m.gameModel = &gameModel
	m.state = stateGame
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

// updateScoreboard handles updates while the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// toMenu resets the session back to a fresh menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateSelector:
		return m.selector.View()
	case stateGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case stateScoreboard:
		return m.scoreboard.View()
	}

	return m.menu.View()
}
