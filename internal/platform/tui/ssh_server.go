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

	"github.com/vovakirdan/tui-graveyard/internal/core"
	"github.com/vovakirdan/tui-graveyard/internal/registry"
	"github.com/vovakirdan/tui-graveyard/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// SSHServerConfig configures the SSH server.
type SSHServerConfig struct {
	Address string // listen address, ":23234" by default

	// HostKeyPath defaults to ~/.graveyard/host_key. Wish generates the key
	// on first start.
	HostKeyPath string

	DBPath      string
	IdleTimeout time.Duration

	// Level skips the menu and starts every session in this level.
	Level string

	TickRate int
	KeyHold  int

	// Logger receives session events. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns the stock server settings.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.graveyard/runs.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultConfig().TickRate,
	}
}

// sessionServer is the part of *ssh.Server the lifecycle methods use.
type sessionServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// SSHServer gives every SSH connection its own graveyard session. All
// sessions share one run history database.
type SSHServer struct {
	config SSHServerConfig
	server sessionServer
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer validates cfg and prepares the server without listening yet.
// A run database that cannot be opened only disables run history.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Level != "" && !registry.Exists(cfg.Level) {
		return nil, fmt.Errorf("unknown level %q", cfg.Level)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "graveyard-ssh"})
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{config: cfg, logger: cfg.Logger}
	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		s.logger.Warn("run history disabled", "db", cfg.DBPath, "err", err)
		s.store = nil
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newProgram),
			s.logSessions,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("create ssh server: %w", err)
	}
	s.server = server
	return s, nil
}

// hostKeyPath resolves the host key location and makes sure its directory
// exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home directory: %w", err)
		}
		path = filepath.Join(home, ".graveyard", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("create host key directory: %w", err)
	}
	return path, nil
}

// newProgram builds the session model for one connection. Connections
// without a PTY are refused.
func (s *SSHServer) newProgram(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("rejecting session without pty", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	model := NewSessionModel(cfg, s.config.Level, Options{
		Store:   s.store,
		Player:  sess.User(),
		KeyHold: s.config.KeyHold,
		Logger:  s.logger.With("user", sess.User()),
	})
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		started := time.Now()
		l.Info("session started")
		next(sess)
		l.Info("session ended", "duration", time.Since(started).Round(time.Second))
	}
}

// ListenAndServe serves until SIGINT or SIGTERM arrives or the listener
// fails, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("listening", "address", s.config.Address, "level", s.config.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown()
	case err := <-errc:
		s.logger.Error("server stopped", "err", err)
		_ = s.Shutdown()
		return err
	}
}

// Shutdown drains open sessions, waiting at most shutdownTimeout, and then
// releases the run database so runs that end during the drain are saved.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
