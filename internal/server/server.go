// Package server serves the portfolio over SSH. Every session runs its own
// bubbletea program with its own navigation state.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/tui"
)

const shutdownTimeout = 10 * time.Second

// Server wraps a wish SSH server.
type Server struct {
	addr    string
	srv     *ssh.Server
	log     *logger.Logger
	session tui.Options
	content atomic.Pointer[content.Content]
}

// New builds a server from the SSH settings. session is the template every
// visitor's model is created from; the renderer and clipboard are replaced
// per session.
func New(cfg config.SSHConfig, session tui.Options, log *logger.Logger) (*Server, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("creating host key directory: %w", err)
	}

	s := &Server{
		addr:    net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		log:     log,
		session: session,
	}
	s.content.Store(session.Content)

	opts := []ssh.Option{
		wish.WithAddress(s.addr),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithMiddleware(
			bm.Middleware(s.handler),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(log),
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.MaxTimeout > 0 {
		opts = append(opts, wish.WithMaxTimeout(cfg.MaxTimeout))
	}

	srv, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating ssh server: %w", err)
	}
	s.srv = srv
	return s, nil
}

// SetContent swaps the content new sessions start with. Sessions already
// running keep what they opened with.
func (s *Server) SetContent(c *content.Content) {
	s.content.Store(c)
}

// Content is what the next session will show. Nil means the built-in
// content.
func (s *Server) Content() *content.Content {
	return s.content.Load()
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Listen binds the configured address.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	return ln, nil
}

// Run listens and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts sessions on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.log.Info("ssh server listening", "addr", ln.Addr().String())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := s.srv.Serve(ln)
		switch {
		case err == nil, errors.Is(err, ssh.ErrServerClosed):
			return nil
		case ctx.Err() != nil && errors.Is(err, net.ErrClosed):
			// Stopped before Serve tracked the listener.
			return nil
		default:
			return fmt.Errorf("serving ssh: %w", err)
		}
	})
	g.Go(func() error {
		<-ctx.Done()
		s.log.Info("ssh server stopping")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, net.ErrClosed) {
			s.log.Warn("ssh shutdown incomplete", "error", err.Error())
		}
		// Serve may not have tracked the listener yet.
		_ = ln.Close()
		return nil
	})

	return g.Wait()
}

func (s *Server) handler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	log := s.log.WithFields(map[string]any{
		"user":   sess.User(),
		"remote": sess.RemoteAddr().String(),
	})
	log.Info("session started")

	opts := sessionOptions(s.template(), bm.MakeRenderer(sess), log)
	return tui.New(opts), []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

func (s *Server) template() tui.Options {
	opts := s.session
	opts.Content = s.content.Load()
	return opts
}
