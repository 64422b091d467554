package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/server"
)

type serveFlags struct {
	host string
	port int
}

func newServeCmd(root *rootFlags) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over SSH",
		Long: `Start an SSH server. Every visitor gets their own session with its own menus, theme and scroll state.
With --watch, edits to the content file reach every session opened after the edit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.SSH.Host = flags.host
			}
			if cmd.Flags().Changed("port") {
				cfg.SSH.Port = flags.port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := newLogger(cfg, root.verbose, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			c, err := content.Load(cfg.ContentPath)
			if err != nil {
				log.Error(err, "failed to load content", "path", cfg.ContentPath)
				return err
			}

			srv, err := server.New(cfg.SSH, tuiOptions(cfg, c, log), log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)
			if cfg.Watch && cfg.ContentPath != "" {
				g.Go(func() error {
					return content.Watch(gctx, cfg.ContentPath, content.DefaultWatchDebounce, reloadServer(srv, log, cfg.ContentPath))
				})
			}
			g.Go(func() error {
				return srv.Run(gctx)
			})
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&flags.host, "host", "", "Address to listen on (overrides ssh.host)")
	cmd.Flags().IntVar(&flags.port, "port", 0, "Port to listen on (overrides ssh.port)")

	return cmd
}

func reloadServer(srv *server.Server, log *logger.Logger, path string) content.ReloadFunc {
	return func(c *content.Content, err error) {
		if err != nil {
			log.Warn("content reload rejected", "path", path, "error", err.Error())
			return
		}
		log.Info("content reloaded for new sessions", "path", path)
		srv.SetContent(c)
	}
}
