package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/tui"
)

// errNotInteractive is returned when folio is started without a terminal.
var errNotInteractive = errors.New("folio needs an interactive terminal; run `folio serve` to serve it over SSH instead")

type rootFlags struct {
	configPath  string
	contentPath string
	theme       string
	watch       bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Folio is a terminal portfolio, viewed locally or served over SSH",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", config.DefaultConfigPath(), "Path to the config file")
	cmd.PersistentFlags().StringVar(&flags.contentPath, "content", "", "Path to a content YAML file (built-in content when empty)")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Theme mode: auto, dark or light")
	cmd.PersistentFlags().BoolVar(&flags.watch, "watch", false, "Reload the content file when it changes")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newContentCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runLocal(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotInteractive
	}

	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log, err := newLogger(cfg, flags.verbose, logFile)
	if err != nil {
		return err
	}

	c, err := content.Load(cfg.ContentPath)
	if err != nil {
		log.Error(err, "failed to load content", "path", cfg.ContentPath)
		return err
	}

	opts := tuiOptions(cfg, c, log)
	opts.Clipboard = tui.SystemClipboard{}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	p := tea.NewProgram(tui.New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Watch && cfg.ContentPath != "" {
		g.Go(func() error {
			return content.Watch(gctx, cfg.ContentPath, content.DefaultWatchDebounce, reloadInto(p, log, cfg.ContentPath))
		})
	}
	g.Go(func() error {
		defer cancel()
		log.Info("starting portfolio", "content", cfg.ContentPath, "theme", cfg.Theme)
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			log.Error(err, "program failed")
			return fmt.Errorf("running portfolio: %w", err)
		}
		log.Info("portfolio closed")
		return nil
	})

	return g.Wait()
}

func reloadInto(p *tea.Program, log *logger.Logger, path string) content.ReloadFunc {
	return func(c *content.Content, err error) {
		if err != nil {
			log.Warn("content reload rejected", "path", path, "error", err.Error())
			return
		}
		log.Info("content reloaded", "path", path)
		p.Send(tui.ContentReloadedMsg{Content: c})
	}
}
