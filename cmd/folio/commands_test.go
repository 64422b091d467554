package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/server"
	"github.com/alexisbeaulieu97/folio/internal/tui"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestContentDumpPrintsBuiltInContent(t *testing.T) {
	output, err := execute(t, "content", "dump")
	require.NoError(t, err)
	assert.Contains(t, output, "Jahanzeb Ahmed")
	assert.Contains(t, output, "projects:")
}

func TestContentDumpOutputValidates(t *testing.T) {
	dumped, err := execute(t, "content", "dump")
	require.NoError(t, err)

	path := writeFile(t, "content.yaml", dumped)
	output, err := execute(t, "content", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, output, "is valid")
	assert.Contains(t, output, "5 projects")
}

func TestContentValidateReportsParseLine(t *testing.T) {
	path := writeFile(t, "broken.yaml", "owner:\n  name: [unterminated\n")

	_, err := execute(t, "content", "validate", path)
	require.Error(t, err)

	var parseErr *folioerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestContentValidateReportsInvalidField(t *testing.T) {
	path := writeFile(t, "invalid.yaml", "social:\n  - name: GitHub\n    url: not a url\n")

	_, err := execute(t, "content", "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "social[0].url")
}

func TestContentValidateRequiresPath(t *testing.T) {
	_, err := execute(t, "content", "validate")
	require.Error(t, err)
}

func TestRootFailsWithoutTerminal(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := execute(t, "--config", cfgPath)
	require.ErrorIs(t, err, errNotInteractive)
}

func TestRootRejectsUnknownTheme(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := execute(t, "--config", cfgPath, "--theme", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme")
}

func TestLoadConfigAppliesChangedFlagsOnly(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "theme: dark\ncontent_path: /srv/folio/content.yaml\nwatch: true\n")

	var got *config.Config
	root := newRootCmd()
	root.RunE = func(cmd *cobra.Command, args []string) error {
		var err error
		got, err = loadConfig(cmd, &rootFlags{
			configPath:  cfgPath,
			contentPath: mustFlag(t, cmd, "content"),
			theme:       mustFlag(t, cmd, "theme"),
		})
		return err
	}
	root.SetArgs([]string{"--config", cfgPath, "--theme", "light"})
	require.NoError(t, root.Execute())

	require.NotNil(t, got)
	assert.Equal(t, config.ThemeLight, got.Theme)
	assert.Equal(t, "/srv/folio/content.yaml", got.ContentPath)
	assert.True(t, got.Watch)
}

func mustFlag(t *testing.T, cmd *cobra.Command, name string) string {
	t.Helper()
	v, err := cmd.Flags().GetString(name)
	require.NoError(t, err)
	return v
}

func TestVerboseForcesDebugLevel(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")

	var got *config.Config
	root := newRootCmd()
	root.RunE = func(cmd *cobra.Command, args []string) error {
		var err error
		got, err = loadConfig(cmd, &rootFlags{configPath: cfgPath, verbose: true})
		return err
	}
	root.SetArgs([]string{"--config", cfgPath})
	require.NoError(t, root.Execute())
	assert.Equal(t, "debug", got.Log.Level)
}

func TestThemePreference(t *testing.T) {
	assert.Nil(t, themePreference(config.ThemeAuto))
	require.NotNil(t, themePreference(config.ThemeDark))
	assert.True(t, themePreference(config.ThemeDark).PrefersDark())
	assert.False(t, themePreference(config.ThemeLight).PrefersDark())
}

func TestTUIOptionsCarryConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Theme = config.ThemeDark
	cfg.Navbar.CompactThreshold = 42
	c := content.Default()

	opts := tuiOptions(cfg, c, logger.Nop())

	assert.Same(t, c, opts.Content)
	assert.Equal(t, 42, opts.CompactThreshold)
	assert.Equal(t, cfg.Navbar.MobileBreakpoint, opts.MobileBreakpoint)
	assert.Equal(t, cfg.Transition.Duration, opts.TransitionDuration)
	assert.Equal(t, cfg.Transition.FPS, opts.FPS)
	assert.True(t, opts.Preference.PrefersDark())
}

func TestOpenLogFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "folio", "folio.log")

	f, err := openLogFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, path)
}

func TestReloadServerSwapsContentOnlyWhenValid(t *testing.T) {
	initial := content.Default()
	srv, err := server.New(config.SSHConfig{
		Host:        "127.0.0.1",
		Port:        2222,
		HostKeyPath: filepath.Join(t.TempDir(), "id_ed25519"),
	}, tui.Options{Content: initial}, logger.Nop())
	require.NoError(t, err)

	reload := reloadServer(srv, logger.Nop(), "content.yaml")

	reload(nil, errors.New("broken yaml"))
	assert.Same(t, initial, srv.Content())

	next := content.Default()
	reload(next, nil)
	assert.Same(t, next, srv.Content())
}
