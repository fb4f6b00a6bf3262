// Package cli implements the sigil command-line interface.
//
// This package provides commands for rendering symbols to SVG, PNG, JSON and
// DOT, inspecting their attachment points, browsing a symbol directory and
// running the HTTP service. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render a symbol with stroke/fill colors and optional specs overlay
//   - points: Print a symbol's attachment points
//   - list: Tabulate the symbols in a directory
//   - browse: Pick a symbol interactively and show its attachment points
//   - tree: Draw a symbol's element tree as a Graphviz diagram
//   - serve: Run the HTTP service
//   - cache: Manage the render cache
//
// # Symbols
//
// Commands that take a symbol accept either a path to a symbol file
// (.json, .yaml, .yml, .toml) or the name of a symbol in the directory
// given by --dir.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sigil/pkg/buildinfo"
	"github.com/matzehuels/sigil/pkg/cache"
	apperr "github.com/matzehuels/sigil/pkg/errors"
	"github.com/matzehuels/sigil/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "sigil"

	// defaultSymbolDir is where symbols are looked up by name.
	defaultSymbolDir = "symbols"

	// envSymbolDir overrides defaultSymbolDir.
	envSymbolDir = "SIGIL_SYMBOLS"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Sigil renders vector symbols and answers attachment point queries",
		Long:         `Sigil renders authored vector symbols with caller-chosen colors, draws their attachment points for inspection, and serves both over HTTP.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.pointsCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// ExitCode maps a command error to a process exit status: 2 for invalid
// input, 3 for a missing symbol, file or attachment point, 1 otherwise.
func ExitCode(err error) int {
	switch apperr.GetCode(err).Kind() {
	case apperr.KindInvalid:
		return 2
	case apperr.KindNotFound:
		return 3
	default:
		return 1
	}
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/sigil/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// symbolDir returns the directory symbols are looked up in when none is
// given on the command line.
func symbolDir() string {
	if dir := os.Getenv(envSymbolDir); dir != "" {
		return dir
	}
	return defaultSymbolDir
}

// addDirFlag registers the --dir flag shared by commands that resolve
// symbols by name.
func addDirFlag(cmd *cobra.Command, dir *string) {
	cmd.Flags().StringVarP(dir, "dir", "d", "", "symbol directory (default $"+envSymbolDir+" or ./"+defaultSymbolDir+")")
}
