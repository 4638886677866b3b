// Package cli implements the ledsmith command-line interface.
//
// This package provides commands for validating letter outlines, filling
// them with LED modules, grading placements, and editing anchor points
// interactively. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - validate: Check an outline path against the fabrication rules
//   - points: List the editable anchor and control points of a path
//   - nudge: Interactively move anchors with validation and rollback
//   - fill: Run the full placement pipeline and export a plan
//   - estimate: Dry-pass module count for a configuration
//   - grade: Re-grade an exported plan against thresholds
//   - preview: Render an exported plan as SVG
//   - presets: List available module-style presets
//   - cache: Manage the placement cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mklettner/ledsmith/pkg/buildinfo"
	"github.com/mklettner/ledsmith/pkg/cache"
	"github.com/mklettner/ledsmith/pkg/errors"
	"github.com/mklettner/ledsmith/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "ledsmith"

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
		Use:          "ledsmith",
		Short:        "Ledsmith lays out LED modules inside channel-letter outlines",
		Long:         `Ledsmith is a CLI tool for illuminated signage: it validates letter outline paths, fills them with LED modules along the stroke or on an interior grid, and grades the result for fabrication.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		// The logger rides the context so subcommands and helpers can reach
		// it via loggerFromContext.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.pointsCommand())
	root.AddCommand(c.nudgeCommand())
	root.AddCommand(c.fillCommand())
	root.AddCommand(c.estimateCommand())
	root.AddCommand(c.gradeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
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

// cacheDir returns the cache directory using XDG standard (~/.cache/ledsmith/).
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

// =============================================================================
// Input Helpers
// =============================================================================

// readPathArg resolves the outline path string for a command: the literal
// positional argument, or the contents of --file when set.
func readPathArg(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read outline file %s", file)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if len(args) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "provide an outline path string or --file")
	}
	return args[0], nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatJSON}
	}
	return strings.Split(s, ",")
}
