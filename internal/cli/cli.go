// Package cli implements the dyeseq command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tintlab/dyeseq/pkg/buildinfo"
	"github.com/tintlab/dyeseq/pkg/config"
	"github.com/tintlab/dyeseq/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "dyeseq"

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

	// ConfigPath overrides the default config file location.
	// Empty means config.DefaultPath.
	ConfigPath string
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
		Use:          "dyeseq",
		Short:        "Dyeseq finds dye sequences that reach a target color",
		Long:         `Dyeseq searches the space of discrete dye operations for the shortest sequence that transforms a base color as closely as possible toward a target color.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default ~/.config/dyeseq/config.toml)")

	// Register all subcommands
	root.AddCommand(c.findCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.savedCommand())
	root.AddCommand(c.presetCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// configPath resolves the effective config file location.
func (c *CLI) configPath() (string, error) {
	if c.ConfigPath != "" {
		return c.ConfigPath, nil
	}
	return config.DefaultPath()
}

// loadConfig loads the configuration the commands resolve their
// defaults from. A missing file yields the built-in defaults.
func (c *CLI) loadConfig() (config.Config, error) {
	path, err := c.configPath()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

// =============================================================================
// Store Factory
// =============================================================================

// newFileStore opens the CLI's local file store, instrumented with
// store hooks.
func newFileStore() (store.Store, error) {
	fs, err := store.NewFileStore("")
	if err != nil {
		return nil, err
	}
	return store.Instrument(fs, "file"), nil
}
