// Package cli implements the glassblock command-line interface.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/glassblock/internal/config"
	"github.com/matzehuels/glassblock/pkg/buildinfo"
	"github.com/matzehuels/glassblock/pkg/design"
	errs "github.com/matzehuels/glassblock/pkg/errors"
	dio "github.com/matzehuels/glassblock/pkg/io"
	"github.com/matzehuels/glassblock/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "glassblock"
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

	// ConfigPath overrides the config file location when set.
	ConfigPath string

	cfg       config.Config
	copyText  func(string) error
	runEditor func(context.Context, editModel) (editModel, error)
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:    newLogger(w, level),
		cfg:       config.Default(),
		copyText:  clipboard.WriteAll,
		runEditor: runEditorProgram,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	versionTemplate := buildinfo.Template()
	root := &cobra.Command{
		Use:          appName,
		Short:        "Glassblock plans glass block windows and the blocks to build them",
		Long:         `Glassblock keeps a design of rectangular glass block windows and a palette of colored block supplies in a single JSON file that can be edited, inspected and exported.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(versionTemplate)
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/glassblock/config.toml)")

	// Register all subcommands
	root.AddCommand(c.newCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.windowsCommand())
	root.AddCommand(c.windowCommand())
	root.AddCommand(c.colorsCommand())
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.copyCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// loadConfig reads the config file and applies its log level.
func (c *CLI) loadConfig() error {
	path, err := c.configFile()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if err := applyLevel(c.Logger, cfg.LogLevel); err != nil {
		return err
	}
	c.Logger.Debug("config loaded", "path", path)
	return nil
}

func (c *CLI) configFile() (string, error) {
	if c.ConfigPath != "" {
		return c.ConfigPath, nil
	}
	path, err := config.Path()
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeInvalidPath, err, "locate config file")
	}
	return path, nil
}

// =============================================================================
// Design Files
// =============================================================================

// designPath returns the design file named on the command line, or the
// configured default.
func (c *CLI) designPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return c.cfg.DesignPath
}

// loadDesign imports the design at path.
func (c *CLI) loadDesign(ctx context.Context, path string) (*design.State, error) {
	start := time.Now()
	s, err := dio.ImportJSON(path)
	observability.File().OnImport(ctx, path, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// saveDesign exports s to path using the configured indent.
func (c *CLI) saveDesign(ctx context.Context, s *design.State, path string) error {
	start := time.Now()
	err := dio.ExportJSON(s, path, dio.WithIndent(c.cfg.Indent))
	observability.File().OnExport(ctx, path, time.Since(start), err)
	return err
}

// updateDesign loads the design at path, applies fn, and writes the result
// back only if fn succeeds. op names the change for the edit hooks.
func (c *CLI) updateDesign(ctx context.Context, op, path string, fn func(*design.State) error) (*design.State, error) {
	s, err := c.loadDesign(ctx, path)
	if err != nil {
		return nil, err
	}
	err = fn(s)
	observability.Edit().OnEdit(ctx, op, err)
	if err != nil {
		return nil, err
	}
	if err := c.saveDesign(ctx, s, path); err != nil {
		return nil, err
	}
	return s, nil
}
