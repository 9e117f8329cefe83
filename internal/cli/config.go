package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/glassblock/internal/config"
	errs "github.com/matzehuels/glassblock/pkg/errors"
	dio "github.com/matzehuels/glassblock/pkg/io"
)

// configCommand creates the config command group.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			printKeyValue("file", path)
			printKeyValue("design_path", c.cfg.DesignPath)
			printKeyValue("num_windows", strconv.Itoa(c.cfg.NumWindows))
			printKeyValue("num_colors", strconv.Itoa(c.cfg.NumColors))
			printKeyValue("indent", strconv.Quote(c.cfg.Indent))
			printKeyValue("log_level", c.cfg.LogLevel)
			return nil
		},
	}
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			if !force && dio.Exists(path) {
				return errs.New(errs.ErrCodeFileExists, "%s already exists (use --force to overwrite)", path)
			}
			if err := config.Write(path, config.Default()); err != nil {
				return err
			}
			printSuccess("Wrote default config")
			printFile(path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
