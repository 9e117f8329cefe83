package cli

import (
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/glassblock/pkg/errors"
	dio "github.com/matzehuels/glassblock/pkg/io"
)

// newOptions holds options for the new command.
type newOptions struct {
	windows int
	colors  int
	force   bool
}

// newCommand creates the new command for writing a fresh design file.
func (c *CLI) newCommand() *cobra.Command {
	opts := newOptions{}

	cmd := &cobra.Command{
		Use:   "new [path]",
		Short: "Create a new design file",
		Long: `Create a new design file with default windows and a generated palette.

The number of windows and colors defaults to the values in the config file.`,
		Example: `  # Create design.json with the configured defaults
  glassblock new

  # Three windows and a five color palette
  glassblock new kitchen.json --windows 3 --colors 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("windows") {
				opts.windows = c.cfg.NumWindows
			}
			if !cmd.Flags().Changed("colors") {
				opts.colors = c.cfg.NumColors
			}
			return c.runNew(cmd, c.designPath(args), opts)
		},
	}

	cmd.Flags().IntVar(&opts.windows, "windows", 0, "number of windows (default from config)")
	cmd.Flags().IntVar(&opts.colors, "colors", 0, "number of palette colors (default from config)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing file")

	return cmd
}

// runNew builds the design and writes it, refusing to clobber unless forced.
func (c *CLI) runNew(cmd *cobra.Command, path string, opts newOptions) error {
	ctx := cmd.Context()
	if err := errs.ValidatePath(path); err != nil {
		return err
	}
	if !opts.force && dio.Exists(path) {
		return errs.New(errs.ErrCodeFileExists, "%s already exists (use --force to overwrite)", path)
	}

	cfg := c.cfg
	cfg.NumWindows = opts.windows
	cfg.NumColors = opts.colors
	s, err := cfg.NewDesign()
	if err != nil {
		return err
	}
	if err := c.saveDesign(ctx, s, path); err != nil {
		return err
	}

	printSuccess("Created design with %s and %s",
		plural(s.NumWindows(), "window"), plural(s.BlockSupply().NumColors(), "color"))
	printFile(path)
	return nil
}
