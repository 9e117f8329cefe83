package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/glassblock/pkg/design"
	errs "github.com/matzehuels/glassblock/pkg/errors"
)

// windowsCommand creates the windows command for resizing the window list.
func (c *CLI) windowsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "windows <count> [path]",
		Short: "Set the number of windows in a design",
		Long: `Set the number of windows in a design.

New windows are added with default dimensions. Shrinking removes windows
from the end of the list.`,
		Example: `  glassblock windows 4`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount("number of windows", args[0])
			if err != nil {
				return err
			}
			path := c.designPath(args[1:])
			s, err := c.updateDesign(cmd.Context(), "windows", path, func(s *design.State) error {
				return s.SetNumWindows(n)
			})
			if err != nil {
				return err
			}
			printSuccess("Design now has %s", plural(s.NumWindows(), "window"))
			printDetail("%d blocks needed", s.BlocksNeeded())
			return nil
		},
	}
}

// windowCommand creates the window command group for editing one window.
func (c *CLI) windowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Edit a single window",
	}
	cmd.AddCommand(c.windowSetCommand())
	return cmd
}

// windowSetOptions holds options for the window set command.
type windowSetOptions struct {
	width  int
	height int
}

func (c *CLI) windowSetCommand() *cobra.Command {
	opts := windowSetOptions{}

	cmd := &cobra.Command{
		Use:   "set <window> [path]",
		Short: "Set the width and height of a window",
		Long: `Set the width and height of a window, in blocks.

Windows are numbered from 1 as shown by "glassblock show". Only the flags
given are changed. Nothing is written if any value is rejected.`,
		Example: `  glassblock window set 2 --width 8 --height 4`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setWidth := cmd.Flags().Changed("width")
			setHeight := cmd.Flags().Changed("height")
			if !setWidth && !setHeight {
				return errs.New(errs.ErrCodeInvalidInput, "nothing to change: pass --width and/or --height")
			}

			path := c.designPath(args[1:])
			var index int
			s, err := c.updateDesign(cmd.Context(), "window set", path, func(s *design.State) error {
				i, err := parseIndex("window", args[0], s.NumWindows())
				if err != nil {
					return err
				}
				index = i
				w, err := s.Window(i)
				if err != nil {
					return err
				}
				if setWidth {
					if err := w.SetWidth(opts.width); err != nil {
						return err
					}
				}
				if setHeight {
					if err := w.SetHeight(opts.height); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			w, err := s.Window(index)
			if err != nil {
				return err
			}
			printSuccess("Window %d is %dx%d", index+1, w.Width(), w.Height())
			printDetail("%d blocks needed in total", s.BlocksNeeded())
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", design.DefaultDimension, "width in blocks")
	cmd.Flags().IntVar(&opts.height, "height", design.DefaultDimension, "height in blocks")

	return cmd
}
