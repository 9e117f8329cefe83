package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/glassblock/pkg/design"
	errs "github.com/matzehuels/glassblock/pkg/errors"
)

// colorsCommand creates the colors command for resizing the palette.
func (c *CLI) colorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "colors <count> [path]",
		Short: "Set the number of colors in the block supply",
		Long: `Set the number of colors in the block supply.

New colors are generated so that they stay visually distinct and start with
no blocks. Shrinking removes colors from the end of the palette.`,
		Example: `  glassblock colors 5`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount("number of colors", args[0])
			if err != nil {
				return err
			}
			path := c.designPath(args[1:])
			s, err := c.updateDesign(cmd.Context(), "colors", path, func(s *design.State) error {
				return s.BlockSupply().SetNumColors(n)
			})
			if err != nil {
				return err
			}
			supply := s.BlockSupply()
			printSuccess("Block supply now has %s", plural(supply.NumColors(), "color"))
			for _, hex := range supply.Colors() {
				printDetail("%s", hex)
			}
			return nil
		},
	}
}

// colorCommand creates the color command group for editing one palette slot.
func (c *CLI) colorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Edit a single palette color",
	}
	cmd.AddCommand(c.colorSetCommand())
	return cmd
}

// colorSetOptions holds options for the color set command.
type colorSetOptions struct {
	hex   string
	count int
}

func (c *CLI) colorSetCommand() *cobra.Command {
	opts := colorSetOptions{}

	cmd := &cobra.Command{
		Use:   "set <color> [path]",
		Short: "Set the hex value and block count of a palette color",
		Long: `Set the hex value and block count of a palette color.

Colors are numbered from 1 as shown by "glassblock show". Only the flags
given are changed. Nothing is written if any value is rejected.`,
		Example: `  glassblock color set 1 --hex "#3366ff" --count 40`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setHex := cmd.Flags().Changed("hex")
			setCount := cmd.Flags().Changed("count")
			if !setHex && !setCount {
				return errs.New(errs.ErrCodeInvalidInput, "nothing to change: pass --hex and/or --count")
			}

			path := c.designPath(args[1:])
			var index int
			s, err := c.updateDesign(cmd.Context(), "color set", path, func(s *design.State) error {
				supply := s.BlockSupply()
				i, err := parseIndex("color", args[0], supply.NumColors())
				if err != nil {
					return err
				}
				index = i
				if setHex {
					if err := supply.SetColor(i, opts.hex); err != nil {
						return err
					}
				}
				if setCount {
					if err := supply.SetBlockCount(i, opts.count); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			supply := s.BlockSupply()
			hex, err := supply.Color(index)
			if err != nil {
				return err
			}
			count, err := supply.BlockCount(index)
			if err != nil {
				return err
			}
			printSuccess("Color %d is %s with %s", index+1, swatch(hex), plural(count, "block"))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.hex, "hex", "", `hex color such as "#ff0000"`)
	cmd.Flags().IntVar(&opts.count, "count", 0, "number of blocks on hand")

	return cmd
}
