package cli

import (
	"github.com/spf13/cobra"
)

// validateCommand creates the validate command for checking a design file.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check that a design file loads cleanly",
		Long: `Check that a design file loads cleanly.

Every value in the file is checked against the same rules the editor uses.
The first rejected value is reported and the command exits non-zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.designPath(args)
			s, err := c.loadDesign(cmd.Context(), path)
			if err != nil {
				return err
			}
			supply := s.BlockSupply()
			printSuccess("%s is valid", path)
			printDetail("%s, %s", plural(s.NumWindows(), "window"), plural(supply.NumColors(), "color"))
			printDetail("%d blocks needed, %d on hand", s.BlocksNeeded(), supply.TotalBlocks())
			return nil
		},
	}
}
