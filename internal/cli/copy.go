package cli

import (
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/glassblock/pkg/errors"
	dio "github.com/matzehuels/glassblock/pkg/io"
)

// copyCommand creates the copy command for placing a design on the clipboard.
func (c *CLI) copyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy [path]",
		Short: "Copy the serialized design to the clipboard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.designPath(args)
			s, err := c.loadDesign(cmd.Context(), path)
			if err != nil {
				return err
			}
			data, err := dio.Encode(s, dio.WithIndent(c.cfg.Indent))
			if err != nil {
				return err
			}
			if err := c.copyText(string(data)); err != nil {
				return errs.Wrap(errs.ErrCodeUnsupported, err, "copy to clipboard")
			}
			printSuccess("Copied %s to the clipboard", path)
			printDetail("%d bytes", len(data))
			return nil
		},
	}
}
