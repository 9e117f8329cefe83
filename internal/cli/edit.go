package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/glassblock/pkg/design"
	errs "github.com/matzehuels/glassblock/pkg/errors"
)

// editCommand creates the edit command for the interactive editor.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [path]",
		Short: "Edit a design interactively",
		Long: `Edit a design interactively in the terminal.

Select a field and press enter to change it. A value the design rejects is
reverted and the reason is shown. Press w to write the file, q to quit.
A missing file starts from a fresh design.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := c.designPath(args)

			s, err := c.loadDesign(ctx, path)
			if errs.Is(err, errs.ErrCodeFileNotFound) {
				printInfo("%s does not exist, starting a new design", path)
				s, err = c.cfg.NewDesign()
			}
			if err != nil {
				return err
			}

			m := newEditModel(s, path, func(s *design.State) error {
				return c.saveDesign(ctx, s, path)
			})
			final, err := c.runEditor(ctx, m)
			if err != nil {
				return err
			}

			switch {
			case final.Dirty:
				printWarning("Discarded unsaved changes to %s", path)
			case final.Saved:
				printSuccess("Saved %s", path)
			}
			return nil
		},
	}
}
