package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/glassblock/pkg/design"
	dio "github.com/matzehuels/glassblock/pkg/io"
)

// showCommand creates the show command for printing a design.
func (c *CLI) showCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Print the windows, palette and block totals of a design",
		Example: `  glassblock show
  glassblock show kitchen.json --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.designPath(args)
			s, err := c.loadDesign(cmd.Context(), path)
			if err != nil {
				return err
			}
			if asJSON {
				return dio.WriteJSON(s, out, dio.WithIndent(c.cfg.Indent))
			}
			renderDesign(path, s)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the serialized design")

	return cmd
}

// renderDesign prints the tables and totals for s.
func renderDesign(path string, s *design.State) {
	fmt.Fprintln(out, StyleTitle.Render(path))
	printNewline()

	fmt.Fprintln(out, windowsTable(s).Render())
	fmt.Fprintln(out, paletteTable(s.BlockSupply()).Render())
	printNewline()

	needed := s.BlocksNeeded()
	available := s.BlockSupply().TotalBlocks()
	printKeyValue("Blocks needed", strconv.Itoa(needed))
	printKeyValue("Blocks on hand", strconv.Itoa(available))
	if short := needed - available; short > 0 {
		printWarning("%s short", plural(short, "block"))
	}
}

func windowsTable(s *design.State) *table.Table {
	rows := make([][]string, 0, s.NumWindows())
	for i, w := range s.Windows() {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(w.Width()),
			strconv.Itoa(w.Height()),
			strconv.Itoa(w.Area()),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Window", "Width", "Height", "Blocks").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if col == 0 {
				return StyleDim.Padding(0, 1)
			}
			return StyleNumber.Padding(0, 1)
		})
}

func paletteTable(b *design.BlockSupply) *table.Table {
	colors := b.Colors()
	counts := b.BlockCounts()
	rows := make([][]string, 0, len(colors))
	for i := range colors {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			swatch(colors[i]),
			strconv.Itoa(counts[i]),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Color", "Hex", "Blocks").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return StyleDim.Padding(0, 1)
			case col == 2:
				return StyleNumber.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
