package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/styles"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List categories with their tool counts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Builtin()
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(styles.DimGray)).
				Headers("CATEGORY", "KEY", "LOCATION", "TOOLS")
			for _, cat := range catalog.Categories() {
				t.Row(cat.Label(), cat.Key(), "#"+cat.Slug(), strconv.Itoa(c.Count(cat)))
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			fmt.Fprintf(cmd.OutOrStdout(), "%d tools in total\n", c.Len())
			return nil
		},
	}
}
