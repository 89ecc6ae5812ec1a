package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/group"
	"github.com/ryan-rushton/omni/internal/location"
	"github.com/ryan-rushton/omni/internal/styles"
)

// parseCategory accepts a category key ("ecommerce"), label
// ("E-Commerce & Business") or slug ("e-commerce-&-business").
func parseCategory(c *catalog.Catalog, s string) (catalog.Category, bool) {
	if cat, ok := catalog.ParseCategory(s); ok {
		return cat, true
	}
	st := location.NewResolver(c, nil).Resolve(s)
	if st.Kind != location.KindCategory {
		return 0, false
	}
	return st.Category, true
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list CATEGORY",
		Short: "List the tools in one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Builtin()
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}
			cat, ok := parseCategory(c, args[0])
			if !ok {
				return fmt.Errorf("unknown category %q (see 'omni categories')", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", styles.Title.Render(cat.Label()), styles.Count.Render(fmt.Sprintf("(%d)", c.Count(cat))))
			for _, b := range group.BySubCategory(slices.Collect(c.FindByCategory(cat))) {
				fmt.Fprintf(out, "\n%s\n", styles.Section.Render(b.Key))
				for _, t := range b.Tools {
					fmt.Fprintf(out, "  %-40s %s\n", t.ID, t.Name)
				}
			}
			return nil
		},
	}
}
