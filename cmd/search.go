package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/group"
	"github.com/ryan-rushton/omni/internal/search"
	"github.com/ryan-rushton/omni/internal/styles"
)

type toolJSON struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	SubCategory   string `json:"subcategory,omitempty"`
}

func toToolJSON(t catalog.Tool) toolJSON {
	return toolJSON{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Category:      t.Category.Key(),
		CategoryLabel: t.Category.Label(),
		SubCategory:   t.SubCategory,
	}
}

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search the tool catalog",
		Long:  "Case-insensitive substring search over tool names, descriptions, categories and ids. Does not touch recent searches.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Builtin()
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}
			query := strings.Join(args, " ")
			matches := search.Search(c, query)
			out := cmd.OutOrStdout()

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				items := make([]toolJSON, len(matches))
				for i, t := range matches {
					items[i] = toToolJSON(t)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			if len(matches) == 0 {
				fmt.Fprintln(out, "No tools matched your query")
				return nil
			}

			fmt.Fprintf(out, "Found %d matching tools for %q\n", len(matches), query)
			for _, b := range group.ByCategory(matches) {
				fmt.Fprintf(out, "\n%s %s\n", styles.Section.Render(b.Key.Label()), styles.Count.Render(fmt.Sprintf("(%d)", len(b.Tools))))
				for _, t := range b.Tools {
					fmt.Fprintf(out, "  %s  %s\n", search.Highlight(t.Name, query, styles.Mark), styles.Dimmed.Render("#"+t.ID))
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "print matches as JSON")
	return cmd
}
