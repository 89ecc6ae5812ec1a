package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/messages"
	"github.com/ryan-rushton/omni/internal/registry"
)

// toolModel builds the standalone model for a tool id.
func toolModel(id string) (tea.Model, error) {
	c, err := catalog.Builtin()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	t, ok := c.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("unknown tool %q (try 'omni search')", id)
	}
	m := registry.For(t)
	if m == nil {
		return nil, fmt.Errorf("no renderer for %q", t.Renderer)
	}
	return messages.Standalone(m), nil
}

func toolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tool ID",
		Short: "Open a single tool",
		Long:  "Opens one tool directly. Leaving the tool exits omni.",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			c, err := catalog.Builtin()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			var ids []string
			for _, t := range c.All() {
				if strings.HasPrefix(t.ID, toComplete) {
					ids = append(ids, t.ID)
				}
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := toolModel(args[0])
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}
