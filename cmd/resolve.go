package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/location"
)

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [TOKEN]",
		Short: "Show where a location token leads",
		Long:  "Resolves a location token to a view and prints the view's canonical token. Unknown tokens lead home.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Builtin()
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}
			token := ""
			if len(args) == 1 {
				token = args[0]
			}

			r := location.NewResolver(c, nil)
			st := r.Resolve(token)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "state: %s\n", st)
			fmt.Fprintf(out, "token: %q\n", r.Encode(st))
			return nil
		},
	}
}
