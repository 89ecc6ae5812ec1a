package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func recentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show or clear recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			out := cmd.OutOrStdout()
			if wipe, _ := cmd.Flags().GetBool("clear"); wipe {
				if err := e.history.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(out, "Cleared recent searches")
				return nil
			}

			recent := e.history.List()
			if len(recent) == 0 {
				fmt.Fprintln(out, "No recent searches")
				return nil
			}
			for i, q := range recent {
				fmt.Fprintf(out, "%d. %s\n", i+1, q)
			}
			return nil
		},
	}
	cmd.Flags().Bool("clear", false, "forget all recent searches")
	return cmd
}
