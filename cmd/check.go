package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "check URL...",
		Short: "Evaluates URLs against the navigation policy",
		Long:  "Prints ALLOW or BLOCK for every URL and exits non-zero when any of them is blocked.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocked := 0
			for _, candidate := range args {
				v := e.guard.Evaluate(candidate)
				if !v.Allowed() {
					blocked++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", v.Decision, candidate)
			}

			if blocked > 0 {
				return fmt.Errorf("%d of %d URLs blocked", blocked, len(args))
			}

			return nil
		},
	}
}
