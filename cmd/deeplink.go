package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func deepLinkCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "deeplink LINK",
		Short: "Resolves a deep link to the application URL it opens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := e.cfg.DeepLinkResolver().Resolve(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", e.guard.Evaluate(target).Decision, target)

			return nil
		},
	}
}
