// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/starter-vote/client"
)

func newTallyCmd(params *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:   "tally",
		Short: "Print the current tally once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := params.newView(cmd)
			if err != nil {
				return err
			}
			v.RestoreMarker()
			if err := v.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("fetch tally: %w", err)
			}
			return client.Render(cmd.OutOrStdout(), v.State())
		},
	}
}
