// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/starter-vote/client"
	"github.com/danielhkuo/starter-vote/models"
)

func newVoteCmd(params *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:       "vote <starter>",
		Short:     "Cast this client's single vote",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"browt", "pombon", "gecqua"},
		RunE: func(cmd *cobra.Command, args []string) error {
			starter, ok := parsePick(args[0])
			if !ok {
				return fmt.Errorf("unknown starter %q (choose browt, pombon or gecqua)", args[0])
			}

			v, err := params.newView(cmd)
			if err != nil {
				return err
			}
			v.RestoreMarker()

			if err := v.Vote(cmd.Context(), starter); err != nil {
				if errors.Is(err, client.ErrAlreadyVoted) {
					return fmt.Errorf("this client already voted for %s", v.State().Voted)
				}
				return fmt.Errorf("vote failed: %w", err)
			}
			return client.Render(cmd.OutOrStdout(), v.State())
		},
	}
}

// parsePick accepts a 1-based card number or a starter id.
func parsePick(input string) (models.Starter, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(models.Starters) {
			return "", false
		}
		return models.Starters[n-1], true
	}
	if models.IsValidStarter(input) {
		return models.Starter(input), true
	}
	return "", false
}
