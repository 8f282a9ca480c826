// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/starter-vote/client"
)

const clearScreen = "\033[H\033[2J"

func newWatchCmd(params *cliParams) *cobra.Command {
	var noClear bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the tally and vote interactively",
		Long: "Poll the gateway and redraw the tally on every change.\n" +
			"Type 1, 2 or 3 (or a starter id) and press Enter to vote. Ctrl-C exits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var mu sync.Mutex
			redraw := func(s client.State) {
				mu.Lock()
				defer mu.Unlock()
				if !noClear {
					io.WriteString(out, clearScreen)
				}
				client.Render(out, s)
				if s.Voted == "" && !s.Loading {
					fmt.Fprint(out, "Pick 1-3: ")
				}
			}

			v, err := params.newView(cmd, client.WithOnChange(redraw))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go readPicks(ctx, cmd.InOrStdin(), v, cmd.ErrOrStderr())
			return v.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "append frames instead of clearing the screen")
	return cmd
}

// readPicks turns input lines into votes until ctx is done or in closes.
func readPicks(ctx context.Context, in io.Reader, v *client.View, errOut io.Writer) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		starter, ok := parsePick(line)
		if !ok {
			fmt.Fprintf(errOut, "unknown pick %q\n", line)
			continue
		}
		err := v.Vote(ctx, starter)
		switch {
		case errors.Is(err, client.ErrAlreadyVoted):
			fmt.Fprintln(errOut, "you already voted")
		case errors.Is(err, client.ErrVoteInFlight):
			fmt.Fprintln(errOut, "vote in progress")
		case err != nil:
			fmt.Fprintln(errOut, "vote failed, try again")
		}
	}
}
