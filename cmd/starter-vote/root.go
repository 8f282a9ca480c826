// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/starter-vote/client"
)

const defaultServer = "http://localhost:3318"

type cliParams struct {
	server   string
	interval time.Duration
	stateDir string
	timeout  time.Duration
	verbose  bool
}

func newRootCmd() *cobra.Command {
	params := &cliParams{}
	rootCmd := &cobra.Command{
		Use:          "starter-vote",
		Short:        "Vote for your starter and watch the live tally",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&params.server, "server", defaultServer, "gateway base URL")
	rootCmd.PersistentFlags().DurationVar(&params.interval, "interval", client.DefaultPollInterval, "poll interval for watch")
	rootCmd.PersistentFlags().StringVar(&params.stateDir, "state-dir", defaultStateDir(), "directory holding the local vote marker")
	rootCmd.PersistentFlags().DurationVar(&params.timeout, "timeout", client.DefaultTimeout, "HTTP request timeout")
	rootCmd.PersistentFlags().BoolVarP(&params.verbose, "verbose", "v", false, "log client activity to stderr")

	rootCmd.AddCommand(
		newWatchCmd(params),
		newVoteCmd(params),
		newTallyCmd(params),
	)
	return rootCmd
}

func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".starter-vote"
	}
	return filepath.Join(dir, "starter-vote")
}

func (p *cliParams) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if p.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (p *cliParams) newView(cmd *cobra.Command, opts ...client.Option) (*client.View, error) {
	if p.stateDir == "" {
		return nil, fmt.Errorf("--state-dir must not be empty")
	}
	api := client.NewHTTPAPI(p.server, p.timeout)
	storage := client.NewFileStorage(p.stateDir)

	base := []client.Option{
		client.WithPollInterval(p.interval),
		client.WithLogger(p.logger(cmd.ErrOrStderr())),
	}
	return client.NewView(api, storage, append(base, opts...)...), nil
}
