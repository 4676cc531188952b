package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/logx"

	"iddfs-go/internal/config"
)

// errDuplicateFound makes dupes exit with status 1, like a diff tool.
var errDuplicateFound = errors.New("duplicate found")

type options struct {
	configPath string
	quiet      bool
	verbose    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "iddfs",
		Short:         "Iterative-deepening search over file trees and toy trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.verbose)

			if err := godotenv.Load(); err != nil {
				logx.Info("No .env file found, using defaults")
			}

			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.ApplyEnv(); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			opts.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "config.yaml", "Config file path (.yaml or .toml)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Hide per-pass progress")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log informational messages")

	root.AddCommand(
		newGenerateCmd(opts),
		newDupesCmd(opts),
		newFindCmd(opts),
		newMemberCmd(),
	)
	return root
}

func setupLogging(verbose bool) {
	level := "error"
	if verbose {
		level = "info"
	}
	logx.MustSetup(logx.LogConf{
		ServiceName: "iddfs",
		Mode:        "console",
		Encoding:    "plain",
		Level:       level,
	})
	logx.DisableStat()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	switch {
	case err == nil:
	case errors.Is(err, errDuplicateFound):
		stop()
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(2)
	}
}
