// Package cli wires the loggen commands together using cobra. The root
// command runs the emitter loop; subcommands expose version information
// and the message catalog.
package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/loggen/internal/config"
	"github.com/valter-silva-au/loggen/internal/emitter"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "loggen",
	Short: "Demo log generator for exercising logging pipelines",
	Long: `loggen prints a stream of randomized demo log entries to stdout, one
per line, in the form [PRIORITY] message with PRIORITY drawn from
INFO, WARN and ERR at weighted random (85/12/3 by default).

It exists to give a journal or log collector something varied to chew
on. It runs until interrupted; Ctrl-C shuts it down gracefully.

An optional .loggen.yaml in the working directory can tune the severity
weights and the pause interval between entries. The message catalog
itself is fixed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewManager(".").Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		em, err := emitter.New(cfg, os.Stdout, rng)
		if err != nil {
			return fmt.Errorf("initializing emitter: %w", err)
		}

		if err := em.Run(ctx); err != nil {
			return fmt.Errorf("running emitter: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("loggen %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
