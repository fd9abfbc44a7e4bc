package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvandessel/eurodiff/internal/logging"
)

// Set by the release build via -ldflags.
var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eurodiff",
		Short: "Euro diffusion simulator",
		Long: `eurodiff simulates the spread of national coins across a grid of cities.

Each country occupies a rectangle of cities. Every step, each city sends a
thousandth of every coin balance to each neighbouring city. eurodiff reports
the step at which every city of a country holds every currency.

Scenario files may be JSON, YAML or HCL, optionally zstd-compressed (.zst).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addPersistentFlags(rootCmd)

	rootCmd.AddCommand(
		newRunCmd(),
		newValidateCmd(),
		newGridCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("json", false, "Output as JSON")
	cmd.PersistentFlags().String("config", "", "Config file (default ~/.eurodiff/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: "+strings.Join(logging.ValidLevels, ", "))
	cmd.PersistentFlags().Int("max-steps", 0, "Step ceiling per scenario (default from config)")
	cmd.PersistentFlags().String("events-dir", "", "Directory for events.jsonl (debug and trace only)")
}
