package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nvandessel/eurodiff/internal/config"
	"github.com/nvandessel/eurodiff/internal/constants"
	"github.com/nvandessel/eurodiff/internal/logging"
)

// session is the resolved runtime state shared by the simulation commands.
type session struct {
	config *config.EurodiffConfig
	logger *slog.Logger
	events *logging.EventLogger
}

// jsonOut reports whether results should be printed as JSON.
func (s *session) jsonOut() bool {
	return s.config.Output.Format == constants.FormatJSON
}

func (s *session) close() {
	s.events.Close()
}

// resolveConfig layers command-line flags over the loaded configuration:
// defaults -> config file -> environment -> flags.
func resolveConfig(cmd *cobra.Command) (*config.EurodiffConfig, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	cfg, err := config.LoadPath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flags.Changed("max-steps") {
		cfg.Simulation.StepCeiling, _ = flags.GetInt("max-steps")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("events-dir") {
		cfg.Logging.EventsDir, _ = flags.GetString("events-dir")
	}
	if jsonOut, _ := flags.GetBool("json"); jsonOut {
		cfg.Output.Format = constants.FormatJSON
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newSession resolves the configuration and opens the loggers. Logs go to
// the command's stderr so stdout carries only results.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	return &session{
		config: cfg,
		logger: logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()),
		events: logging.NewEventLogger(cfg.EventsPath(), cfg.Logging.Level),
	}, nil
}
