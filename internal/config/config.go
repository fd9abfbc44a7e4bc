// Package config provides unified configuration loading for eurodiff.
// It supports loading from YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/nvandessel/eurodiff/internal/constants"
	"github.com/nvandessel/eurodiff/internal/logging"
)

const (
	// DirName is the per-user configuration directory under $HOME.
	DirName = ".eurodiff"

	// FileName is the configuration file inside DirName.
	FileName = "config.yaml"
)

// EurodiffConfig contains all eurodiff configuration settings.
type EurodiffConfig struct {
	// Simulation contains settings for the diffusion driver.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Logging contains settings for operational and event logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Output contains settings for result rendering.
	Output OutputConfig `json:"output" yaml:"output"`
}

// SimulationConfig configures the simulation driver.
type SimulationConfig struct {
	// StepCeiling is the maximum number of diffusion steps per scenario.
	StepCeiling int `json:"step_ceiling" yaml:"step_ceiling" validate:"gt=0"`
}

// LoggingConfig configures eurodiff's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables event logging to <events_dir>/events.jsonl.
	// "trace" additionally logs every diffusion step.
	Level string `json:"level" yaml:"level" validate:"omitempty,loglevel"`

	// EventsDir is where events.jsonl is written. Supports ${VAR} syntax,
	// expanded by EventsPath; the raw value is what gets saved.
	// Empty disables event logging.
	EventsDir string `json:"events_dir,omitempty" yaml:"events_dir,omitempty"`
}

// OutputConfig configures how results are printed.
type OutputConfig struct {
	// Format is "text" (default) or "json".
	Format constants.OutputFormat `json:"format" yaml:"format" validate:"oneof=text json"`
}

// Default returns an EurodiffConfig with sensible defaults.
func Default() *EurodiffConfig {
	return &EurodiffConfig{
		Simulation: SimulationConfig{
			StepCeiling: constants.DefaultStepCeiling,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Format: constants.FormatText,
		},
	}
}

// DefaultPath returns ~/.eurodiff/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, DirName, FileName), nil
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.eurodiff/config.yaml -> environment variables
func Load() (*EurodiffConfig, error) {
	config := Default()

	if configPath, err := DefaultPath(); err == nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadPath is Load with an explicit file in place of ~/.eurodiff/config.yaml.
// An empty path falls back to Load. Environment overrides still apply.
func LoadPath(path string) (*EurodiffConfig, error) {
	if path == "" {
		return Load()
	}
	config, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(config)
	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file. Keys absent
// from the file keep their defaults.
func LoadFromFile(path string) (*EurodiffConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Save writes the configuration to path, creating its directory.
func Save(config *EurodiffConfig, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EventsPath returns Logging.EventsDir with ${VAR} patterns expanded.
func (c *EurodiffConfig) EventsPath() string {
	return expandEnvVars(c.Logging.EventsDir)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		return slices.Contains(logging.ValidLevels, fl.Field().String())
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration is valid.
func (c *EurodiffConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// describeFieldError renders a failure with the dotted key used by
// "eurodiff config get", e.g. "simulation.step_ceiling must be greater than 0, got -1".
func describeFieldError(fe validator.FieldError) string {
	key := fe.Namespace()
	if i := strings.IndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}

	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", key, fe.Param(), fe.Value())
	case "loglevel":
		return fmt.Sprintf("invalid %s: %v (valid: %s)", key, fe.Value(), strings.Join(logging.ValidLevels, ", "))
	case "oneof":
		return fmt.Sprintf("invalid %s: %v (valid: %s)", key, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed %s validation", key, fe.Tag())
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
// Unparseable numbers are ignored.
func applyEnvOverrides(config *EurodiffConfig) {
	if v := os.Getenv("EURODIFF_STEP_CEILING"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.StepCeiling = n
		}
	}

	if v := os.Getenv("EURODIFF_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("EURODIFF_EVENTS_DIR"); v != "" {
		config.Logging.EventsDir = v
	}

	if v := os.Getenv("EURODIFF_OUTPUT"); v != "" {
		config.Output.Format = constants.OutputFormat(v)
	}
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}
