package config

import (
	"fmt"
	"strconv"

	"github.com/nvandessel/eurodiff/internal/constants"
)

// Keys lists every dot-notation key accepted by Get and Set, in display order.
var Keys = []string{
	"simulation.step_ceiling",
	"logging.level",
	"logging.events_dir",
	"output.format",
}

// Get retrieves a configuration value by dot-notation key.
func (c *EurodiffConfig) Get(key string) (any, bool) {
	switch key {
	case "simulation.step_ceiling":
		return c.Simulation.StepCeiling, true
	case "logging.level":
		return c.Logging.Level, true
	case "logging.events_dir":
		return c.Logging.EventsDir, true
	case "output.format":
		return string(c.Output.Format), true
	default:
		return nil, false
	}
}

// Set assigns a configuration value by dot-notation key. The result is
// validated so a bad value never reaches disk.
func (c *EurodiffConfig) Set(key, value string) error {
	next := *c
	switch key {
	case "simulation.step_ceiling":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid step ceiling: %s (must be a positive integer)", value)
		}
		next.Simulation.StepCeiling = n
	case "logging.level":
		next.Logging.Level = value
	case "logging.events_dir":
		next.Logging.EventsDir = value
	case "output.format":
		next.Output.Format = constants.OutputFormat(value)
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
