package diffusion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nvandessel/eurodiff/internal/constants"
	"github.com/nvandessel/eurodiff/internal/logging"
	"github.com/nvandessel/eurodiff/internal/models"
)

// Config holds tunable parameters for the simulation driver.
// The diffusion rules themselves are fixed; see package constants.
type Config struct {
	// StepCeiling is the maximum number of steps simulated. Countries not
	// complete by then are reported as pending. Default: 100,000.
	StepCeiling int
}

// DefaultConfig returns the default simulation configuration.
func DefaultConfig() Config {
	return Config{
		StepCeiling: constants.DefaultStepCeiling,
	}
}

// Validate checks that the configuration can drive a simulation.
func (c Config) Validate() error {
	if c.StepCeiling <= 0 {
		return fmt.Errorf("step ceiling must be positive, got %d", c.StepCeiling)
	}
	return nil
}

// Outcome is the full result of one simulation run.
type Outcome struct {
	// Records holds completed countries sorted by step, then name.
	Records []models.CompletionRecord `json:"results"`

	// Pending holds countries that never completed, in name order.
	Pending []string `json:"pending,omitempty"`

	// Steps is the number of diffusion steps actually simulated.
	Steps int `json:"steps"`

	// CeilingReached is set when the driver stopped at the step ceiling
	// with countries still pending.
	CeilingReached bool `json:"ceiling_reached"`

	// Stalled is set when a step moved no currency. The grid can no
	// longer change, so the pending countries will never complete.
	Stalled bool `json:"stalled,omitempty"`
}

// Simulator drives the engine and the tracker over one catalog at a time.
// It keeps no state between runs.
type Simulator struct {
	config Config
	engine *Engine
	logger *slog.Logger
	events *logging.EventLogger
}

// NewSimulator creates a simulator. A nil logger discards output; a nil
// event logger writes nothing.
func NewSimulator(config Config, logger *slog.Logger, events *logging.EventLogger) *Simulator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Simulator{
		config: config,
		engine: NewEngine(),
		logger: logger,
		events: events,
	}
}

// Run simulates the catalog until every country is complete, a step moves
// no currency, or the step ceiling is reached. Stopping at the ceiling is
// not an error: the unfinished countries are listed in Outcome.Pending.
func (s *Simulator) Run(cat *models.Catalog) (Outcome, error) {
	if err := s.config.Validate(); err != nil {
		return Outcome{}, err
	}

	cur, err := NewGrid(cat)
	if err != nil {
		return Outcome{}, err
	}
	next := cur.Clone()
	tracker := NewTracker(cat)

	s.logger.Debug("simulation started",
		"countries", cat.Len(), "rows", cur.Rows(), "cols", cur.Cols(),
		"step_ceiling", s.config.StepCeiling)

	step := constants.InitialStep
	s.record(tracker.Observe(cur, step))

	var out Outcome
	for !tracker.Done() {
		if step >= s.config.StepCeiling {
			out.CeilingReached = true
			break
		}
		step++

		transfers := s.engine.Step(cur, next)
		cur, next = next, cur

		s.logger.Log(context.Background(), logging.LevelTrace, "step", "step", step, "transfers", transfers)
		s.record(tracker.Observe(cur, step))

		if transfers == 0 && !tracker.Done() {
			out.Stalled = true
			break
		}
	}

	out.Steps = step
	out.Records = tracker.Records()
	out.Pending = tracker.Pending()

	s.logger.Debug("simulation finished",
		"steps", out.Steps, "completed", len(out.Records), "pending", len(out.Pending),
		"ceiling_reached", out.CeilingReached, "stalled", out.Stalled)
	s.events.Log("summary", map[string]any{
		"steps":           out.Steps,
		"completed":       len(out.Records),
		"pending":         out.Pending,
		"ceiling_reached": out.CeilingReached,
		"stalled":         out.Stalled,
	})

	return out, nil
}

func (s *Simulator) record(fresh []models.CompletionRecord) {
	for _, rec := range fresh {
		s.logger.Debug("country completed", "country", rec.Country, "step", rec.Step)
		s.events.Log("completed", map[string]any{"country": rec.Country, "step": rec.Step})
	}
}

// Simulate validates the countries, runs the default simulation, and
// returns the completion list sorted by step, then country name. Countries
// that do not complete within constants.DefaultStepCeiling are absent.
func Simulate(countries map[string]models.Rect) ([]models.CompletionRecord, error) {
	cat, err := models.NewCatalog(countries)
	if err != nil {
		return nil, err
	}
	out, err := NewSimulator(DefaultConfig(), nil, nil).Run(cat)
	if err != nil {
		return nil, err
	}
	return out.Records, nil
}
