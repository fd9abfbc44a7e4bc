package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/eurodiff/internal/diffusion"
	"github.com/nvandessel/eurodiff/internal/report"
	"github.com/nvandessel/eurodiff/internal/scenario"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Simulate every scenario in a file",
		Long: `Simulate every scenario in a file and print, per scenario, the step at
which each country became complete.

Countries ordered by completion step, then by name. Countries that never
complete within the step ceiling are listed as "never".

Examples:
  eurodiff run cases.json                 # All scenarios, text output
  eurodiff run cases.yaml --id 3          # Only scenario 3
  eurodiff run cases.hcl.zst --json       # JSON output
  eurodiff run cases.json --max-steps 500 # Lower the step ceiling`,
		Args: cobra.ExactArgs(1),
		RunE: runScenarios,
	}

	cmd.Flags().Int("id", 0, "Run only the scenario with this id")

	return cmd
}

func runScenarios(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	scenarios, err := loadSelected(cmd, args[0])
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		s.logger.Warn("no scenarios found", "file", args[0])
	}

	simConfig := diffusion.Config{StepCeiling: s.config.Simulation.StepCeiling}
	out := cmd.OutOrStdout()
	results := make([]report.Result, 0, len(scenarios))

	for _, sc := range scenarios {
		cat, err := sc.Catalog()
		if err != nil {
			return err
		}

		sim := diffusion.NewSimulator(simConfig, s.logger.With("scenario", sc.ID), s.events.With(map[string]any{"scenario": sc.ID}))
		outcome, err := sim.Run(cat)
		if err != nil {
			return fmt.Errorf("scenario %d: %w", sc.ID, err)
		}

		switch {
		case outcome.CeilingReached:
			s.logger.Warn("step ceiling reached", "scenario", sc.ID, "steps", outcome.Steps, "pending", outcome.Pending)
		case outcome.Stalled:
			s.logger.Warn("diffusion stalled, countries cannot complete", "scenario", sc.ID, "steps", outcome.Steps, "pending", outcome.Pending)
		}

		if s.jsonOut() {
			results = append(results, report.Result{ID: sc.ID, Outcome: outcome})
			continue
		}
		if err := report.WriteText(out, sc.ID, outcome); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if s.jsonOut() {
		return report.WriteJSON(out, results)
	}
	return nil
}

// loadSelected loads the scenario file and, when --id is set, narrows it to
// that one scenario.
func loadSelected(cmd *cobra.Command, path string) ([]scenario.Scenario, error) {
	scenarios, err := scenario.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}

	if !cmd.Flags().Changed("id") {
		return scenarios, nil
	}
	id, _ := cmd.Flags().GetInt("id")
	sc, ok := scenario.Find(scenarios, id)
	if !ok {
		return nil, fmt.Errorf("scenario %d not found in %s", id, path)
	}
	return []scenario.Scenario{sc}, nil
}
