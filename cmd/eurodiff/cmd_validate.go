package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// validationResult is one scenario's line in the validate report.
type validationResult struct {
	ID        int    `json:"id"`
	Valid     bool   `json:"valid"`
	Countries int    `json:"countries"`
	Cities    int    `json:"cities,omitempty"`
	Error     string `json:"error,omitempty"`
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check scenarios without simulating them",
		Long: `Check every scenario in a file without simulating it.

This command checks for:
  - Malformed files (syntax, schema, unknown fields)
  - Empty scenarios and empty country names
  - Negative or inverted rectangles
  - Overlapping countries

Exits non-zero if any scenario is invalid.

Examples:
  eurodiff validate cases.json
  eurodiff validate cases.hcl --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			scenarios, err := loadSelected(cmd, args[0])
			if err != nil {
				return err
			}

			results := make([]validationResult, 0, len(scenarios))
			invalid := 0
			for _, sc := range scenarios {
				r := validationResult{ID: sc.ID, Countries: len(sc.Countries)}
				cat, err := sc.Catalog()
				if err != nil {
					r.Error = err.Error()
					invalid++
					s.logger.Debug("scenario rejected", "scenario", sc.ID, "error", err)
				} else {
					r.Valid = true
					r.Cities = cat.Cities()
				}
				results = append(results, r)
			}

			out := cmd.OutOrStdout()
			if s.jsonOut() {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
			} else {
				for _, r := range results {
					if r.Valid {
						fmt.Fprintf(out, "Case Number %d: OK (%d countries, %d cities)\n", r.ID, r.Countries, r.Cities)
					} else {
						fmt.Fprintf(out, "Case Number %d: %s\n", r.ID, r.Error)
					}
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d scenarios invalid", invalid, len(scenarios))
			}
			return nil
		},
	}

	cmd.Flags().Int("id", 0, "Validate only the scenario with this id")

	return cmd
}
