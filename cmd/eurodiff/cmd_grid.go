package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/eurodiff/internal/diffusion"
	"github.com/nvandessel/eurodiff/internal/report"
)

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid <file>",
		Short: "Print the city ownership map of scenarios",
		Long: `Print the ownership map of each scenario: one character per city,
countries lettered A, B, C... in name order, '.' for cities no country owns.
The top line is the highest y coordinate.

Examples:
  eurodiff grid cases.json --id 1
  eurodiff grid cases.yaml --json`,
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

			type gridJSON struct {
				ID        int      `json:"id"`
				Rows      int      `json:"rows"`
				Cols      int      `json:"cols"`
				Map       []string `json:"map"`
				Countries []string `json:"countries"`
			}
			var grids []gridJSON

			out := cmd.OutOrStdout()
			for _, sc := range scenarios {
				cat, err := sc.Catalog()
				if err != nil {
					return err
				}
				g, err := diffusion.NewGrid(cat)
				if err != nil {
					return fmt.Errorf("scenario %d: %w", sc.ID, err)
				}

				if s.jsonOut() {
					grids = append(grids, gridJSON{
						ID:        sc.ID,
						Rows:      g.Rows(),
						Cols:      g.Cols(),
						Map:       report.OwnershipRows(g),
						Countries: cat.Names(),
					})
					continue
				}
				fmt.Fprintf(out, "Case Number %d\n%s", sc.ID, report.RenderGrid(g, cat))
			}

			if s.jsonOut() {
				if grids == nil {
					grids = []gridJSON{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(grids)
			}
			return nil
		},
	}

	cmd.Flags().Int("id", 0, "Show only the scenario with this id")

	return cmd
}
