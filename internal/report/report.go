// Package report renders simulation outcomes for people and programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nvandessel/eurodiff/internal/diffusion"
	"github.com/nvandessel/eurodiff/internal/models"
)

// Never is printed in place of a step for countries that did not complete.
const Never = "never"

// Result pairs a scenario id with its simulation outcome.
type Result struct {
	ID int `json:"id"`
	diffusion.Outcome
}

// WriteText writes one scenario in the classic listing format:
//
//	Case Number 1
//	Spain 382
//	Portugal 416
//	France 1325
//
// Countries that never completed follow, one per line, as "<name> never".
func WriteText(w io.Writer, id int, out diffusion.Outcome) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Case Number %d\n", id)
	for _, rec := range out.Records {
		fmt.Fprintf(&b, "%s %d\n", rec.Country, rec.Step)
	}
	for _, name := range out.Pending {
		fmt.Fprintf(&b, "%s %s\n", name, Never)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes all results as one indented JSON array.
func WriteJSON(w io.Writer, results []Result) error {
	normalized := make([]Result, len(results))
	for i, r := range results {
		if r.Records == nil {
			r.Records = []models.CompletionRecord{}
		}
		normalized[i] = r
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(normalized)
}
