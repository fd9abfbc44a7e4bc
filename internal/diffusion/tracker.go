package diffusion

import (
	"github.com/nvandessel/eurodiff/internal/models"
)

// Tracker records the first step at which each country is complete: every
// city it owns holds a positive balance of every currency.
// Once a country is recorded it is never evaluated again, even if its
// balances later regress.
type Tracker struct {
	catalog   *models.Catalog
	completed []bool
	records   []models.CompletionRecord
}

// NewTracker creates a tracker with no completed countries.
func NewTracker(cat *models.Catalog) *Tracker {
	return &Tracker{
		catalog:   cat,
		completed: make([]bool, cat.Len()),
	}
}

// Observe checks every country not yet recorded against g and records the
// ones that are now complete at step. It returns only the newly completed
// countries, in name order.
//
// Observing the initial grid at step 0 completes a single-country catalog
// immediately: its cities already hold the only currency there is. With two
// or more countries nothing can be complete before the first step.
func (t *Tracker) Observe(g *Grid, step int) []models.CompletionRecord {
	var fresh []models.CompletionRecord
	for i := range t.completed {
		if t.completed[i] {
			continue
		}
		country := t.catalog.Country(i)
		if !isComplete(g, country.Rect) {
			continue
		}
		t.completed[i] = true
		rec := models.CompletionRecord{Country: country.Name, Step: step}
		t.records = append(t.records, rec)
		fresh = append(fresh, rec)
	}
	return fresh
}

// Done reports whether every country has been recorded.
func (t *Tracker) Done() bool {
	return len(t.records) == len(t.completed)
}

// Records returns the completion records sorted by step, then name.
func (t *Tracker) Records() []models.CompletionRecord {
	out := make([]models.CompletionRecord, len(t.records))
	copy(out, t.records)
	models.SortRecords(out)
	return out
}

// Pending returns the names of countries not yet complete, in name order.
func (t *Tracker) Pending() []string {
	var pending []string
	for i, done := range t.completed {
		if !done {
			pending = append(pending, t.catalog.Country(i).Name)
		}
	}
	return pending
}

// isComplete reports whether every city in r holds every currency.
// The catalog guarantees that every city in r is owned by r's country.
func isComplete(g *Grid, r models.Rect) bool {
	for y := r.YL; y <= r.YH; y++ {
		for x := r.XL; x <= r.XH; x++ {
			for _, balance := range g.wallet(g.cell(x, y)) {
				if balance == 0 {
					return false
				}
			}
		}
	}
	return true
}
