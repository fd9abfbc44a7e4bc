package diffusion

import (
	"testing"

	"github.com/nvandessel/eurodiff/internal/models"
)

// mustCatalog builds a catalog and fails the test on error.
func mustCatalog(t *testing.T, rects map[string]models.Rect) *models.Catalog {
	t.Helper()
	cat, err := models.NewCatalog(rects)
	if err != nil {
		t.Fatalf("NewCatalog(%v): %v", rects, err)
	}
	return cat
}

// mustGrid builds the initial grid for rects and fails the test on error.
func mustGrid(t *testing.T, rects map[string]models.Rect) (*models.Catalog, *Grid) {
	t.Helper()
	cat := mustCatalog(t, rects)
	g, err := NewGrid(cat)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return cat, g
}

// unit returns the 1×1 rectangle at (x, y).
func unit(x, y int) models.Rect {
	return models.Rect{XL: x, YL: y, XH: x, YH: y}
}

// classicCases are the three sample scenarios of the Euro diffusion puzzle.
var classicCases = []struct {
	name  string
	rects map[string]models.Rect
	want  []models.CompletionRecord
}{
	{
		name: "france spain portugal",
		rects: map[string]models.Rect{
			"France":   {XL: 1, YL: 4, XH: 4, YH: 6},
			"Spain":    {XL: 3, YL: 1, XH: 6, YH: 3},
			"Portugal": {XL: 1, YL: 1, XH: 2, YH: 2},
		},
		want: []models.CompletionRecord{
			{Country: "Spain", Step: 382},
			{Country: "Portugal", Step: 416},
			{Country: "France", Step: 1325},
		},
	},
	{
		name:  "luxembourg alone",
		rects: map[string]models.Rect{"Luxembourg": {XL: 1, YL: 1, XH: 1, YH: 1}},
		want:  []models.CompletionRecord{{Country: "Luxembourg", Step: 0}},
	},
	{
		name: "netherlands belgium",
		rects: map[string]models.Rect{
			"Netherlands": {XL: 1, YL: 3, XH: 2, YH: 4},
			"Belgium":     {XL: 1, YL: 1, XH: 2, YH: 2},
		},
		want: []models.CompletionRecord{
			{Country: "Belgium", Step: 2},
			{Country: "Netherlands", Step: 2},
		},
	},
}

// assertRecords compares completion lists element by element.
func assertRecords(t *testing.T, got, want []models.CompletionRecord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d records %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
