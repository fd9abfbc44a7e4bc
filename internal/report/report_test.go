package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nvandessel/eurodiff/internal/diffusion"
	"github.com/nvandessel/eurodiff/internal/models"
)

func TestWriteText(t *testing.T) {
	tests := []struct {
		name string
		id   int
		out  diffusion.Outcome
		want string
	}{
		{
			name: "all complete",
			id:   1,
			out: diffusion.Outcome{Records: []models.CompletionRecord{
				{Country: "Spain", Step: 382},
				{Country: "Portugal", Step: 416},
				{Country: "France", Step: 1325},
			}},
			want: "Case Number 1\nSpain 382\nPortugal 416\nFrance 1325\n",
		},
		{
			name: "single country",
			id:   2,
			out:  diffusion.Outcome{Records: []models.CompletionRecord{{Country: "Luxembourg", Step: 0}}},
			want: "Case Number 2\nLuxembourg 0\n",
		},
		{
			name: "pending countries",
			id:   9,
			out: diffusion.Outcome{
				Records: []models.CompletionRecord{{Country: "A", Step: 4}},
				Pending: []string{"B", "C"},
			},
			want: "Case Number 9\nA 4\nB never\nC never\n",
		},
		{
			name: "nothing completed",
			id:   3,
			out:  diffusion.Outcome{Pending: []string{"X"}},
			want: "Case Number 3\nX never\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteText(&buf, tt.id, tt.out); err != nil {
				t.Fatalf("WriteText() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("WriteText() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	results := []Result{
		{ID: 1, Outcome: diffusion.Outcome{
			Records: []models.CompletionRecord{{Country: "Belgium", Step: 2}, {Country: "Netherlands", Step: 2}},
			Steps:   2,
		}},
		{ID: 4, Outcome: diffusion.Outcome{
			Pending:        []string{"A", "B"},
			Steps:          50,
			CeilingReached: true,
		}},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, results); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d results, want 2", len(decoded))
	}

	first := decoded[0]
	if first["id"] != float64(1) {
		t.Errorf("id = %v, want 1", first["id"])
	}
	recs, ok := first["results"].([]any)
	if !ok || len(recs) != 2 {
		t.Fatalf("results = %v, want 2 records", first["results"])
	}
	rec := recs[0].(map[string]any)
	if rec["country"] != "Belgium" || rec["step"] != float64(2) {
		t.Errorf("results[0] = %v, want Belgium at 2", rec)
	}
	if _, has := first["pending"]; has {
		t.Errorf("pending present for a fully completed scenario: %v", first["pending"])
	}
	if first["ceiling_reached"] != false {
		t.Errorf("ceiling_reached = %v, want false", first["ceiling_reached"])
	}

	second := decoded[1]
	if recs, ok := second["results"].([]any); !ok || len(recs) != 0 {
		t.Errorf("results = %v, want empty array", second["results"])
	}
	if pending, ok := second["pending"].([]any); !ok || len(pending) != 2 {
		t.Errorf("pending = %v, want [A B]", second["pending"])
	}
	if second["steps"] != float64(50) || second["ceiling_reached"] != true {
		t.Errorf("steps/ceiling_reached = %v/%v, want 50/true", second["steps"], second["ceiling_reached"])
	}
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("WriteJSON(nil) = %q, want []", got)
	}
}

func TestRenderGrid(t *testing.T) {
	cat, err := models.NewCatalog(map[string]models.Rect{
		"Netherlands": {XL: 1, YL: 3, XH: 2, YH: 4},
		"Belgium":     {XL: 1, YL: 1, XH: 2, YH: 2},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	g, err := diffusion.NewGrid(cat)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}

	want := ".BB\n" +
		".BB\n" +
		".AA\n" +
		".AA\n" +
		"...\n" +
		"\n" +
		"A Belgium (1,1)-(2,2)\n" +
		"B Netherlands (1,3)-(2,4)\n"

	if got := RenderGrid(g, cat); got != want {
		t.Errorf("RenderGrid() =\n%s\nwant\n%s", got, want)
	}
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		index int
		want  rune
	}{
		{-1, '.'},
		{0, 'A'},
		{25, 'Z'},
		{26, 'a'},
		{61, '9'},
		{62, '#'},
		{1000, '#'},
	}
	for _, tt := range tests {
		if got := Symbol(tt.index); got != tt.want {
			t.Errorf("Symbol(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestOwnershipRows_TopRowIsHighestY(t *testing.T) {
	cat, err := models.NewCatalog(map[string]models.Rect{
		"Low":  {XL: 0, YL: 0, XH: 1, YH: 0},
		"High": {XL: 1, YL: 2, XH: 1, YH: 2},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	g, err := diffusion.NewGrid(cat)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}

	want := []string{".A", "..", "BB"}
	got := OwnershipRows(g)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("OwnershipRows() = %q, want %q", got, want)
	}
}
