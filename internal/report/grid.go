package report

import (
	"fmt"
	"strings"

	"github.com/nvandessel/eurodiff/internal/diffusion"
	"github.com/nvandessel/eurodiff/internal/models"
)

// countrySymbols letters countries in catalog order.
const countrySymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	emptySymbol    = '.'
	overflowSymbol = '#'
)

// Symbol returns the map letter for the country at catalog index i.
func Symbol(i int) rune {
	if i < 0 {
		return emptySymbol
	}
	if i >= len(countrySymbols) {
		return overflowSymbol
	}
	return rune(countrySymbols[i])
}

// OwnershipRows returns the ownership map of g, one string per row of
// cities, highest y first.
func OwnershipRows(g *diffusion.Grid) []string {
	rows := make([]string, 0, g.Rows())
	line := make([]rune, g.Cols())
	for y := g.Rows() - 1; y >= 0; y-- {
		for x := range line {
			line[x] = Symbol(g.Owner(x, y))
		}
		rows = append(rows, string(line))
	}
	return rows
}

// RenderGrid draws the ownership map of g followed by a legend mapping
// letters to countries.
func RenderGrid(g *diffusion.Grid, cat *models.Catalog) string {
	var b strings.Builder
	for _, row := range OwnershipRows(g) {
		b.WriteString(row)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	for i, c := range cat.Countries() {
		fmt.Fprintf(&b, "%c %s %s\n", Symbol(i), c.Name, c.Rect)
	}
	return b.String()
}
