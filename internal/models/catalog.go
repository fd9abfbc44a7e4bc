package models

import (
	"fmt"
	"sort"

	"github.com/nvandessel/eurodiff/internal/constants"
)

// Catalog is a validated, immutable set of countries.
// Countries are kept sorted by name; a country's position in that order is
// its currency index everywhere else in the simulation.
type Catalog struct {
	countries []Country
	index     map[string]int
}

// NewCatalog validates the rectangles and builds a catalog.
// It fails with ErrInvalidInput when the map is empty, a name is empty, a
// rectangle is malformed, two rectangles overlap, or the grid they span
// would hold more than constants.MaxGridBalances balances. Countries are
// checked in name order, so the first problem reported does not depend on
// map iteration.
func NewCatalog(rects map[string]Rect) (*Catalog, error) {
	if len(rects) == 0 {
		return nil, fmt.Errorf("%w: no countries", ErrInvalidInput)
	}

	countries := make([]Country, 0, len(rects))
	for name, r := range rects {
		countries = append(countries, Country{Name: name, Rect: r})
	}
	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})

	for _, c := range countries {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: country name is empty", ErrInvalidInput)
		}
		if err := ValidateRect(c.Rect); err != nil {
			return nil, fmt.Errorf("country %q: %w", c.Name, err)
		}
	}

	for i := range countries {
		for j := i + 1; j < len(countries); j++ {
			if countries[i].Rect.Overlaps(countries[j].Rect) {
				return nil, fmt.Errorf("%w: countries %q %s and %q %s overlap",
					ErrInvalidInput,
					countries[i].Name, countries[i].Rect,
					countries[j].Name, countries[j].Rect)
			}
		}
	}

	index := make(map[string]int, len(countries))
	for i, c := range countries {
		index[c.Name] = i
	}
	cat := &Catalog{countries: countries, index: index}

	// Coordinates are bounded above, so the product fits in an int64.
	rows, cols := cat.Bounds()
	if balances := int64(rows) * int64(cols) * int64(len(countries)); balances > constants.MaxGridBalances {
		return nil, fmt.Errorf("%w: a %dx%d grid with %d currencies needs %d balances, limit is %d",
			ErrInvalidInput, cols, rows, len(countries), balances, constants.MaxGridBalances)
	}

	return cat, nil
}

// Len returns the number of countries (and therefore currencies).
func (c *Catalog) Len() int {
	return len(c.countries)
}

// Country returns the country with currency index i.
func (c *Catalog) Country(i int) Country {
	return c.countries[i]
}

// Countries returns a copy of the countries in name order.
func (c *Catalog) Countries() []Country {
	out := make([]Country, len(c.countries))
	copy(out, c.countries)
	return out
}

// Names returns the country names in currency index order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.countries))
	for i, country := range c.countries {
		names[i] = country.Name
	}
	return names
}

// Index returns the currency index of the named country.
func (c *Catalog) Index(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// Cities returns the number of cities owned by any country.
func (c *Catalog) Cities() int {
	n := 0
	for _, country := range c.countries {
		n += country.Rect.Area()
	}
	return n
}

// Bounds returns the grid size needed to hold every rectangle:
// rows = 1 + max(YH) and cols = 1 + max(XH).
func (c *Catalog) Bounds() (rows, cols int) {
	for _, country := range c.countries {
		if country.Rect.YH+1 > rows {
			rows = country.Rect.YH + 1
		}
		if country.Rect.XH+1 > cols {
			cols = country.Rect.XH + 1
		}
	}
	return rows, cols
}
