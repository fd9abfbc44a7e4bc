package diffusion

import (
	"fmt"

	"github.com/nvandessel/eurodiff/internal/constants"
	"github.com/nvandessel/eurodiff/internal/models"
)

// NoOwner marks a city that belongs to no country. Such cities never send
// or receive currency.
const NoOwner = -1

// Grid is a rows × cols array of cities stored row-major.
// Each city has an owner (a currency index or NoOwner) and one balance per
// currency. The owner layout is fixed once NewGrid returns and is shared by
// clones; only balances change between steps.
type Grid struct {
	rows       int
	cols       int
	currencies int
	owner      []int
	coins      []uint64
}

// NewGrid builds the initial grid for a catalog. Every city inside a
// country's rectangle is owned by that country and holds
// constants.InitialCoins of its currency and nothing else.
func NewGrid(cat *models.Catalog) (*Grid, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, fmt.Errorf("%w: no countries", models.ErrInvalidInput)
	}

	rows, cols := cat.Bounds()
	g := newEmptyGrid(rows, cols, cat.Len())

	for i := 0; i < cat.Len(); i++ {
		r := cat.Country(i).Rect
		for y := r.YL; y <= r.YH; y++ {
			for x := r.XL; x <= r.XH; x++ {
				c := g.cell(x, y)
				g.owner[c] = i
				g.coins[c*g.currencies+i] = constants.InitialCoins
			}
		}
	}

	return g, nil
}

func newEmptyGrid(rows, cols, currencies int) *Grid {
	owner := make([]int, rows*cols)
	for i := range owner {
		owner[i] = NoOwner
	}
	return &Grid{
		rows:       rows,
		cols:       cols,
		currencies: currencies,
		owner:      owner,
		coins:      make([]uint64, rows*cols*currencies),
	}
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Currencies returns the number of currencies tracked per city.
func (g *Grid) Currencies() int { return g.currencies }

// InBounds reports whether (x, y) is a city on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Owner returns the currency index of the country owning (x, y), or NoOwner.
func (g *Grid) Owner(x, y int) int {
	return g.owner[g.cell(x, y)]
}

// Balance returns the amount of a currency held by the city at (x, y).
func (g *Grid) Balance(x, y, currency int) uint64 {
	return g.coins[g.cell(x, y)*g.currencies+currency]
}

// Balances returns a copy of every balance held by the city at (x, y),
// indexed by currency.
func (g *Grid) Balances(x, y int) []uint64 {
	out := make([]uint64, g.currencies)
	copy(out, g.wallet(g.cell(x, y)))
	return out
}

// Total returns the sum of a currency over every city on the grid.
func (g *Grid) Total(currency int) uint64 {
	var sum uint64
	for c := 0; c < g.rows*g.cols; c++ {
		sum += g.coins[c*g.currencies+currency]
	}
	return sum
}

// Clone returns an independent copy of the grid's balances.
func (g *Grid) Clone() *Grid {
	coins := make([]uint64, len(g.coins))
	copy(coins, g.coins)
	return &Grid{
		rows:       g.rows,
		cols:       g.cols,
		currencies: g.currencies,
		owner:      g.owner,
		coins:      coins,
	}
}

// CopyFrom overwrites g's balances with src's. It panics if the two grids
// do not have the same shape.
func (g *Grid) CopyFrom(src *Grid) {
	g.mustMatch(src)
	copy(g.coins, src.coins)
}

// Equal reports whether both grids have the same shape, owners and balances.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols || g.currencies != o.currencies {
		return false
	}
	for i := range g.owner {
		if g.owner[i] != o.owner[i] {
			return false
		}
	}
	for i := range g.coins {
		if g.coins[i] != o.coins[i] {
			return false
		}
	}
	return true
}

func (g *Grid) cell(x, y int) int {
	return y*g.cols + x
}

// wallet returns the balance slice of a city. Writes go straight to the grid.
func (g *Grid) wallet(c int) []uint64 {
	return g.coins[c*g.currencies : (c+1)*g.currencies]
}

func (g *Grid) mustMatch(o *Grid) {
	if g.rows != o.rows || g.cols != o.cols || g.currencies != o.currencies {
		panic(fmt.Sprintf("diffusion: grid shape mismatch: %dx%dx%d vs %dx%dx%d",
			g.rows, g.cols, g.currencies, o.rows, o.cols, o.currencies))
	}
}
