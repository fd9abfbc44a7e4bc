package diffusion

import (
	"github.com/nvandessel/eurodiff/internal/constants"
)

// Engine advances a grid by one synchronous diffusion step.
// The engine is stateless: all mutable state lives in the two grids passed
// to Step.
type Engine struct {
	neighbors []constants.Offset
}

// NewEngine creates an engine using the 4-neighbor adjacency in
// constants.Neighbors.
func NewEngine() *Engine {
	return &Engine{neighbors: constants.Neighbors[:]}
}

// Step writes the state following cur into next and returns the number of
// non-zero transfers applied. Zero transfers means cur is a fixed point.
//
// next starts as a copy of cur. Then every owned city sends
// floor(balance/TransferDivisor) of each currency to each owned neighbor.
// Amounts are always computed from cur, never from the partially updated
// next, so every city is updated from the same snapshot.
//
// A city sends at most len(neighbors) * floor(b/TransferDivisor) <= b of a
// balance b, so no balance can drop below zero.
//
// Step panics if the grids differ in shape or are the same grid.
func (e *Engine) Step(cur, next *Grid) int {
	if cur == next {
		panic("diffusion: Step needs two distinct grids")
	}
	next.CopyFrom(cur)

	transfers := 0
	for y := 0; y < cur.rows; y++ {
		for x := 0; x < cur.cols; x++ {
			from := cur.cell(x, y)
			if cur.owner[from] == NoOwner {
				continue
			}
			src := cur.wallet(from)
			give := next.wallet(from)

			for _, off := range e.neighbors {
				nx, ny := x+off.DX, y+off.DY
				if !cur.InBounds(nx, ny) {
					continue
				}
				to := cur.cell(nx, ny)
				if cur.owner[to] == NoOwner {
					continue
				}
				take := next.wallet(to)

				for k, balance := range src {
					amount := balance / constants.TransferDivisor
					if amount == 0 {
						continue
					}
					take[k] += amount
					give[k] -= amount
					transfers++
				}
			}
		}
	}

	return transfers
}
