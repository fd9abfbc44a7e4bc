// Package constants provides named constants used throughout the eurodiff codebase.
// This centralizes the fixed diffusion rules so the completion semantics can be
// audited in one place.
package constants

// Currency endowment and transfer constants
const (
	// InitialCoins is the balance of its own currency that every city starts with.
	// All other currencies start at zero.
	InitialCoins = 1_000_000

	// TransferDivisor determines the share of a balance sent to each neighbor per step.
	// A city sends floor(balance / TransferDivisor) of every currency to every
	// owned neighbor, so balances under TransferDivisor send nothing.
	TransferDivisor = 1000
)

// Simulation bounds
const (
	// DefaultStepCeiling is the maximum number of steps simulated before the
	// driver gives up on countries that have not completed.
	DefaultStepCeiling = 100_000

	// MaxCoordinate is the largest rectangle coordinate accepted on input.
	MaxCoordinate = 10_000

	// MaxGridBalances bounds rows*cols*currencies, the number of balances held
	// by one grid buffer. The simulation keeps two such buffers.
	MaxGridBalances = 1 << 24

	// InitialStep numbers the grid state before any diffusion. A catalog with
	// exactly one country completes at this step.
	InitialStep = 0
)

// Offset is a (dx, dy) displacement on the city grid.
type Offset struct {
	DX int
	DY int
}

// Neighbors lists the axis-adjacent offsets a city trades with: north, south,
// west and east. Diagonal cities are not neighbors.
var Neighbors = [4]Offset{
	{DX: 0, DY: -1},
	{DX: 0, DY: 1},
	{DX: -1, DY: 0},
	{DX: 1, DY: 0},
}
