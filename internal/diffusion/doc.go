// Package diffusion implements the Euro diffusion simulation: currency
// spreads synchronously between axis-adjacent cities of rectangular
// countries until every city of a country holds every currency.
//
// The simulation is split into four parts:
//
//   - NewGrid stamps each country's rectangle onto a grid and gives every
//     owned city its initial endowment of the home currency.
//   - Engine.Step advances one synchronous step. It reads only the current
//     grid and writes only the next grid, so results never depend on the
//     order in which cities are visited.
//   - Tracker records the first step at which each country is complete.
//   - Simulator.Run drives steps until every country is complete, a step
//     moves no currency, or the step ceiling is reached.
//
// Usage:
//
//	records, err := diffusion.Simulate(map[string]models.Rect{
//	    "Belgium":     {XL: 1, YL: 1, XH: 2, YH: 2},
//	    "Netherlands": {XL: 1, YL: 3, XH: 2, YH: 4},
//	})
//	// records: [{Belgium 2} {Netherlands 2}]
package diffusion
