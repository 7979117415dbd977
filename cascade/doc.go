// Package cascade simulates threshold-triggered cascades on a grid of
// accumulating counters.
//
// What
//
//   - Every cell is a Level: Charging(n) or Discharged.
//   - Advance runs one step: all cells gain a level, then every charging
//     cell above the threshold discharges into its eight neighbors, chaining
//     until nothing is above the threshold.
//   - Run(n) returns the running trigger total; FirstSync(limit) finds the
//     first step in which every cell triggered.
//
// Termination
//
//	A cell that triggered is Discharged for the rest of the step and only
//	Charging cells gain levels, so each cell triggers at most once per step
//	and the chain reaction ends after at most W×H triggers.
//
// Ownership
//
//	New clones its input. Advance mutates the simulator's private grid in
//	place; callers read it through Snapshot or Energies.
//
// Options
//
//   - DefaultOptions(): Threshold=9.
//   - WithThreshold(n): negative n → ErrOptionViolation.
//
// Errors
//
//   - ErrOptionViolation: invalid option.
//   - ErrNoSync: FirstSync reached its limit.
package cascade
