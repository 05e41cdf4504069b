// Package bench measures the fixed-length path algorithms against each other
// on identical seeded random graphs.
//
// For every target length in [MinLength, MaxLength] the Runner performs Runs
// rounds. A round fills the shared graph at Density, calls every algorithm in a
// freshly shuffled order, verifies each returned path and clears the graph.
// Elapsed seconds are averaged per length; a round without a path contributes
// zero to Stat.Mean and is excluded from Stat.MeanFound.
//
// Determinism
//
//	Graph fill, algorithm order and warm-up each draw from their own RNG
//	stream derived from Config.Seed, so selecting fewer algorithms or changing
//	the warm-up never changes the measured graphs.
//
// Outcomes
//
//   - A per-call Timeout or an exhausted step budget is recorded as TimedOut.
//   - Hitting the deviation-search cap is recorded as Capped.
//   - A path that fails verify.Path aborts the run with an error.
//   - Cancelling the Run context returns the rows measured so far and the error.
package bench
