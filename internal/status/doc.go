// Package status represents values for the cell's status.
//
// The value is split into 2 sections, outcome and flags, as follows,
// starting from the right:
// - The outcome section takes 2 bits.
// - The flags section takes 6 bits.
//
// Description of the sections:
//
//   - The outcome section describes the outcome of the cell.
//     = 4 mutually exclusive possible values, represented by 2 bits:
//
//   - unresolved: the cell's computation hasn't started yet.
//
//   - Running: the computation is in flight, owned by exactly one winner
//     (the first Force call, or the future's worker).
//
//   - Fulfilled: the computation finished and its value is cached.
//
//   - Failed: the computation failed and its cause is cached.
//     = The outcome value is updated at most twice over the cell's lifetime,
//     unresolved -> running, then running -> fulfilled or failed, and the
//     second transition is permanent.
//     = The cell's result (value or cause) is always written before the
//     transition to fulfilled or failed, so readers that observe one of
//     those outcomes may read the result without holding the cell's guard.
//
//   - The flags section describes the behaviour of the cell, it consists of
//     two sub-sections, types, and failure categories.
//     = The types sub-section has one value(with 1 more reserved):
//
//   - future: whether the cell's computation was dispatched to a worker at
//     construction time or not.
//     The type flags are written once, at creation, and never updated.
//     = The failure categories sub-section has two values(with 2 more
//     reserved):
//
//   - diverged: the cached failure cause is a divergence that escaped the
//     computation.
//
//   - panicked: the cached failure cause is a captured panic.
//     The failure flags are written once, at the transition to the failed
//     outcome, and never updated.
package status
