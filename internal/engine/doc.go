// Package engine implements the event-driven two-block collision core.
//
// The engine advances time exactly to each collision event instead of
// sampling at fixed small steps: given current positions and velocities it
// computes the analytic time until the small block reaches the wall and
// until the large block catches the small one, jumps to whichever comes
// first, and applies the matching resolution (velocity reversal at the
// wall, 1-D elastic collision between the blocks). The loop repeats until
// the requested time slice is exhausted, so arbitrarily many collisions can
// resolve inside a single Advance call without tunneling.
//
// With a mass ratio of 100^k the cumulative collision count spells out the
// first k+1 digits of pi (Galperin's billiard result), which is what the
// surrounding tooling visualizes.
package engine
