// Package widgets contains dumb render primitives for the board.
//
// Allowed here:
// - stateless drawing/composition helpers (stacks, panes, popups)
// - value-typed view state with pure helpers (list offset, map markers)
//
// Not allowed here:
// - key or mouse handling, board state transitions, network access
package widgets
