// Package looptrace walks the single closed pipe loop that passes through the
// Start tile of a pipe-maze grid.
//
// What:
//
//   - New locates Start and the two pipes it connects to (its exits).
//   - Walk returns a lazy Walker that follows the pipes from one exit,
//     one tile per Next call, until it arrives back at Start.
//   - MeetingStep advances two walkers in lock-step and reports the first
//     1-based step at which they stand on the same tile. Started from the
//     two exits, that step is the loop's half length: the farthest distance
//     from Start along the loop.
//   - Loop and Sanitize isolate the loop from the tiles around it;
//     EnclosedArea counts the tiles strictly inside it.
//
// Walker state machine:
//
//	state      = (current tile, side it was entered from)
//	transition = next := current.ConnectsTo(from)
//	             current, from = neighbor(current, next), next.Opposite()
//	halt       = next tile is Start           (loop closed)
//	           | ConnectsTo reports false     (dead end, malformed input)
//	           | neighbor leaves the grid     (malformed input)
//
// Complexity:
//
//   - New: O(W×H) to find Start.
//   - HalfLength: O(L) for a loop of L tiles, O(1) extra memory.
//   - Loop, Sanitize, EnclosedArea: O(L) + O(W×H).
//
// Errors:
//
//   - ErrStructuralViolation: no Start, several Starts, a Start without
//     exactly two connecting pipes, or a walk that dead-ends.
package looptrace
