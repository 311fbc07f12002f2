// Package rings enumerates the simple cycles (rings) passing through an atom of a
// species.Species, bounded by a ring-size window, and removes structural duplicates.
//
// What:
//
//   - Find: depth-first, backtracking walk from an origin atom. The current path
//     starts at the origin; a ring is recorded whenever the tail bonds back to the
//     origin and the path holds at least Window.Min atoms. Atoms already on the path
//     are never revisited (no non-simple cycles) and the path never grows past Window.Max.
//   - Unique: de-duplicates rings under rotation and reflection using a canonical
//     signature (Booth's minimal rotation of the index sequence and of its reverse).
//
// Every ring through the origin is discovered once per traversal direction;
// Find returns each distinct ring exactly once, in discovery order.
//
// Complexity:
//
//   - Enumeration: exponential in the worst case for densely bonded graphs, bounded by
//     Window.Max; callers wanting bounded latency must keep Window.Max small.
//   - Canonicalisation: O(L) per ring of length L.
package rings
