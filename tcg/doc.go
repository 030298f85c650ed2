// Package tcg implements the Timing Conflict Graph: a directed multigraph
// whose vertices are (vehicle, CZ) reservation intents (plus one terminal
// sentinel vertex per vehicle) and whose edges encode four constraint
// types:
//
//   - Type1 — same-vehicle sequential (static, always decided)
//   - Type2 — committed conflict (decided, oriented because a predecessor
//     already committed)
//   - Type3 — undecided conflict, stored as a mirrored pair of half-edges
//   - Type4 — execution order, created when one Type3 half of a pair is
//     chosen by StartExecute
//
// Following the "cyclic references" design note, the graph is an arena:
// Vertex and Edge are identified by small integer ids (VertexID, EdgeID)
// and owned by the Graph in insertion-order slices; all (vehicle, CZ)
// lookups go through a hash index. The Graph holds non-owning references
// to *vehicle.Vehicle — vehicle lifetime is owned by the simulator.
//
// The decided-edge subgraph (Type1 ∪ Type2 ∪ Type4) is always required to
// be a DAG; CheckDeadlock reports whether that currently holds, using the
// same three-colour DFS marking the rest of this module's sibling graph
// library uses for cycle detection, simplified to a boolean existence
// check rather than full cycle enumeration.
package tcg
