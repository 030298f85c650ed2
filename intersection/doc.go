// Package intersection describes the static layout of an intersection
// composed of interlocking conflict zones (CZs).
//
// An Intersection is immutable once built: source lanes map to an ordered
// sequence of CZs a vehicle on that lane must cross; destination lanes map
// to the set of CZs that count as "arrived"; adjacency records which CZ
// pairs a vehicle may step between, together with the transit (waiting)
// time of that step.
//
// The type exposes only the accessor surface the simulation core needs:
// SourceLane, DestinationLane, HasCZ, Adjacent, TransitTime. Construction
// goes through New with functional Options, following the same pattern as
// lvlath/core.NewGraph(GraphOption...).
package intersection
