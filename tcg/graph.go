package tcg

import (
	"github.com/kaienlin/tcgsim/intersection"
	"github.com/kaienlin/tcgsim/vehicle"
)

// vehicleCZKey identifies a vertex by (vehicle id, cz id). The terminal
// sentinel vertex for a vehicle is keyed with cz id "$"+vehicle id,
// mirroring the (vehicle, "$<veh_id>") identity from spec.md §3.
type vehicleCZKey struct {
	vehicleID string
	czID      string
}

// Graph is the Timing Conflict Graph arena: vertices and edges are owned
// here in insertion-order slices and addressed by small integer ids.
// Iteration via Vertices()/Edges() is deterministic in insertion order,
// which is also the tie-break order spec.md §9(b) requires documented.
type Graph struct {
	vertices []*Vertex
	edges    []*Edge
	index    map[vehicleCZKey]VertexID
}

// sentinelCZID returns the synthetic CZ id used for a vehicle's terminal
// "$" vertex.
func sentinelCZID(vehicleID string) string {
	return vehicle.DepartedSentinel + vehicleID
}

// Build constructs a fresh Graph from the given vehicles (in the order
// provided — the caller, i.e. Simulator, is the source of insertion
// order) and the static intersection description. For each vehicle it
// creates one vertex per trajectory CZ plus one terminal sentinel vertex,
// links them with Type1 edges (waiting_time from the intersection's
// adjacency table, 0 into the sentinel), and then, for every unordered
// pair of vertices from different vehicles sharing a CZ, inserts a
// mirrored Type3 half-edge pair.
//
// Complexity: O(sum of trajectory lengths + conflicting pairs).
func Build(vehicles []*vehicle.Vehicle, it *intersection.Intersection) *Graph {
	g := &Graph{
		index: make(map[vehicleCZKey]VertexID),
	}

	for _, veh := range vehicles {
		g.addVehicleChain(veh, it)
	}

	g.addConflictEdges()

	return g
}

// addVehicleChain creates the Type1 chain of vertices for one vehicle:
// trajectory[0], trajectory[1], ..., trajectory[n-1], "$veh".
func (g *Graph) addVehicleChain(veh *vehicle.Vehicle, it *intersection.Intersection) {
	var prev VertexID
	hasPrev := false

	for _, cz := range veh.Trajectory {
		vid := g.newVertex(veh, cz, veh.PassingTime)
		if hasPrev {
			wt, _ := it.TransitTime(g.vertices[prev].CZID, cz)
			g.newEdge(Type1, prev, vid, true, wt)
		}
		prev, hasPrev = vid, true
	}

	sentinel := g.newVertex(veh, sentinelCZID(veh.ID), 0)
	if hasPrev {
		g.newEdge(Type1, prev, sentinel, true, 0)
	}
}

// addConflictEdges scans every pair of vertices from different vehicles
// sharing the same real CZ id and inserts a mirrored, undecided Type3
// half-edge pair between them. Sentinel vertices never collide since
// their CZ ids are unique per vehicle.
func (g *Graph) addConflictEdges() {
	byCZ := make(map[string][]VertexID)
	for _, v := range g.vertices {
		byCZ[v.CZID] = append(byCZ[v.CZID], v.ID)
	}

	for _, ids := range byCZ {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a, b := ids[i], ids[j]
				if g.vertices[a].Vehicle.ID == g.vertices[b].Vehicle.ID {
					continue
				}
				e1 := g.newEdge(Type3, a, b, false, 0)
				e2 := g.newEdge(Type3, b, a, false, 0)
				g.edges[e1].Mirror = e2
				g.edges[e2].Mirror = e1
			}
		}
	}
}

func (g *Graph) newVertex(veh *vehicle.Vehicle, czID string, passingTime int64) VertexID {
	id := VertexID(len(g.vertices))
	v := &Vertex{
		ID:          id,
		Vehicle:     veh,
		CZID:        czID,
		State:       NonExecuted,
		PassingTime: passingTime,
	}
	g.vertices = append(g.vertices, v)
	g.index[vehicleCZKey{veh.ID, czID}] = id

	return id
}

func (g *Graph) newEdge(t EdgeType, from, to VertexID, decided bool, waitingTime int64) EdgeID {
	id := EdgeID(len(g.edges))
	e := &Edge{
		ID:          id,
		Type:        t,
		From:        from,
		To:          to,
		Decided:     decided,
		WaitingTime: waitingTime,
		Mirror:      invalidEdge,
	}
	g.edges = append(g.edges, e)
	g.vertices[from].OutEdges = append(g.vertices[from].OutEdges, id)
	g.vertices[to].InEdges = append(g.vertices[to].InEdges, id)

	return id
}

// Vertices returns all vertices in insertion order. The returned slice is
// owned by Graph; callers must not mutate its backing array's length.
func (g *Graph) Vertices() []*Vertex {
	return g.vertices
}

// Vertex returns the vertex for the given id.
func (g *Graph) Vertex(id VertexID) *Vertex {
	return g.vertices[id]
}

// Edge returns the edge for the given id.
func (g *Graph) Edge(id EdgeID) *Edge {
	return g.edges[id]
}

// VertexByVehicleCZ looks up the vertex for (vehicleID, czID) in O(1).
// Pass sentinelCZID(vehicleID) — or use Terminal — for a vehicle's "$"
// vertex.
func (g *Graph) VertexByVehicleCZ(vehicleID, czID string) (*Vertex, error) {
	id, ok := g.index[vehicleCZKey{vehicleID, czID}]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return g.vertices[id], nil
}

// Terminal returns the "$" sentinel vertex for vehicleID.
func (g *Graph) Terminal(vehicleID string) (*Vertex, error) {
	return g.VertexByVehicleCZ(vehicleID, sentinelCZID(vehicleID))
}

// Type1Out returns the single outgoing Type1 edge of v, if any.
func (g *Graph) Type1Out(v *Vertex) (*Edge, bool) {
	for _, eid := range v.OutEdges {
		if e := g.edges[eid]; e.Type == Type1 {
			return e, true
		}
	}
	return nil, false
}
