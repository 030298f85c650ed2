package tcg

// ResetVerticesState sets every vertex back to NonExecuted and restores
// every decided Type2/Type4 edge pair back to an undecided Type3 pair
// (Type1 edges are left untouched — they are always decided). Called by
// Simulator.restart.
//
// Complexity: O(V+E).
func (g *Graph) ResetVerticesState() {
	for _, v := range g.vertices {
		v.State = NonExecuted
		v.hasEntering = false
		v.hasEarliest = false
	}

	seen := make(map[EdgeID]bool, len(g.edges))
	for _, e := range g.edges {
		if e.Type == Type1 || seen[e.ID] {
			continue
		}
		if e.Type == Type2 || e.Type == Type4 {
			g.revertType4(e)
		}
		seen[e.ID] = true
	}
}

// revertType4 turns a single decided Type2 or Type4 edge back into a mirrored,
// undecided Type3 pair by recreating the removed reverse half-edge.
func (g *Graph) revertType4(e *Edge) {
	e.Type = Type3
	e.Decided = false

	mirrorID := g.newEdge(Type3, e.To, e.From, false, 0)
	e.Mirror = mirrorID
	g.edges[mirrorID].Mirror = e.ID
}

// StartExecute transitions v from NonExecuted to Executing.
//
// Precondition: v.State == NonExecuted and every decided in-edge's
// source vertex is Executed (the caller — Simulator.step — is
// responsible for only calling this on a vertex whose
// EarliestEnteringTime equals the current timestamp, which already
// implies this).
//
// Effect: for every Type3 half-edge pair incident to v, the outgoing
// half v->other is promoted to Type4 and the mirror half other->v is
// removed; v.State becomes Executing.
//
// Complexity: O(deg(v)).
func (g *Graph) StartExecute(v *Vertex) error {
	if v.State != NonExecuted {
		return ErrVertexNotReady
	}
	for _, eid := range v.InEdges {
		e := g.edges[eid]
		if e.Decided && g.vertices[e.From].State != Executed {
			return ErrVertexNotReady
		}
	}

	for _, eid := range v.OutEdges {
		e := g.edges[eid]
		if e.Type != Type3 {
			continue
		}
		g.promoteOutgoingHalf(e)
	}

	v.State = Executing

	return nil
}

// promoteOutgoingHalf promotes e (an outgoing Type3 half-edge) to Type4
// and discards its mirror half-edge from the opposite vertex's edge
// lists.
func (g *Graph) promoteOutgoingHalf(e *Edge) {
	e.Type = Type4
	e.Decided = true

	mirror := g.edges[e.Mirror]
	g.detachEdge(mirror)
	e.Mirror = invalidEdge
}

// detachEdge removes e from its endpoints' In/OutEdges lists. The Edge
// record itself is left in the arena (future rebuilds via
// ResetVerticesState allocate a fresh id instead of resurrecting this
// one) so that EdgeID values already handed out never dangle.
func (g *Graph) detachEdge(e *Edge) {
	g.vertices[e.From].OutEdges = removeEdgeID(g.vertices[e.From].OutEdges, e.ID)
	g.vertices[e.To].InEdges = removeEdgeID(g.vertices[e.To].InEdges, e.ID)
}

func removeEdgeID(ids []EdgeID, target EdgeID) []EdgeID {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// FinishExecute transitions v from Executing to Executed.
// Complexity: O(1).
func (g *Graph) FinishExecute(v *Vertex) {
	v.State = Executed
}
