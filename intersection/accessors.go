package intersection

// HasCZ reports whether id names a registered conflict zone.
// Complexity: O(1).
func (it *Intersection) HasCZ(id string) bool {
	_, ok := it.czIDs[id]
	return ok
}

// CZIDs returns the set of all registered CZ ids, newly allocated per call.
// Complexity: O(|CZ|).
func (it *Intersection) CZIDs() []string {
	out := make([]string, 0, len(it.czIDs))
	for id := range it.czIDs {
		out = append(out, id)
	}
	return out
}

// SourceLane returns the ordered CZ sequence for laneID and whether it
// exists. The returned slice is owned by the Intersection; callers must
// not mutate it.
// Complexity: O(1).
func (it *Intersection) SourceLane(laneID string) ([]string, bool) {
	seq, ok := it.srcLanes[laneID]
	return seq, ok
}

// DestinationLane reports whether cz is a member of dst lane laneID.
// Returns false, false if laneID is unknown.
// Complexity: O(1).
func (it *Intersection) DestinationLane(laneID, cz string) (member bool, laneExists bool) {
	set, ok := it.dstLanes[laneID]
	if !ok {
		return false, false
	}
	_, member = set[cz]
	return member, true
}

// HasSourceLane reports whether laneID was registered as a source lane.
func (it *Intersection) HasSourceLane(laneID string) bool {
	_, ok := it.srcLanes[laneID]
	return ok
}

// HasDestinationLane reports whether laneID was registered as a destination lane.
func (it *Intersection) HasDestinationLane(laneID string) bool {
	_, ok := it.dstLanes[laneID]
	return ok
}

// Adjacent reports whether a vehicle may step directly from CZ a to CZ b.
// Complexity: O(1).
func (it *Intersection) Adjacent(a, b string) bool {
	row, ok := it.adjacency[a]
	if !ok {
		return false
	}
	_, ok = row[b]
	return ok
}

// TransitTime returns the TYPE_1 waiting time for stepping directly from a
// to b, and whether that adjacency is registered at all.
// Complexity: O(1).
func (it *Intersection) TransitTime(a, b string) (int64, bool) {
	row, ok := it.adjacency[a]
	if !ok {
		return 0, false
	}
	t, ok := row[b]
	return t, ok
}

// ValidateTrajectory checks that traj is non-empty, that every consecutive
// pair is a registered adjacency, that traj[0] lies on srcLaneID, and that
// traj[len(traj)-1] lies on dstLaneID. It is the single source of truth
// used by Simulator.AddVehicle.
func (it *Intersection) ValidateTrajectory(traj []string, srcLaneID, dstLaneID string) error {
	if len(traj) == 0 {
		return ErrUnknownCZ
	}
	for _, cz := range traj {
		if !it.HasCZ(cz) {
			return ErrUnknownCZ
		}
	}
	for i := 0; i+1 < len(traj); i++ {
		if !it.Adjacent(traj[i], traj[i+1]) {
			return ErrUnknownCZ
		}
	}
	if !it.HasSourceLane(srcLaneID) {
		return ErrUnknownSrcLane
	}
	if !it.HasDestinationLane(dstLaneID) {
		return ErrUnknownDstLane
	}
	seq, _ := it.SourceLane(srcLaneID)
	memberOfSrc := false
	for _, cz := range seq {
		if cz == traj[0] {
			memberOfSrc = true
			break
		}
	}
	if !memberOfSrc {
		return ErrUnknownSrcLane
	}
	if member, _ := it.DestinationLane(dstLaneID, traj[len(traj)-1]); !member {
		return ErrUnknownDstLane
	}

	return nil
}
