package simulator

import (
	"github.com/kaienlin/tcgsim/tcg"
	"github.com/kaienlin/tcgsim/vehicle"
)

// noVehicle is the "no choice made this tick" sentinel passed to step; it
// can never equal a real vehicle id since AddVehicle rejects the empty
// string.
const noVehicle = ""

// Start (re)builds the Timing Conflict Graph from the current vehicle set
// and calls restart. Legal from any status; calling it again after a run
// has finished starts a fresh run over the same vehicles.
func (s *Simulator) Start() {
	s.graph = tcg.Build(s.Vehicles(), s.intersection)
	s.restart()
}

// Restart resets vertex and vehicle states and replays the run from
// timestamp 0 without rebuilding the graph. Calling it twice in a row
// yields an identical initial observation (spec.md §8).
func (s *Simulator) Restart() error {
	if s.graph == nil {
		return &InvalidStateError{Op: "Restart", Current: s.status}
	}
	s.restart()
	return nil
}

func (s *Simulator) restart() {
	s.status = Running
	s.timestamp = -1
	s.graph.ResetVerticesState()
	for _, id := range s.vehicleOrder {
		s.vehicles[id].Reset()
	}

	s.nonExecuted = s.nonExecuted[:0]
	for _, v := range s.graph.Vertices() {
		s.nonExecuted = append(s.nonExecuted, v.ID)
	}
	s.executing = s.executing[:0]

	s.calculateEnteringTimeWoDelay()
	s.step(noVehicle)
}

// calculateEnteringTimeWoDelay walks each vehicle's TYPE_1 chain once,
// seeded by its earliest arrival time, recording the no-conflict baseline
// entering time at every vertex. Called once per restart.
func (s *Simulator) calculateEnteringTimeWoDelay() {
	for _, id := range s.vehicleOrder {
		v := s.vehicles[id]
		lb := v.EarliestArrivalTime

		vtx, err := s.graph.VertexByVehicleCZ(v.ID, v.Trajectory[0])
		if err != nil {
			continue
		}
		for {
			vtx.SetEnteringTimeWoDelay(lb)
			edge, ok := s.graph.Type1Out(vtx)
			if !ok {
				break
			}
			lb += vtx.PassingTime + edge.WaitingTime
			vtx = s.graph.Vertex(edge.To)
		}
	}
}

// Step is the public entry point for advancing the simulation by one
// decision. movedVehicleID names the vehicle whose current vertex should
// start executing this tick, or noVehicle ("") to make no choice. It is an
// error to call Step before Start; once Terminated or Deadlock, Step is a
// no-op (matching spec.md §7).
func (s *Simulator) Step(movedVehicleID string) error {
	if s.status == Initialized {
		return &InvalidStateError{Op: "Step", Current: s.status}
	}
	if s.status == Terminated || s.status == Deadlock {
		return nil
	}
	s.step(movedVehicleID)
	return nil
}

// step implements spec.md §4.2's eight ordered sub-steps.
func (s *Simulator) step(movedVehicleID string) {
	if len(s.nonExecuted) == 0 {
		s.status = Terminated
		return
	}

	executable := s.executableVertices()

	executedThisTick := false
	if movedVehicleID != noVehicle {
		if vid, ok := executable[movedVehicleID]; ok {
			v := s.graph.Vertex(vid)
			// Readiness is already guaranteed by ee == timestamp; the error
			// return exists only to catch model bugs, never user input.
			if err := s.graph.StartExecute(v); err == nil {
				v.SetEnteringTime(s.timestamp)
				v.SetEarliestEnteringTime(s.timestamp)
				s.removeNonExecuted(v.ID)
				s.executing = append(s.executing, v.ID)
				v.Vehicle.MoveToNextCZ()
				v.Vehicle.SetState(vehicle.Moving)
				executedThisTick = true
			}
		}
	}

	if !executedThisTick || len(executable) == 1 {
		s.timestamp++
	}

	s.finishExecuting()

	if s.updateAllEarliestEnteringTime() {
		s.status = Deadlock
		return
	}

	for _, id := range s.vehicleOrder {
		v := s.vehicles[id]
		if v.State == vehicle.NotArrived && v.EarliestArrivalTime == s.timestamp {
			v.SetState(vehicle.Blocked)
		}
		if v.State == vehicle.Ready {
			v.SetState(vehicle.Blocked)
		}
	}

	for _, id := range s.nonExecuted {
		v := s.graph.Vertex(id)
		if v.EarliestEnteringTimeOK() && v.EarliestEnteringTime == s.timestamp {
			v.Vehicle.SetState(vehicle.Ready)
		}
	}
}

// executableVertices returns, for every non-executed vertex whose earliest
// entering time equals the current timestamp, a mapping from vehicle id to
// that vertex. A vehicle has at most one non-executed vertex reachable at
// a time, so the map is never ambiguous.
func (s *Simulator) executableVertices() map[string]tcg.VertexID {
	out := make(map[string]tcg.VertexID, len(s.nonExecuted))
	for _, id := range s.nonExecuted {
		v := s.graph.Vertex(id)
		if v.EarliestEnteringTimeOK() && v.EarliestEnteringTime == s.timestamp {
			out[v.Vehicle.ID] = id
		}
	}
	return out
}

// ExecutableVehicleIDs returns the ids of vehicles whose next vertex is
// currently executable (EarliestEnteringTime == Timestamp), in
// vehicleOrder, using the same readiness test as step.
func (s *Simulator) ExecutableVehicleIDs() []string {
	executable := s.executableVertices()
	out := make([]string, 0, len(executable))
	for _, id := range s.vehicleOrder {
		if _, ok := executable[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func (s *Simulator) removeNonExecuted(id tcg.VertexID) {
	for i, vid := range s.nonExecuted {
		if vid == id {
			s.nonExecuted = append(s.nonExecuted[:i], s.nonExecuted[i+1:]...)
			return
		}
	}
}

func (s *Simulator) finishExecuting() {
	remaining := s.executing[:0]
	for _, id := range s.executing {
		v := s.graph.Vertex(id)
		if s.timestamp >= v.EnteringTime+v.PassingTime {
			s.graph.FinishExecute(v)
			v.Vehicle.SetState(vehicle.Blocked)
			if v.Vehicle.CurCZ() == vehicle.DepartedSentinel {
				v.Vehicle.SetState(vehicle.Left)
			}
		} else {
			remaining = append(remaining, id)
		}
	}
	s.executing = remaining
}

// updateAllEarliestEnteringTime recomputes earliest_entering_time for
// every non-executed vertex by memoised recursion over decided in-edges,
// after first checking for a cycle in the decided subgraph. It reports
// whether a deadlock was found, in which case the ee values are left
// untouched (matching the original's check-before-clear ordering).
func (s *Simulator) updateAllEarliestEnteringTime() bool {
	if s.graph.CheckDeadlock() {
		return true
	}

	for _, id := range s.nonExecuted {
		s.graph.Vertex(id).ClearEarliestEnteringTime()
	}
	for _, id := range s.nonExecuted {
		v := s.graph.Vertex(id)
		if !v.EarliestEnteringTimeOK() {
			s.computeEarliestEnteringTime(v)
		}
	}

	return false
}

// computeEarliestEnteringTime implements spec.md §4.2's ee recursion.
// Recursion depth is bounded by the longest TYPE_1 chain plus decided
// conflicts incident along it; the recursion is not converted to an
// iterative DFS, so very large traffics recurse that deep.
func (s *Simulator) computeEarliestEnteringTime(v *tcg.Vertex) {
	res := s.timestamp

	if v.Vehicle.IsFirstTrajectoryVertex(v.CZID) && v.Vehicle.EarliestArrivalTime > res {
		res = v.Vehicle.EarliestArrivalTime
	}

	for _, eid := range v.InEdges {
		e := s.graph.Edge(eid)
		if !e.Decided {
			continue
		}
		parent := s.graph.Vertex(e.From)
		if !parent.EarliestEnteringTimeOK() {
			s.computeEarliestEnteringTime(parent)
		}
		if cand := parent.EarliestEnteringTime + parent.PassingTime + e.WaitingTime; cand > res {
			res = cand
		}
	}

	v.SetEarliestEnteringTime(res)
}
