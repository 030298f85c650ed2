package simulator

import "github.com/kaienlin/tcgsim/vehicle"

// GetCumulativeDelayedTime returns the partial-run delay estimate used as
// a per-step cost signal: for each vehicle, delay already accrued relative
// to its entering_time_wo_delay baseline, plus a projection from its
// current vertex if it is running behind that baseline's schedule.
func (s *Simulator) GetCumulativeDelayedTime() int64 {
	var res int64
	for _, id := range s.vehicleOrder {
		v := s.vehicles[id]
		switch v.CurCZ() {
		case vehicle.EnteredSentinel:
			if d := s.timestamp - v.EarliestArrivalTime; d > 0 {
				res += d
			}
		case vehicle.DepartedSentinel:
			term, _ := s.graph.Terminal(v.ID)
			res += term.EnteringTime - term.EnteringTimeWoDelay
		default:
			cur, _ := s.graph.VertexByVehicleCZ(v.ID, v.CurCZ())
			edge, _ := s.graph.Type1Out(cur)
			res += cur.EnteringTime - cur.EnteringTimeWoDelay
			if realLB := cur.EnteringTime + cur.PassingTime + edge.WaitingTime; s.timestamp > realLB {
				res += s.timestamp - realLB
			}
		}
	}
	return res
}

// GetTotalDelayedTime returns the sum over vehicles of (entering_time of
// the "$" sentinel − zero-delay arrival at "$"), where zero-delay is
// earliest_arrival_time plus every passing_time and TYPE_1 waiting_time
// along the trajectory. Defined only once every vehicle has departed.
func (s *Simulator) GetTotalDelayedTime() int64 {
	var res int64
	for _, id := range s.vehicleOrder {
		v := s.vehicles[id]
		zeroDelay := v.EarliestArrivalTime

		for i, cz := range v.Trajectory {
			v1, _ := s.graph.VertexByVehicleCZ(v.ID, cz)
			zeroDelay += v1.PassingTime
			if i != len(v.Trajectory)-1 {
				edge, _ := s.graph.Type1Out(v1)
				zeroDelay += edge.WaitingTime
			}
		}

		term, _ := s.graph.Terminal(v.ID)
		res += term.EnteringTime - zeroDelay
	}
	return res
}
