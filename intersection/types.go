package intersection

// Intersection is the static, immutable description of an intersection's
// conflict zones (CZs), its source/destination lanes, and the CZ adjacency
// relation (with per-pair transit/waiting time) used to validate and cost
// vehicle trajectories.
//
// All fields are built once via New and never mutated afterward, so an
// *Intersection may be shared freely across goroutines without locking.
type Intersection struct {
	czIDs map[string]struct{} // set of registered CZ ids

	srcLanes map[string][]string          // src_lane_id -> ordered CZ sequence
	dstLanes map[string]map[string]struct{} // dst_lane_id -> set of CZ ids

	// adjacency[a][b] = transit time from CZ a to CZ b (TYPE_1 waiting_time
	// when a,b are consecutive in some vehicle's trajectory).
	adjacency map[string]map[string]int64
}

// Option configures an Intersection during New.
type Option func(*Intersection)

// WithCZ registers one or more conflict-zone identifiers. Duplicate ids are
// idempotent. Empty ids are silently ignored (construction-time options
// never panic nor error; validation happens inside New).
func WithCZ(ids ...string) Option {
	return func(it *Intersection) {
		for _, id := range ids {
			if id == "" {
				continue
			}
			it.czIDs[id] = struct{}{}
		}
	}
}

// WithSourceLane registers a source lane and the ordered sequence of CZs a
// vehicle entering on that lane must cross, starting with czSeq[0].
func WithSourceLane(laneID string, czSeq ...string) Option {
	return func(it *Intersection) {
		if laneID == "" {
			return
		}
		seq := make([]string, len(czSeq))
		copy(seq, czSeq)
		it.srcLanes[laneID] = seq
	}
}

// WithDestinationLane registers a destination lane and the set of CZs that
// count as "arrived" on that lane.
func WithDestinationLane(laneID string, czs ...string) Option {
	return func(it *Intersection) {
		if laneID == "" {
			return
		}
		set, ok := it.dstLanes[laneID]
		if !ok {
			set = make(map[string]struct{}, len(czs))
		}
		for _, cz := range czs {
			set[cz] = struct{}{}
		}
		it.dstLanes[laneID] = set
	}
}

// WithAdjacency registers a directed adjacency a->b with the given transit
// (TYPE_1 waiting) time. Negative times are rejected at New, not here.
func WithAdjacency(a, b string, transitTime int64) Option {
	return func(it *Intersection) {
		if a == "" || b == "" {
			return
		}
		row, ok := it.adjacency[a]
		if !ok {
			row = make(map[string]int64)
			it.adjacency[a] = row
		}
		row[b] = transitTime
	}
}

// New builds an Intersection from the given options, applied in order, and
// validates the result. Returns a non-nil error (see errors.go) on any
// structural violation: empty/unknown CZ references or negative transit
// times. A lane id registered twice is not rejected: a repeated
// WithSourceLane replaces the earlier sequence, and a repeated
// WithDestinationLane adds to the earlier set.
func New(opts ...Option) (*Intersection, error) {
	it := &Intersection{
		czIDs:     make(map[string]struct{}),
		srcLanes:  make(map[string][]string),
		dstLanes:  make(map[string]map[string]struct{}),
		adjacency: make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(it)
	}

	if err := it.validate(); err != nil {
		return nil, err
	}

	return it, nil
}

func (it *Intersection) validate() error {
	for lane, seq := range it.srcLanes {
		if lane == "" {
			return ErrEmptyLaneID
		}
		for _, cz := range seq {
			if _, ok := it.czIDs[cz]; !ok {
				return ErrUnknownCZ
			}
		}
	}
	for lane, set := range it.dstLanes {
		if lane == "" {
			return ErrEmptyLaneID
		}
		for cz := range set {
			if _, ok := it.czIDs[cz]; !ok {
				return ErrUnknownCZ
			}
		}
	}
	for a, row := range it.adjacency {
		if _, ok := it.czIDs[a]; !ok {
			return ErrUnknownCZ
		}
		for b, t := range row {
			if _, ok := it.czIDs[b]; !ok {
				return ErrUnknownCZ
			}
			if t < 0 {
				return ErrNegativeTransitTime
			}
		}
	}

	return nil
}
