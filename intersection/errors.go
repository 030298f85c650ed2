package intersection

import "errors"

// Sentinel errors for intersection construction and queries.
var (
	// ErrEmptyCZID indicates a CZ identifier was the empty string.
	ErrEmptyCZID = errors.New("intersection: CZ id is empty")

	// ErrUnknownCZ indicates a referenced CZ id was never registered.
	ErrUnknownCZ = errors.New("intersection: unknown CZ id")

	// ErrEmptyLaneID indicates a lane identifier was the empty string.
	ErrEmptyLaneID = errors.New("intersection: lane id is empty")

	// ErrDuplicateLane indicates a source or destination lane id was registered twice.
	ErrDuplicateLane = errors.New("intersection: duplicate lane id")

	// ErrUnknownSrcLane indicates a src_lane_id was not registered via WithSourceLane.
	ErrUnknownSrcLane = errors.New("intersection: unknown source lane")

	// ErrUnknownDstLane indicates a dst_lane_id was not registered via WithDestinationLane.
	ErrUnknownDstLane = errors.New("intersection: unknown destination lane")

	// ErrNegativeTransitTime indicates a negative waiting time was supplied for an adjacency.
	ErrNegativeTransitTime = errors.New("intersection: negative transit time")
)
