package sweep

import "sync/atomic"

// Stats accumulates counters across concurrent root sweeps.
type Stats struct {
	filesMoved   atomic.Int64
	spaceCleared atomic.Int64
	errors       atomic.Int64
}

// Snapshot is an immutable copy of the counters.
type Snapshot struct {
	FilesMoved   int64
	SpaceCleared int64
	Errors       int64
}

func (s *Stats) recordMove(size int64) {
	s.filesMoved.Add(1)
	if size > 0 {
		s.spaceCleared.Add(size)
	}
}

func (s *Stats) recordError() {
	s.errors.Add(1)
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		FilesMoved:   s.filesMoved.Load(),
		SpaceCleared: s.spaceCleared.Load(),
		Errors:       s.errors.Load(),
	}
}
