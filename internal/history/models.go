package history

import "time"

// Kind distinguishes the two pass types.
type Kind string

const (
	KindForward Kind = "forward"
	KindRepair  Kind = "repair"
)

// Run is one completed pass over all configured folders.
type Run struct {
	ID           string
	Kind         Kind
	StartedAt    time.Time
	FinishedAt   time.Time
	FilesMoved   int64
	SpaceCleared int64
	Errors       int64
}

// Duration returns how long the pass took.
func (r Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
