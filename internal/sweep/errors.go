package sweep

import (
	"errors"
	"fmt"
)

// Marker errors classify sweep failures for callers that branch on kind
// rather than message.
var (
	// ErrTransientLock marks contention that a later pass will resolve on
	// its own, such as a file held open or a root already being swept.
	ErrTransientLock = errors.New("transient lock contention")

	// ErrStructural marks filesystem problems that need intervention, such
	// as a missing source folder or an unwritable archive tree.
	ErrStructural = errors.New("structural failure")

	// ErrConfiguration marks errors in the configured folder or category
	// setup detected at run time.
	ErrConfiguration = errors.New("configuration error")
)

type sweepError struct {
	marker  error
	pass    string
	op      string
	message string
	err     error
}

func (e *sweepError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.pass, e.op, e.message, e.err)
	}
	return fmt.Sprintf("%s %s: %s", e.pass, e.op, e.message)
}

func (e *sweepError) Unwrap() []error {
	if e.err != nil {
		return []error{e.marker, e.err}
	}
	return []error{e.marker}
}

// Wrap builds a classified sweep error. pass identifies the forward or
// repair pass, op the failing operation, message the human context.
func Wrap(marker error, pass, op, message string, err error) error {
	return &sweepError{marker: marker, pass: pass, op: op, message: message, err: err}
}
