package quote

import (
	"errors"
	"fmt"
)

// ErrNoItems is returned when every line item was filtered out
var ErrNoItems = errors.New("quote has no line items")

// CompositionError reports a failure building the PDF. Nothing is persisted when it occurs.
type CompositionError struct {
	Stage string
	Err   error
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("quote composition failed at %s: %v", e.Stage, e.Err)
}

func (e *CompositionError) Unwrap() error {
	return e.Err
}
