package engine

import "fmt"

// ValidationError indicates an operation was rejected before any state
// changed: the aggregate is left exactly as it was.
type ValidationError struct {
	Op     string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// NotFoundError indicates a lookup by id found nothing.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
