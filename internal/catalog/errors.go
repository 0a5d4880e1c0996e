package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownID is wrapped by every failed catalog lookup.
var ErrUnknownID = errors.New("unknown catalog id")

// LookupError reports an identifier that is not part of a static taxonomy.
type LookupError struct {
	Kind string // "challenge", "urgency", "scope", "tool", "question", "option"
	ID   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.ID)
}

func (e *LookupError) Unwrap() error {
	return ErrUnknownID
}
