package geo

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("area not found")
	ErrInvalidLocationIntent = errors.New("invalid location intent")
)

// unknownAreaError is an intent naming an id the dataset does not have. It
// matches both ErrInvalidLocationIntent and ErrNotFound.
type unknownAreaError struct {
	kind Kind
	id   string
}

func (e *unknownAreaError) Error() string {
	return fmt.Sprintf("%s: %s: unknown %s %s", ErrInvalidLocationIntent, ErrNotFound, e.kind, e.id)
}

func (e *unknownAreaError) Is(target error) bool {
	return target == ErrInvalidLocationIntent || target == ErrNotFound
}
