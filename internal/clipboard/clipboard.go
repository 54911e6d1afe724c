// Package clipboard provides clipboard access behind a small port so the
// outline conversion never touches a system clipboard directly.
package clipboard

import (
	"errors"
	"fmt"
)

// ErrUnavailable is matched by every clipboard access failure
var ErrUnavailable = errors.New("clipboard unavailable")

// Port reads and replaces clipboard text
type Port interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// AccessError reports a failed clipboard read or write
type AccessError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *AccessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrUnavailable, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", ErrUnavailable, e.Op, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrUnavailable) match any access error
func (e *AccessError) Is(target error) bool {
	return target == ErrUnavailable
}
