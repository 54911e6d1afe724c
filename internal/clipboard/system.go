package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errNoBackend = errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")

// System is the desktop clipboard
type System struct{}

// NewSystem returns the desktop clipboard port
func NewSystem() *System {
	return &System{}
}

// ReadText returns the clipboard contents with line terminators untouched
func (s *System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", &AccessError{Op: "read", Err: errNoBackend}
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", &AccessError{Op: "read", Err: err}
	}
	return text, nil
}

// WriteText replaces the clipboard contents
func (s *System) WriteText(text string) error {
	if clipboard.Unsupported {
		return &AccessError{Op: "write", Err: errNoBackend}
	}
	if err := clipboard.WriteAll(text); err != nil {
		return &AccessError{Op: "write", Err: err}
	}
	return nil
}
