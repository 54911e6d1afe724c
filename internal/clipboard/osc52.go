package clipboard

import (
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/term"
)

// OSC52 wraps a port and falls back to an OSC 52 terminal escape sequence
// when the wrapped write fails. Terminals that support OSC 52 set their
// own clipboard from it, which also works over SSH. The fallback is only
// taken when Out is a terminal; otherwise the write error is returned.
type OSC52 struct {
	Port
	Out  io.Writer
	Tmux bool // Wrap the sequence in a tmux passthrough

	isTerminal func(io.Writer) bool
}

// WithOSC52 wraps p, writing fallback sequences to stderr
func WithOSC52(p Port) *OSC52 {
	return &OSC52{
		Port: p,
		Out:  os.Stderr,
		Tmux: os.Getenv("TMUX") != "",
	}
}

// WriteText tries the wrapped port first, then the terminal
func (o *OSC52) WriteText(text string) error {
	err := o.Port.WriteText(text)
	if err == nil {
		return nil
	}

	// Nobody would see the sequence, so the write failed
	if !o.terminal() {
		return err
	}

	seq := osc52.New(text)
	if o.Tmux {
		seq = seq.Tmux()
	}
	if _, werr := seq.WriteTo(o.Out); werr != nil {
		return &AccessError{Op: "write", Err: werr}
	}
	return nil
}

func (o *OSC52) terminal() bool {
	if o.isTerminal != nil {
		return o.isTerminal(o.Out)
	}
	return isTerminal(o.Out)
}

// isTerminal reports whether w is a file attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
