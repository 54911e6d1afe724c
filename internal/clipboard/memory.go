package clipboard

// Memory is an in-process clipboard used by tests and dry runs
type Memory struct {
	Text     string
	ReadErr  error
	WriteErr error

	Reads  int
	Writes int
}

// NewMemory returns a memory clipboard holding text
func NewMemory(text string) *Memory {
	return &Memory{Text: text}
}

// ReadText returns the stored text
func (m *Memory) ReadText() (string, error) {
	m.Reads++
	if m.ReadErr != nil {
		return "", &AccessError{Op: "read", Err: m.ReadErr}
	}
	return m.Text, nil
}

// WriteText replaces the stored text
func (m *Memory) WriteText(text string) error {
	m.Writes++
	if m.WriteErr != nil {
		return &AccessError{Op: "write", Err: m.WriteErr}
	}
	m.Text = text
	return nil
}
