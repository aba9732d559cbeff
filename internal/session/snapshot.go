package session

// Snapshot is an immutable copy of what the renderer needs for one frame.
type Snapshot struct {
	Mode          Mode
	Notes         []string
	Total         int
	Cursor        int
	HasCursor     bool
	Input         string
	Query         string
	PendingDelete bool
	Status        string
}

// Buffer returns the text of the input line that is live for the mode.
func (v Snapshot) Buffer() string {
	switch v.Mode {
	case Create:
		return v.Input
	case Search:
		return v.Query
	default:
		return ""
	}
}

func (s *Session) View() Snapshot {
	cursor, ok := s.Cursor()
	return Snapshot{
		Mode:          s.mode,
		Notes:         append([]string{}, s.CurrentList()...),
		Total:         len(s.notes),
		Cursor:        cursor,
		HasCursor:     ok,
		Input:         s.input,
		Query:         s.Query(),
		PendingDelete: s.pendingDelete,
		Status:        s.status,
	}
}
