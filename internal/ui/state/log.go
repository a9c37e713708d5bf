package state

// OutputLog is the append-only record of submitted lines.
type OutputLog struct {
	entries []string
}

// Append records a line.
func (l *OutputLog) Append(line string) {
	l.entries = append(l.entries, line)
}

// Entries returns a copy of the recorded lines, oldest first.
func (l *OutputLog) Entries() []string {
	dup := make([]string, len(l.entries))
	copy(dup, l.entries)
	return dup
}

// Len returns the number of recorded lines.
func (l *OutputLog) Len() int {
	return len(l.entries)
}

// Last returns the most recent line.
func (l *OutputLog) Last() (string, bool) {
	if len(l.entries) == 0 {
		return "", false
	}
	return l.entries[len(l.entries)-1], true
}
