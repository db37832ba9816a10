package field

import "strings"

// Draft is a local edit buffer decoupled from an authoritative value. The
// buffer absorbs keystrokes; the authoritative side only changes when Commit
// is called. Sync pulls in external changes to the authoritative value so the
// buffer never shows a stale baseline.
type Draft struct {
	buffer    string
	committed string
	focused   bool
}

// NewDraft creates a draft initialized from the authoritative value.
func NewDraft(value string) Draft {
	return Draft{buffer: value, committed: value}
}

// Buffer returns the current draft text.
func (d *Draft) Buffer() string {
	return d.buffer
}

// SetBuffer replaces the draft text without committing.
func (d *Draft) SetBuffer(s string) {
	d.buffer = s
}

// Committed returns the last committed value.
func (d *Draft) Committed() string {
	return d.committed
}

// Focused reports whether the draft currently has input focus.
func (d *Draft) Focused() bool {
	return d.focused
}

// Sync resynchronizes the buffer when the authoritative value changed outside
// this widget, e.g. a programmatic reset. A no-op when the value matches what
// was last committed here.
func (d *Draft) Sync(authoritative string) {
	if authoritative == d.committed {
		return
	}
	d.committed = authoritative
	d.buffer = authoritative
}

// Commit moves the trimmed buffer into the committed value and returns it.
func (d *Draft) Commit() string {
	d.committed = strings.TrimSpace(d.buffer)
	d.buffer = d.committed
	return d.committed
}
