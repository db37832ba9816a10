package field

import (
	"strings"

	"github.com/metaversecode/AI-Trip-Planner/internal/trip"
)

// DestinationEditor is the tokenizing multi-value entry widget. It keeps an
// uncommitted text buffer separate from the committed destination list. A
// commit tokenizes the text on the delimiter and merges the tokens into the
// list with case-insensitive dedup; the buffer is cleared afterwards.
type DestinationEditor struct {
	buffer string
	list   []string
}

// NewDestinationEditor creates an editor over the given committed list.
func NewDestinationEditor(list []string) DestinationEditor {
	return DestinationEditor{list: list}
}

// Buffer returns the uncommitted text.
func (e *DestinationEditor) Buffer() string {
	return e.buffer
}

// SetBuffer replaces the uncommitted text without committing.
func (e *DestinationEditor) SetBuffer(s string) {
	e.buffer = s
}

// Destinations returns the committed list.
func (e *DestinationEditor) Destinations() []string {
	return e.list
}

// SetDestinations resynchronizes the committed list after an external change.
func (e *DestinationEditor) SetDestinations(list []string) {
	e.list = list
}

// Confirm commits the current buffer. Triggered by the confirm keystroke.
func (e *DestinationEditor) Confirm() {
	e.commit(e.buffer)
}

// TypeDelimiter handles a delimiter keystroke by committing the buffer. The
// delimiter itself never enters the buffer.
func (e *DestinationEditor) TypeDelimiter() {
	e.commit(e.buffer)
}

// Paste handles a bulk-paste event. Pasted content containing a delimiter is
// committed immediately in full, bypassing the buffer; otherwise the text is
// appended to the buffer like ordinary typing.
func (e *DestinationEditor) Paste(text string) {
	if strings.Contains(text, trip.Delimiter) {
		e.commit(e.buffer + text)
		return
	}
	e.buffer += text
}

// Backspace removes the last buffered rune. When the buffer is already empty
// it removes the most recently added destination instead; a no-op when the
// list is also empty.
func (e *DestinationEditor) Backspace() {
	if e.buffer != "" {
		runes := []rune(e.buffer)
		e.buffer = string(runes[:len(runes)-1])
		return
	}
	e.list = trip.RemoveLastDestination(e.list)
}

// Remove deletes one exact entry from the committed list.
func (e *DestinationEditor) Remove(entry string) {
	e.list = trip.RemoveDestination(e.list, entry)
}

func (e *DestinationEditor) commit(text string) {
	e.list = trip.AddDestinations(e.list, trip.Tokenize(text)...)
	e.buffer = ""
}
