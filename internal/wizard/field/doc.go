// Package field implements the draft-value widgets backing the planning form.
// Each widget keeps a local draft buffer decoupled from the authoritative
// preferences record: keystrokes touch only the buffer, and the value is
// committed in one step on blur or on an explicit confirm. The widgets carry
// no rendering state, so commit semantics are testable without a display
// layer.
package field
