package field

// DateField is a commit-on-blur date entry widget. The authoritative value is
// updated exactly once, when the field loses focus, so half-typed dates never
// reach validation. Range enforcement lives in the validator; Min is only a
// display hint.
type DateField struct {
	Draft

	// Min is a lower-bound hint (ISO date) surfaced to the rendering layer.
	// It is not enforced here.
	Min string

	// OpenPicker, when set, is invoked on focus to raise a platform date
	// picker. It is best effort: errors and panics are swallowed and the
	// field behaves as if the hook were absent.
	OpenPicker func() error
}

// NewDateField creates a date field seeded from the authoritative value.
func NewDateField(value string) DateField {
	return DateField{Draft: NewDraft(value)}
}

// Focus marks the field focused and fires the picker hook, if any.
func (f *DateField) Focus() {
	f.focused = true
	f.tryOpenPicker()
}

// Blur commits the buffer and returns the committed value.
func (f *DateField) Blur() string {
	f.focused = false
	return f.Commit()
}

func (f *DateField) tryOpenPicker() {
	if f.OpenPicker == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	_ = f.OpenPicker()
}
