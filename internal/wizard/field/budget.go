package field

import "strings"

// BudgetField is a commit-on-blur numeric entry widget with an additional
// early-commit path: Confirm commits immediately and drops focus. Character
// filtering is the rendering layer's job; numeric validation is the
// validator's.
type BudgetField struct {
	Draft
}

// NewBudgetField creates a budget field seeded from the authoritative value.
func NewBudgetField(value string) BudgetField {
	return BudgetField{Draft: NewDraft(value)}
}

// Focus marks the field focused.
func (f *BudgetField) Focus() {
	f.focused = true
}

// Blur commits the buffer and returns the committed value.
func (f *BudgetField) Blur() string {
	f.focused = false
	return f.Commit()
}

// Confirm commits the trimmed buffer and removes focus in one step.
func (f *BudgetField) Confirm() string {
	f.SetBuffer(strings.TrimSpace(f.Buffer()))
	return f.Blur()
}
