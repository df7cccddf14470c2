package ui

import "sync"

const (
	LabelIdle = "INITIATE ANALYSIS"
	LabelBusy = "PROCESSING DATA..."
)

// Trigger is the analyze button: disabled with a busy label while a request is in flight
type Trigger struct {
	mu       sync.Mutex
	disabled bool
	label    string
}

func NewTrigger() *Trigger {
	return &Trigger{label: LabelIdle}
}

// Begin disables the trigger. It returns false if a request is already in flight.
func (t *Trigger) Begin() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.disabled {
		return false
	}
	t.disabled = true
	t.label = LabelBusy
	return true
}

// Restore re-enables the trigger with its idle label
func (t *Trigger) Restore() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.disabled = false
	t.label = LabelIdle
}

// State returns whether the trigger is disabled and its current label
func (t *Trigger) State() (disabled bool, label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.disabled, t.label
}
