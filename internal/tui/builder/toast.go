package builder

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

const toastDuration = 3 * time.Second

// Toaster is the terminal Notifier. It keeps the latest message until it
// is cleared or replaced.
type Toaster struct {
	mu       sync.Mutex
	message  string
	severity ports.Severity
	seq      int
}

// NewToaster returns an empty toaster.
func NewToaster() *Toaster {
	return &Toaster{}
}

// Notify implements ports.Notifier.
func (t *Toaster) Notify(message string, severity ports.Severity) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if severity == "" {
		severity = ports.SeverityDefault
	}
	t.message = message
	t.severity = severity
	t.seq++
}

// Current returns the visible message, its severity and its sequence number.
func (t *Toaster) Current() (string, ports.Severity, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message, t.severity, t.seq
}

// Clear hides the message if it is still the one identified by seq.
func (t *Toaster) Clear(seq int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq == t.seq {
		t.message = ""
	}
}

var _ ports.Notifier = (*Toaster)(nil)
