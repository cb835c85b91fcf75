package builder

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

type fakeTarget struct{ id string }

func (t fakeTarget) ID() string                  { return t.id }
func (t fakeTarget) Write(p []byte) (int, error) { return len(p), nil }

type fakeRenderer struct {
	specs    []*chart.Spec
	disposed int
	err      error
}

func (r *fakeRenderer) Render(_ context.Context, spec *chart.Spec, _ ports.Target) error {
	if r.err != nil {
		return r.err
	}
	r.specs = append(r.specs, spec)
	return nil
}

func (r *fakeRenderer) Dispose(ports.Target) { r.disposed++ }

func (r *fakeRenderer) last() *chart.Spec {
	if len(r.specs) == 0 {
		return nil
	}
	return r.specs[len(r.specs)-1]
}

type toast struct {
	message  string
	severity ports.Severity
}

type fakeNotifier struct {
	toasts []toast
}

func (n *fakeNotifier) Notify(message string, severity ports.Severity) {
	n.toasts = append(n.toasts, toast{message: message, severity: severity})
}

func (n *fakeNotifier) last() toast {
	if len(n.toasts) == 0 {
		return toast{}
	}
	return n.toasts[len(n.toasts)-1]
}

type fakeExporter struct {
	spec *chart.Spec
	err  error
}

func (e *fakeExporter) Export(_ context.Context, spec *chart.Spec) ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.spec = spec
	return []byte("png"), nil
}

func (e *fakeExporter) Extension() string { return "png" }

type fakeReader struct {
	files map[string]string
}

func (r fakeReader) ReadText(_ context.Context, handle string) (string, error) {
	text, ok := r.files[handle]
	if !ok {
		return "", chart.NewError(chart.ErrCodeRead, "cannot read file", nil, map[string]interface{}{"file": handle})
	}
	return text, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingPublisher) Publish(_ context.Context, event ports.DomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event.EventType())
	return nil
}

func (r *recordingPublisher) Subscribe(string, ports.EventHandler) (ports.Subscription, error) {
	return nil, nil
}

func (r *recordingPublisher) count(eventType string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e == eventType {
			n++
		}
	}
	return n
}

type harness struct {
	session  *Session
	renderer *fakeRenderer
	notifier *fakeNotifier
	exporter *fakeExporter
	events   *recordingPublisher
}
