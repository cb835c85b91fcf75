package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

const defaultDeferredLimit = 1000

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

type deferredEntry struct {
	ctx    context.Context
	level  level
	msg    string
	fields []interface{}
}

// Deferred holds log entries while the terminal belongs to the TUI and
// replays them once the program exits. Only the newest limit entries are kept.
type Deferred struct {
	mu      sync.Mutex
	limit   int
	entries []deferredEntry
	dropped int
}

// NewDeferred creates a buffer holding at most limit entries (default 1000).
func NewDeferred(limit int) *Deferred {
	if limit <= 0 {
		limit = defaultDeferredLimit
	}
	return &Deferred{limit: limit, entries: make([]deferredEntry, 0, limit)}
}

// Logger returns a ports.Logger writing into the buffer.
func (d *Deferred) Logger() ports.Logger {
	return &deferredLogger{sink: d}
}

// Len returns the number of held entries.
func (d *Deferred) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Dropped returns how many entries were discarded because the buffer was full.
func (d *Deferred) Dropped() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

// Flush replays held entries on delegate in order and empties the buffer.
func (d *Deferred) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	d.mu.Lock()
	entries := make([]deferredEntry, len(d.entries))
	copy(entries, d.entries)
	d.entries = d.entries[:0]
	dropped := d.dropped
	d.dropped = 0
	d.mu.Unlock()

	if dropped > 0 {
		delegate.Warn(context.Background(), "deferred log entries dropped", "count", dropped)
	}
	for _, e := range entries {
		switch e.level {
		case levelDebug:
			delegate.Debug(e.ctx, e.msg, e.fields...)
		case levelWarn:
			delegate.Warn(e.ctx, e.msg, e.fields...)
		case levelError:
			delegate.Error(e.ctx, e.msg, e.fields...)
		default:
			delegate.Info(e.ctx, e.msg, e.fields...)
		}
	}
}

func (d *Deferred) add(entry deferredEntry) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.entries) == d.limit {
		copy(d.entries, d.entries[1:])
		d.entries[len(d.entries)-1] = entry
		d.dropped++
		return
	}
	d.entries = append(d.entries, entry)
}

type deferredLogger struct {
	sink   *Deferred
	fields []interface{}
}

func (l *deferredLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelDebug, msg, fields)
}

func (l *deferredLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelInfo, msg, fields)
}

func (l *deferredLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelWarn, msg, fields)
}

func (l *deferredLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelError, msg, fields)
}

func (l *deferredLogger) With(fields ...interface{}) ports.Logger {
	next := append(append([]interface{}{}, l.fields...), fields...)
	return &deferredLogger{sink: l.sink, fields: next}
}

func (l *deferredLogger) log(ctx context.Context, lvl level, msg string, fields []interface{}) {
	if l == nil || l.sink == nil {
		return
	}
	l.sink.add(deferredEntry{
		ctx:    ctx,
		level:  lvl,
		msg:    msg,
		fields: append(append([]interface{}{}, l.fields...), fields...),
	})
}
