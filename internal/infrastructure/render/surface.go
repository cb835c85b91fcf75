// Package render holds the drawable surfaces shared by the renderer
// collaborators.
package render

import (
	"bytes"
	"sync"
)

// Surface is an in-memory drawable target. Disposing a render resets it.
type Surface struct {
	id  string
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewSurface returns an empty surface identified by id.
func NewSurface(id string) *Surface {
	return &Surface{id: id}
}

// ID implements ports.Target.
func (s *Surface) ID() string {
	return s.id
}

// Write implements io.Writer.
func (s *Surface) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

// Reset clears the surface.
func (s *Surface) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Reset()
}

// Bytes returns a copy of the current content.
func (s *Surface) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.buf.Bytes()...)
}

// String returns the current content as text.
func (s *Surface) String() string {
	return string(s.Bytes())
}
