package logging

import (
	"context"

	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

// Discard is the logger used when a session or command has no sink, for
// example in tests or when a caller passes a nil logger.
var Discard ports.Logger = discard{}

type discard struct{}

func (discard) Debug(context.Context, string, ...interface{}) {}
func (discard) Info(context.Context, string, ...interface{}) {}
func (discard) Warn(context.Context, string, ...interface{}) {}
func (discard) Error(context.Context, string, ...interface{}) {}
func (d discard) With(...interface{}) ports.Logger { return d }
