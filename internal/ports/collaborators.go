package ports

import (
	"context"
	"io"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
)

// Target is a drawable surface a renderer paints onto.
type Target interface {
	io.Writer
	// ID identifies the surface so a renderer can dispose the instance
	// previously bound to it.
	ID() string
}

// Renderer paints a chart spec onto a target. It may be invoked repeatedly;
// the instance previously bound to the same target is disposed first.
type Renderer interface {
	Render(ctx context.Context, spec *chart.Spec, target Target) error
	Dispose(target Target)
}

// ImageExporter encodes a chart spec as a downloadable image.
type ImageExporter interface {
	Export(ctx context.Context, spec *chart.Spec) ([]byte, error)
	// Extension is the file extension of the produced image, without a dot.
	Extension() string
}

// FileReader yields the text content of a user-selected file exactly once.
// Failures are READ_ERROR domain errors.
type FileReader interface {
	ReadText(ctx context.Context, handle string) (string, error)
}

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityDefault Severity = "default"
)

// Notifier displays transient messages. Implementations must not block.
type Notifier interface {
	Notify(message string, severity Severity)
}
