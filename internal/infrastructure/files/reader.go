// Package files implements the file-reading collaborator on the local
// filesystem.
package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

// DefaultMaxBytes caps how much of a selected file is read.
const DefaultMaxBytes = 10 << 20

// Reader reads user-selected files, where the handle is a filesystem path.
type Reader struct {
	MaxBytes int64
}

// NewReader returns a Reader with the default size cap.
func NewReader() *Reader {
	return &Reader{MaxBytes: DefaultMaxBytes}
}

// ReadText returns the file content as text. Every failure is a READ_ERROR.
func (r *Reader) ReadText(ctx context.Context, handle string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", readError(handle, "read cancelled", err)
	}
	if handle == "" {
		return "", readError(handle, "no file selected", nil)
	}

	f, err := os.Open(handle)
	if err != nil {
		return "", readError(handle, "cannot open file", err)
	}
	defer f.Close()

	limit := r.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return "", readError(handle, "cannot read file", err)
	}
	if int64(len(data)) > limit {
		return "", readError(handle, fmt.Sprintf("file exceeds %d bytes", limit), nil)
	}
	if !utf8.Valid(data) {
		return "", readError(handle, "file is not valid UTF-8 text", nil)
	}
	return string(data), nil
}

func readError(handle, message string, cause error) error {
	return chart.NewError(chart.ErrCodeRead, message, cause, map[string]interface{}{"path": handle})
}

var _ ports.FileReader = (*Reader)(nil)
