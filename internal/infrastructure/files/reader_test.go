package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
)

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,1\nB,2\n"), 0o644))

	text, err := NewReader().ReadText(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "A,1\nB,2\n", text)
}

func TestReadTextFailures(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.csv")
	require.NoError(t, os.WriteFile(big, []byte("0123456789"), 0o644))
	binary := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(binary, []byte{0xff, 0xfe, 0xfd}, 0o644))

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name   string
		ctx    context.Context
		reader *Reader
		handle string
	}{
		{"missing", context.Background(), NewReader(), filepath.Join(dir, "missing.csv")},
		{"empty handle", context.Background(), NewReader(), ""},
		{"too large", context.Background(), &Reader{MaxBytes: 4}, big},
		{"not text", context.Background(), NewReader(), binary},
		{"cancelled", cancelled, NewReader(), big},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.reader.ReadText(tt.ctx, tt.handle)
			require.Error(t, err)
			assert.True(t, chart.IsCode(err, chart.ErrCodeRead), "got %v", err)
		})
	}
}
