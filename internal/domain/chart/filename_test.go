package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		ext   string
		want  string
	}{
		{"Custom Chart", "png", "custom-chart.png"},
		{"Q3   Sales\tReport", ".csv", "q3-sales-report.csv"},
		{"single", "png", "single.png"},
		{"", "png", ".png"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.title, tt.ext))
		})
	}
}
