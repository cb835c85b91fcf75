// Package diff compares two line-oriented documents, such as a previously
// exported CSV file and a fresh export.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Summary counts changed lines.
type Summary struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Summary) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Lines returns a unified-style listing of before and after, compared line
// by line, together with a change summary. Identical documents yield an
// empty listing. Output longer than 10,000 lines is truncated with a marker.
func Lines(before, after, beforeLabel, afterLabel string) (string, Summary) {
	if before == after {
		return "", Summary{}
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var (
		out     []string
		summary Summary
	)
	out = append(out, "--- "+beforeLabel, "+++ "+afterLabel)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			out = append(out, prefix+line)
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				summary.Removed++
			case diffmatchpatch.DiffInsert:
				summary.Added++
			}
		}
	}

	if len(out) > maxDiffLines {
		out = append(out[:maxDiffLines], truncateMessage)
	}
	return strings.Join(out, "\n") + "\n", summary
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
