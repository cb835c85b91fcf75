// Package csvcodec converts between series models and the plain
// "label,value" text used by the bulk editor and CSV downloads. Labels are
// not quoted, so a label containing a comma does not round-trip.
package csvcodec

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
)

// Header is the first line of a downloaded CSV document.
const Header = "Label,Value"

// Encode writes one "label,value" line per renderable entry.
func Encode(model *chart.SeriesModel) string {
	var lines []string
	for e := range model.Renderable() {
		lines = append(lines, e.TrimmedLabel()+","+strconv.FormatFloat(e.Number(), 'f', -1, 64))
	}
	return strings.Join(lines, "\n")
}

// Decode parses bulk editor text. Blank lines are skipped; each remaining
// line is split on its first comma and both fields are trimmed. A line with
// no comma becomes a label with a blank value, left for validation to flag.
func Decode(text string) []chart.Entry {
	var entries []chart.Entry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		label, value, _ := strings.Cut(line, ",")
		entries = append(entries, chart.NewEntry(strings.TrimSpace(label), strings.TrimSpace(value)))
	}
	return entries
}

// Document renders the downloadable CSV: a header followed by the encoded
// rows.
func Document(model *chart.SeriesModel) string {
	body := Encode(model)
	if body == "" {
		return Header + "\n"
	}
	return Header + "\n" + body + "\n"
}

// DecodeDocument parses a downloaded document, dropping the header line when
// present.
func DecodeDocument(text string) []chart.Entry {
	entries := Decode(text)
	if len(entries) > 0 && strings.EqualFold(entries[0].Label, "label") && strings.EqualFold(entries[0].Value, "value") {
		entries = entries[1:]
	}
	return entries
}
