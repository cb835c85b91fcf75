package chart

import (
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Entry is a single label/value row as the user typed it. Value keeps the raw
// cell text so a blank cell can be told apart from an explicit zero.
type Entry struct {
	ID    string
	Label string
	Value string
	Color string
}

// NewEntry creates an entry with a fresh stable identifier.
func NewEntry(label, value string) Entry {
	return Entry{ID: uuid.NewString(), Label: label, Value: value}
}

// TrimmedLabel returns the label with surrounding whitespace removed.
func (e Entry) TrimmedLabel() string {
	return strings.TrimSpace(e.Label)
}

// HasLabel reports whether the label is non-empty after trimming.
func (e Entry) HasLabel() bool {
	return e.TrimmedLabel() != ""
}

// HasValueText reports whether the value cell holds any non-blank text.
func (e Entry) HasValueText() bool {
	return strings.TrimSpace(e.Value) != ""
}

// Number parses the value cell. Blank, unparsable or non-finite text counts
// as zero.
func (e Entry) Number() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.Value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Renderable reports whether the entry may appear in a rendered chart.
func (e Entry) Renderable() bool {
	return e.HasLabel() && e.Number() != 0
}

// SeriesModel is the ordered collection of rows owned by one builder session.
// Order is the legend order. The model always keeps at least one row so the
// user has something to edit.
type SeriesModel struct {
	entries []Entry
}

// NewSeriesModel returns a model holding a single empty row.
func NewSeriesModel() *SeriesModel {
	m := &SeriesModel{}
	m.Reset()
	return m
}

// Len returns the number of rows, renderable or not.
func (m *SeriesModel) Len() int {
	return len(m.entries)
}

// At returns the row at index.
func (m *SeriesModel) At(index int) (Entry, error) {
	if err := m.checkIndex(index); err != nil {
		return Entry{}, err
	}
	return m.entries[index], nil
}

// Entries returns a copy of every row.
func (m *SeriesModel) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// IndexOf returns the position of the row with the given id, or -1.
func (m *SeriesModel) IndexOf(id string) int {
	for i, e := range m.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Add appends an empty row and returns it.
func (m *SeriesModel) Add() Entry {
	entry := NewEntry("", "")
	m.entries = append(m.entries, entry)
	return entry
}

// Remove deletes the row at index. Removing the last remaining row is an
// invariant violation and leaves the model unchanged.
func (m *SeriesModel) Remove(index int) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	if len(m.entries) <= 1 {
		return newInvariantError("cannot remove last row", map[string]interface{}{"index": index})
	}
	m.entries = append(m.entries[:index], m.entries[index+1:]...)
	return nil
}

// SetLabel replaces the label text of a row.
func (m *SeriesModel) SetLabel(index int, text string) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	m.entries[index].Label = text
	return nil
}

// SetValue stores a numeric value for a row.
func (m *SeriesModel) SetValue(index int, value float64) error {
	return m.SetValueText(index, strconv.FormatFloat(value, 'f', -1, 64))
}

// SetValueText stores the raw value cell text for a row.
func (m *SeriesModel) SetValueText(index int, text string) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	m.entries[index].Value = text
	return nil
}

// SetColor records the colour last shown for a row.
func (m *SeriesModel) SetColor(index int, color string) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	m.entries[index].Color = color
	return nil
}

// ReplaceAll swaps the whole row set. Rows without an id get one. An empty
// input leaves a single empty row in place.
func (m *SeriesModel) ReplaceAll(entries []Entry) {
	if len(entries) == 0 {
		m.Reset()
		return
	}
	next := make([]Entry, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		next[i] = e
	}
	m.entries = next
}

// Reset returns the model to a single empty row.
func (m *SeriesModel) Reset() {
	m.entries = []Entry{NewEntry("", "")}
}

// Renderable yields rows with a non-empty label and a non-zero value, in
// order. This is the only view the renderer ever sees.
func (m *SeriesModel) Renderable() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range m.entries {
			if !e.Renderable() {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// RenderableSlice collects Renderable into a slice.
func (m *SeriesModel) RenderableSlice() []Entry {
	var out []Entry
	for e := range m.Renderable() {
		out = append(out, e)
	}
	return out
}

func (m *SeriesModel) checkIndex(index int) error {
	if index < 0 || index >= len(m.entries) {
		return newNotFoundError(index, len(m.entries))
	}
	return nil
}
